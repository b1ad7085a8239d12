package settings

import (
	"context"
	"fmt"
	"regexp"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Service defines category color business logic.
type Service interface {
	Colors(ctx context.Context) (CategoryColors, error)
	ReplaceColors(ctx context.Context, colors CategoryColors) error
}

type service struct{ repo Repository }

// NewService creates a new settings service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Colors(ctx context.Context) (CategoryColors, error) {
	return s.repo.Colors(ctx)
}

func (s *service) ReplaceColors(ctx context.Context, colors CategoryColors) error {
	for label, color := range colors {
		if label == "" {
			return fmt.Errorf("color label must not be empty")
		}
		if !hexColor.MatchString(color) {
			return fmt.Errorf("invalid color %q for %q", color, label)
		}
	}
	return s.repo.ReplaceColors(ctx, colors)
}
