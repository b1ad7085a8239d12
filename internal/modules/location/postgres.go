package location

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type postgresRepository struct{ db *sqlx.DB }

// NewPostgresRepository creates a postgres-backed location repository.
func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepository{db: db} }

func (r *postgresRepository) List(ctx context.Context) ([]Location, error) {
	var locations []Location
	err := r.db.SelectContext(ctx, &locations, `
		SELECT id, name, sub_location_prompt FROM locations ORDER BY name`)
	return locations, err
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*Location, error) {
	var loc Location
	err := r.db.GetContext(ctx, &loc, `
		SELECT id, name, sub_location_prompt FROM locations WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *postgresRepository) Replace(ctx context.Context, locations []Location) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM locations`); err != nil {
		return err
	}
	for _, loc := range locations {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO locations (id, name, sub_location_prompt) VALUES ($1, $2, $3)`,
			loc.ID, loc.Name, loc.SubLocationPrompt)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
