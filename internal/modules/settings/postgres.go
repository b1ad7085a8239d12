package settings

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type postgresRepository struct{ db *sqlx.DB }

// NewPostgresRepository creates a postgres-backed settings repository.
func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepository{db: db} }

func (r *postgresRepository) Colors(ctx context.Context) (CategoryColors, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT label, color FROM category_colors`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	colors := CategoryColors{}
	for rows.Next() {
		var label, color string
		if err := rows.Scan(&label, &color); err != nil {
			return nil, err
		}
		colors[label] = color
	}
	return colors, rows.Err()
}

func (r *postgresRepository) ReplaceColors(ctx context.Context, colors CategoryColors) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM category_colors`); err != nil {
		return err
	}
	for label, color := range colors {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO category_colors (label, color) VALUES ($1, $2)`, label, color)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
