package stock

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type postgresRepository struct{ db *sqlx.DB }

// NewPostgresRepository creates a postgres-backed stock repository.
func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepository{db: db} }

func (r *postgresRepository) List(ctx context.Context) ([]Row, error) {
	var rows []Row
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, item_id, location_id, sub_location_detail, quantity, source, po_number, date_received
		FROM stock ORDER BY item_id, location_id`)
	return rows, err
}

func (r *postgresRepository) ListByItem(ctx context.Context, itemID string) ([]Row, error) {
	var rows []Row
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, item_id, location_id, sub_location_detail, quantity, source, po_number, date_received
		FROM stock WHERE item_id = $1 ORDER BY location_id`, itemID)
	return rows, err
}

func (r *postgresRepository) ApplyBatch(ctx context.Context, batch Batch) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, id := range batch.Deletes {
		if _, err := tx.ExecContext(ctx, `DELETE FROM stock WHERE id = $1`, id); err != nil {
			return err
		}
	}
	for _, row := range batch.Upserts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO stock (id, item_id, location_id, sub_location_detail, quantity, source, po_number, date_received)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO UPDATE SET
				quantity = EXCLUDED.quantity,
				location_id = EXCLUDED.location_id,
				sub_location_detail = EXCLUDED.sub_location_detail,
				source = EXCLUDED.source,
				po_number = EXCLUDED.po_number,
				date_received = EXCLUDED.date_received`,
			row.ID, row.ItemID, row.LocationID, row.SubLocationDetail,
			row.Quantity, row.Source, row.PONumber, row.DateReceived)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *postgresRepository) DeleteByItem(ctx context.Context, itemID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM stock WHERE item_id = $1`, itemID)
	return err
}
