package item

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
)

type postgresRepository struct{ db *sqlx.DB }

// NewPostgresRepository creates a postgres-backed item repository. PriorUsage
// is kept as a jsonb column.
func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepository{db: db} }

func isDuplicateKey(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key"))
}

type itemRow struct {
	ID               string        `db:"id"`
	Description      string        `db:"description"`
	Category         string        `db:"category"`
	SubCategory      string        `db:"sub_category"`
	PriorUsage       []byte        `db:"prior_usage"`
	LowAlertQuantity sql.NullInt64 `db:"low_alert_quantity"`
}

func (row itemRow) toItem() (Item, error) {
	it := Item{
		ID:          row.ID,
		Description: row.Description,
		Category:    row.Category,
		SubCategory: row.SubCategory,
	}
	if len(row.PriorUsage) > 0 {
		if err := json.Unmarshal(row.PriorUsage, &it.PriorUsage); err != nil {
			return Item{}, err
		}
	}
	if row.LowAlertQuantity.Valid {
		threshold := int(row.LowAlertQuantity.Int64)
		it.LowAlertQuantity = &threshold
	}
	return it, nil
}

func rowArgs(it *Item) (priorUsage []byte, lowAlert sql.NullInt64, err error) {
	if len(it.PriorUsage) > 0 {
		priorUsage, err = json.Marshal(it.PriorUsage)
		if err != nil {
			return nil, sql.NullInt64{}, err
		}
	}
	if it.LowAlertQuantity != nil {
		lowAlert = sql.NullInt64{Int64: int64(*it.LowAlertQuantity), Valid: true}
	}
	return priorUsage, lowAlert, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]Item, error) {
	var rows []itemRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, description, category, sub_category, prior_usage, low_alert_quantity
		FROM items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		it, err := row.toItem()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	var row itemRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, description, category, sub_category, prior_usage, low_alert_quantity
		FROM items WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	it, err := row.toItem()
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *postgresRepository) Create(ctx context.Context, it *Item) error {
	priorUsage, lowAlert, err := rowArgs(it)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO items (id, description, category, sub_category, prior_usage, low_alert_quantity)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		it.ID, it.Description, it.Category, it.SubCategory, priorUsage, lowAlert)
	if isDuplicateKey(err) {
		return ErrDuplicateID
	}
	return err
}

func (r *postgresRepository) CreateBatch(ctx context.Context, items []Item) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range items {
		priorUsage, lowAlert, err := rowArgs(&items[i])
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO items (id, description, category, sub_category, prior_usage, low_alert_quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			items[i].ID, items[i].Description, items[i].Category, items[i].SubCategory,
			priorUsage, lowAlert)
		if isDuplicateKey(err) {
			return ErrDuplicateID
		}
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *postgresRepository) Update(ctx context.Context, it *Item) error {
	priorUsage, lowAlert, err := rowArgs(it)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE items SET description = $2, category = $3, sub_category = $4,
			prior_usage = $5, low_alert_quantity = $6
		WHERE id = $1`,
		it.ID, it.Description, it.Category, it.SubCategory, priorUsage, lowAlert)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
