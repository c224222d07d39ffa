package store

import (
	"context"
	"fmt"

	"github.com/safar/freight-quotes/internal/database"
	"github.com/safar/freight-quotes/internal/models"
)

// InsertEditHistory appends one audit row. Rows are never updated or deleted.
func InsertEditHistory(ctx context.Context, db database.DBTX, h *models.EditHistory) (*models.EditHistory, error) {
	created := *h

	err := db.QueryRowContext(ctx,
		`INSERT INTO edit_history (quote_id, edited_by, changes, company_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, edited_at`,
		h.QuoteID, h.EditedBy, h.Changes, h.CompanyID).Scan(&created.ID, &created.EditedAt)
	if err != nil {
		return nil, fmt.Errorf("insert edit history: %w", err)
	}
	return &created, nil
}

func ListEditHistory(ctx context.Context, db database.DBTX, quoteID int64) ([]models.EditHistory, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, quote_id, edited_by, edited_at, changes, company_id
		 FROM edit_history
		 WHERE quote_id = $1
		 ORDER BY edited_at DESC, id DESC`,
		quoteID)
	if err != nil {
		return nil, fmt.Errorf("list edit history: %w", err)
	}
	defer rows.Close()

	history := []models.EditHistory{}
	for rows.Next() {
		var h models.EditHistory
		err := rows.Scan(&h.ID, &h.QuoteID, &h.EditedBy, &h.EditedAt, &h.Changes, &h.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("scan edit history: %w", err)
		}
		history = append(history, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return history, nil
}
