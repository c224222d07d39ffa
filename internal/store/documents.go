package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/safar/freight-quotes/internal/database"
	"github.com/safar/freight-quotes/internal/models"
)

const documentColumns = `id, quote_id, user_id, company_id, title, description,
	file_name, file_type, storage_key, uploaded_at`

func scanDocument(row rowScanner) (*models.Document, error) {
	d := &models.Document{}
	err := row.Scan(
		&d.ID,
		&d.QuoteID,
		&d.UserID,
		&d.CompanyID,
		&d.Title,
		&d.Description,
		&d.FileName,
		&d.FileType,
		&d.StorageKey,
		&d.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func InsertDocument(ctx context.Context, db database.DBTX, d *models.Document) (*models.Document, error) {
	created, err := scanDocument(db.QueryRowContext(ctx,
		`INSERT INTO documents (quote_id, user_id, company_id, title, description, file_name, file_type, storage_key)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+documentColumns,
		d.QuoteID, d.UserID, d.CompanyID, d.Title, d.Description, d.FileName, d.FileType, d.StorageKey))
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, database.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("insert document: %w", err)
	}
	return created, nil
}

func GetDocument(ctx context.Context, db database.DBTX, id int64) (*models.Document, error) {
	d, err := scanDocument(db.QueryRowContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

func ListDocuments(ctx context.Context, db database.DBTX, quoteID int64) ([]models.Document, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+documentColumns+`
		 FROM documents
		 WHERE quote_id = $1
		 ORDER BY uploaded_at DESC, id DESC`,
		quoteID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs := []models.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return docs, nil
}

func DeleteDocument(ctx context.Context, db database.DBTX, id int64) error {
	result, err := db.ExecContext(ctx, "DELETE FROM documents WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return database.ErrDocumentNotFound
	}
	return nil
}
