package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/safar/freight-quotes/internal/database"
	"github.com/safar/freight-quotes/internal/models"
)

const editRequestColumns = `id, quote_id, requested_by, requested_changes, reason, company_id,
	status, reviewed_by, reviewed_at, created_at`

func scanEditRequest(row rowScanner) (*models.EditRequest, error) {
	r := &models.EditRequest{}
	var changes []byte
	err := row.Scan(
		&r.ID,
		&r.QuoteID,
		&r.RequestedBy,
		&changes,
		&r.Reason,
		&r.CompanyID,
		&r.Status,
		&r.ReviewedBy,
		&r.ReviewedAt,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.RequestedChanges = changes
	return r, nil
}

// InsertEditRequest stores a pending proposal. The quote itself is untouched.
func InsertEditRequest(ctx context.Context, db database.DBTX, r *models.EditRequest) (*models.EditRequest, error) {
	created, err := scanEditRequest(db.QueryRowContext(ctx,
		`INSERT INTO edit_requests (quote_id, requested_by, requested_changes, reason, company_id, status)
		 VALUES ($1, $2, $3::jsonb, $4, $5, $6)
		 RETURNING `+editRequestColumns,
		r.QuoteID, r.RequestedBy, string(r.RequestedChanges), r.Reason, r.CompanyID, models.EditRequestPending))
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, database.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("insert edit request: %w", err)
	}
	return created, nil
}

func GetEditRequest(ctx context.Context, db database.DBTX, id int64) (*models.EditRequest, error) {
	r, err := scanEditRequest(db.QueryRowContext(ctx,
		`SELECT `+editRequestColumns+` FROM edit_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrEditRequestNotFound
		}
		return nil, fmt.Errorf("get edit request: %w", err)
	}
	return r, nil
}

type EditRequestFilter struct {
	CompanyID   *uuid.UUID
	RequestedBy *uuid.UUID
	QuoteID     int64
	Status      models.EditRequestStatus
}

func ListEditRequests(ctx context.Context, db database.DBTX, filter EditRequestFilter) ([]models.EditRequest, error) {
	b := psql.Select(editRequestColumns).From("edit_requests")
	if filter.CompanyID != nil {
		b = b.Where(sq.Eq{"company_id": filter.CompanyID.String()})
	}
	if filter.RequestedBy != nil {
		b = b.Where(sq.Eq{"requested_by": filter.RequestedBy.String()})
	}
	if filter.QuoteID != 0 {
		b = b.Where(sq.Eq{"quote_id": filter.QuoteID})
	}
	if filter.Status != "" {
		b = b.Where(sq.Eq{"status": string(filter.Status)})
	}

	query, args, err := b.OrderBy("created_at DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list edit requests: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list edit requests: %w", err)
	}
	defer rows.Close()

	requests := []models.EditRequest{}
	for rows.Next() {
		r, err := scanEditRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan edit request: %w", err)
		}
		requests = append(requests, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return requests, nil
}

// ResolveEditRequest moves a pending request to approved or rejected. Only
// one reviewer can win; later attempts get ErrEditRequestResolved.
func ResolveEditRequest(ctx context.Context, db database.DBTX, id int64, status models.EditRequestStatus, reviewer uuid.UUID) (*models.EditRequest, error) {
	if status != models.EditRequestApproved && status != models.EditRequestRejected {
		return nil, fmt.Errorf("resolve edit request: invalid status %q", status)
	}

	r, err := scanEditRequest(db.QueryRowContext(ctx,
		`UPDATE edit_requests
		 SET status = $1, reviewed_by = $2, reviewed_at = NOW()
		 WHERE id = $3 AND status = $4
		 RETURNING `+editRequestColumns,
		status, reviewer, id, models.EditRequestPending))
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("resolve edit request: %w", err)
	}

	var exists bool
	err = db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM edit_requests WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check edit request exists: %w", err)
	}
	if !exists {
		return nil, database.ErrEditRequestNotFound
	}
	return nil, database.ErrEditRequestResolved
}
