package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/safar/freight-quotes/internal/models"
)

// Repository binds the store functions to one connection pool so they can be
// handed to the use cases behind their repository interfaces.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetQuote(ctx context.Context, id int64) (*models.Quote, error) {
	return GetQuote(ctx, r.db, id)
}

func (r *Repository) InsertQuote(ctx context.Context, q *models.Quote) (*models.Quote, error) {
	return InsertQuote(ctx, r.db, q)
}

func (r *Repository) UpdateQuote(ctx context.Context, id int64, values map[string]any) error {
	return UpdateQuoteFields(ctx, r.db, id, values)
}

func (r *Repository) ListQuotes(ctx context.Context, filter QuoteFilter, page, pageSize int) (*OffsetPage[models.Quote], error) {
	return ListQuotes(ctx, r.db, filter, page, pageSize)
}

func (r *Repository) ListOrders(ctx context.Context, filter QuoteFilter, cursor string, limit int) (*CursorPage[models.Quote], error) {
	return ListOrdersCursor(ctx, r.db, filter, cursor, limit)
}

func (r *Repository) ConvertToOrder(ctx context.Context, id int64) (*models.Quote, error) {
	return ConvertToOrder(ctx, r.db, id)
}

func (r *Repository) SetStatus(ctx context.Context, id int64, column models.StatusColumn, value string) (*models.Quote, error) {
	return SetStatus(ctx, r.db, id, column, value)
}

func (r *Repository) InsertEditHistory(ctx context.Context, h *models.EditHistory) (*models.EditHistory, error) {
	return InsertEditHistory(ctx, r.db, h)
}

func (r *Repository) ListEditHistory(ctx context.Context, quoteID int64) ([]models.EditHistory, error) {
	return ListEditHistory(ctx, r.db, quoteID)
}

func (r *Repository) InsertEditRequest(ctx context.Context, req *models.EditRequest) (*models.EditRequest, error) {
	return InsertEditRequest(ctx, r.db, req)
}

func (r *Repository) GetEditRequest(ctx context.Context, id int64) (*models.EditRequest, error) {
	return GetEditRequest(ctx, r.db, id)
}

func (r *Repository) ListEditRequests(ctx context.Context, filter EditRequestFilter) ([]models.EditRequest, error) {
	return ListEditRequests(ctx, r.db, filter)
}

func (r *Repository) ResolveEditRequest(ctx context.Context, id int64, status models.EditRequestStatus, reviewer uuid.UUID) (*models.EditRequest, error) {
	return ResolveEditRequest(ctx, r.db, id, status, reviewer)
}

func (r *Repository) CompanyIDForUser(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	return CompanyIDForUser(ctx, r.db, userID)
}

func (r *Repository) InsertDocument(ctx context.Context, d *models.Document) (*models.Document, error) {
	return InsertDocument(ctx, r.db, d)
}

func (r *Repository) GetDocument(ctx context.Context, id int64) (*models.Document, error) {
	return GetDocument(ctx, r.db, id)
}

func (r *Repository) ListDocuments(ctx context.Context, quoteID int64) ([]models.Document, error) {
	return ListDocuments(ctx, r.db, quoteID)
}

func (r *Repository) DeleteDocument(ctx context.Context, id int64) error {
	return DeleteDocument(ctx, r.db, id)
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
