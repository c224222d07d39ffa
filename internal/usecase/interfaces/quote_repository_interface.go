package interfaces

import (
	"context"

	"github.com/safar/freight-quotes/internal/models"
	"github.com/safar/freight-quotes/internal/store"
)

// IQuoteRepository abstracts persistence of shippingquotes rows.
//
// UpdateQuote writes only the given columns and has no concurrency check.
type IQuoteRepository interface {
	GetQuote(ctx context.Context, id int64) (*models.Quote, error)
	InsertQuote(ctx context.Context, q *models.Quote) (*models.Quote, error)
	UpdateQuote(ctx context.Context, id int64, values map[string]any) error
	ListQuotes(ctx context.Context, filter store.QuoteFilter, page, pageSize int) (*store.OffsetPage[models.Quote], error)
	ListOrders(ctx context.Context, filter store.QuoteFilter, cursor string, limit int) (*store.CursorPage[models.Quote], error)
	ConvertToOrder(ctx context.Context, id int64) (*models.Quote, error)
	SetStatus(ctx context.Context, id int64, column models.StatusColumn, value string) (*models.Quote, error)
}
