package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/safar/freight-quotes/internal/models"
	"github.com/safar/freight-quotes/internal/store"
	"github.com/safar/freight-quotes/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// IQuoteUseCase covers the quote lifecycle outside of edits: submission,
// duplication, status labels and conversion to an order.
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, q models.Quote, actor models.Actor) (*models.Quote, error)
	GetQuote(ctx context.Context, id int64, actor models.Actor) (*models.Quote, error)
	ListQuotes(ctx context.Context, query QuoteQuery, actor models.Actor) (*store.OffsetPage[models.Quote], error)
	ListOrders(ctx context.Context, query OrderQuery, actor models.Actor) (*store.CursorPage[models.Quote], error)
	Duplicate(ctx context.Context, id int64, reverse bool, actor models.Actor) (*models.Quote, error)
	SetStatus(ctx context.Context, id int64, column models.StatusColumn, value string, actor models.Actor) (*models.Quote, error)
	Archive(ctx context.Context, id int64, actor models.Actor) (*models.Quote, error)
	Reject(ctx context.Context, id int64, actor models.Actor) (*models.Quote, error)
	Cancel(ctx context.Context, id int64, actor models.Actor) (*models.Quote, error)
	ConvertToOrder(ctx context.Context, id int64, actor models.Actor) (*models.Quote, error)
}

type QuoteQuery struct {
	CompanyID     *uuid.UUID
	Status        string
	BrokersStatus string
	Stage         store.Stage
	Page          int
	PageSize      int
}

type OrderQuery struct {
	CompanyID *uuid.UUID
	Status    string
	Cursor    string
	Limit     int
}

type QuoteUseCase struct {
	quotes interfaces.IQuoteRepository
	access access
	logger *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(quotes interfaces.IQuoteRepository, profiles interfaces.IProfileRepository, logger *zap.Logger) *QuoteUseCase {
	return &QuoteUseCase{
		quotes: quotes,
		access: access{profiles: profiles},
		logger: logger,
	}
}

// CreateQuote stores a shipper submission. It starts Pending and unpriced;
// only brokers may create a quote on behalf of another user.
func (u *QuoteUseCase) CreateQuote(ctx context.Context, q models.Quote, actor models.Actor) (*models.Quote, error) {
	q.OriginCity = strings.TrimSpace(q.OriginCity)
	q.OriginState = strings.TrimSpace(q.OriginState)
	q.DestinationCity = strings.TrimSpace(q.DestinationCity)
	q.DestinationState = strings.TrimSpace(q.DestinationState)
	if q.OriginCity == "" || q.OriginState == "" || q.DestinationCity == "" || q.DestinationState == "" {
		return nil, ErrInvalidQuote
	}

	if !actor.IsAdmin() || q.UserID == uuid.Nil {
		q.UserID = actor.UserID
	}
	companyID, err := u.access.companyOf(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	q.ID = 0
	q.CompanyID = companyID
	q.Price = nil
	q.Status = models.StatusPending
	q.BrokersStatus = models.StatusPending

	created, err := u.quotes.InsertQuote(ctx, &q)
	if err != nil {
		return nil, err
	}

	u.logger.Info("quote created",
		zap.Int64("quote_id", created.ID),
		zap.String("user_id", created.UserID.String()),
	)
	return created, nil
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, id int64, actor models.Actor) (*models.Quote, error) {
	if id <= 0 {
		return nil, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetQuote(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.access.canView(ctx, actor, q.UserID, q.CompanyID); err != nil {
		return nil, err
	}
	return q, nil
}

func (u *QuoteUseCase) scope(ctx context.Context, actor models.Actor, companyID *uuid.UUID) (store.QuoteFilter, error) {
	if actor.IsAdmin() {
		return store.QuoteFilter{CompanyID: companyID}, nil
	}

	own, err := u.access.companyOf(ctx, actor.UserID)
	if err != nil {
		return store.QuoteFilter{}, err
	}
	if own != nil {
		return store.QuoteFilter{CompanyID: own}, nil
	}
	return store.QuoteFilter{UserID: &actor.UserID}, nil
}

// ListQuotes returns a page of quotes. Shippers are limited to their company,
// or to their own quotes when they have none.
func (u *QuoteUseCase) ListQuotes(ctx context.Context, query QuoteQuery, actor models.Actor) (*store.OffsetPage[models.Quote], error) {
	filter, err := u.scope(ctx, actor, query.CompanyID)
	if err != nil {
		return nil, err
	}
	filter.Status = query.Status
	filter.BrokersStatus = query.BrokersStatus
	filter.Stage = query.Stage

	return u.quotes.ListQuotes(ctx, filter, query.Page, query.PageSize)
}

func (u *QuoteUseCase) ListOrders(ctx context.Context, query OrderQuery, actor models.Actor) (*store.CursorPage[models.Quote], error) {
	filter, err := u.scope(ctx, actor, query.CompanyID)
	if err != nil {
		return nil, err
	}
	filter.Status = query.Status

	return u.quotes.ListOrders(ctx, filter, query.Cursor, query.Limit)
}

// Duplicate inserts a copy of quote id with a fresh id and no due date. With
// reverse set the origin and destination city, state and zip are swapped.
// The source row is only read.
func (u *QuoteUseCase) Duplicate(ctx context.Context, id int64, reverse bool, actor models.Actor) (*models.Quote, error) {
	source, err := u.GetQuote(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	clone := *source
	clone.ID = 0
	clone.DueDate = nil
	if reverse {
		clone.OriginCity, clone.DestinationCity = source.DestinationCity, source.OriginCity
		clone.OriginState, clone.DestinationState = source.DestinationState, source.OriginState
		clone.OriginZip, clone.DestinationZip = source.DestinationZip, source.OriginZip
	}

	created, err := u.quotes.InsertQuote(ctx, &clone)
	if err != nil {
		return nil, err
	}

	u.logger.Info("quote duplicated",
		zap.Int64("source_id", source.ID),
		zap.Int64("quote_id", created.ID),
		zap.Bool("reverse", reverse),
	)
	return created, nil
}

// SetStatus assigns one of the column's options. There are no transition
// rules; any option may follow any other.
func (u *QuoteUseCase) SetStatus(ctx context.Context, id int64, column models.StatusColumn, value string, actor models.Actor) (*models.Quote, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if id <= 0 {
		return nil, ErrInvalidQuoteID
	}
	if !column.IsValid() || !column.Accepts(value) {
		return nil, ErrInvalidStatus
	}

	q, err := u.quotes.SetStatus(ctx, id, column, value)
	if err != nil {
		return nil, err
	}

	u.logger.Info("quote status set",
		zap.Int64("quote_id", id),
		zap.String("column", string(column)),
		zap.String("value", value),
	)
	return q, nil
}

func (u *QuoteUseCase) Archive(ctx context.Context, id int64, actor models.Actor) (*models.Quote, error) {
	return u.SetStatus(ctx, id, models.ColumnStatus, models.StatusArchived, actor)
}

func (u *QuoteUseCase) Reject(ctx context.Context, id int64, actor models.Actor) (*models.Quote, error) {
	return u.SetStatus(ctx, id, models.ColumnStatus, models.StatusRejected, actor)
}

func (u *QuoteUseCase) Cancel(ctx context.Context, id int64, actor models.Actor) (*models.Quote, error) {
	return u.SetStatus(ctx, id, models.ColumnStatus, models.StatusCancelled, actor)
}

// ConvertToOrder turns a priced quote into an order. The owner accepts the
// price, or a broker converts on their behalf.
func (u *QuoteUseCase) ConvertToOrder(ctx context.Context, id int64, actor models.Actor) (*models.Quote, error) {
	if _, err := u.GetQuote(ctx, id, actor); err != nil {
		return nil, err
	}

	order, err := u.quotes.ConvertToOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	u.logger.Info("quote converted to order",
		zap.Int64("quote_id", id),
		zap.String("actor", actor.UserID.String()),
	)
	return order, nil
}
