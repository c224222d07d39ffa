package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/safar/freight-quotes/internal/database"
	"github.com/safar/freight-quotes/internal/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var quoteColumns = []string{
	"id",
	"origin_city", "origin_state", "origin_zip", "origin_street",
	"destination_city", "destination_state", "destination_zip", "destination_street",
	"freight_type", "year", "make", "model",
	"length", "width", "height", "weight",
	"container_length", "container_type", "freight_class", "packaging_type",
	"commodity", "goods_value",
	"due_date", "price",
	"status", "brokers_status",
	"user_id", "company_id",
	"inserted_at",
}

var quoteColumnList = strings.Join(quoteColumns, ", ")

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuote(row rowScanner) (*models.Quote, error) {
	q := &models.Quote{}
	err := row.Scan(
		&q.ID,
		&q.OriginCity, &q.OriginState, &q.OriginZip, &q.OriginStreet,
		&q.DestinationCity, &q.DestinationState, &q.DestinationZip, &q.DestinationStreet,
		&q.FreightType, &q.Year, &q.Make, &q.Model,
		&q.Length, &q.Width, &q.Height, &q.Weight,
		&q.ContainerLength, &q.ContainerType, &q.FreightClass, &q.PackagingType,
		&q.Commodity, &q.GoodsValue,
		&q.DueDate, &q.Price,
		&q.Status, &q.BrokersStatus,
		&q.UserID, &q.CompanyID,
		&q.InsertedAt,
	)
	if err != nil {
		return nil, err
	}
	return q, nil
}

func GetQuote(ctx context.Context, db database.DBTX, id int64) (*models.Quote, error) {
	query := `SELECT ` + quoteColumnList + ` FROM shippingquotes WHERE id = $1`

	q, err := scanQuote(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return q, nil
}

// InsertQuote stores q as a new row. The id and inserted_at of q are ignored
// and assigned by the database; the stored row is returned.
func InsertQuote(ctx context.Context, db database.DBTX, q *models.Quote) (*models.Quote, error) {
	query, args, err := psql.Insert("shippingquotes").
		Columns(quoteColumns[1 : len(quoteColumns)-1]...).
		Values(
			q.OriginCity, q.OriginState, q.OriginZip, q.OriginStreet,
			q.DestinationCity, q.DestinationState, q.DestinationZip, q.DestinationStreet,
			q.FreightType, q.Year, q.Make, q.Model,
			q.Length, q.Width, q.Height, q.Weight,
			q.ContainerLength, q.ContainerType, q.FreightClass, q.PackagingType,
			q.Commodity, q.GoodsValue,
			q.DueDate, q.Price,
			q.Status, q.BrokersStatus,
			q.UserID, q.CompanyID,
		).
		Suffix("RETURNING " + quoteColumnList).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert quote: %w", err)
	}

	created, err := scanQuote(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("insert quote: %w", err)
	}
	return created, nil
}

// UpdateQuoteFields sets only the given columns. There is no version check;
// the last writer wins.
func UpdateQuoteFields(ctx context.Context, db database.DBTX, id int64, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	for column := range values {
		if !isQuoteColumn(column) || column == "id" || column == "inserted_at" {
			return fmt.Errorf("update quote: column %q is not writable", column)
		}
	}

	query, args, err := psql.Update("shippingquotes").
		SetMap(values).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update quote: %w", err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return database.ErrQuoteNotFound
	}
	return nil
}

func isQuoteColumn(name string) bool {
	for _, c := range quoteColumns {
		if c == name {
			return true
		}
	}
	return false
}

type Stage int

const (
	StageAll Stage = iota
	StageQuotes
	StageOrders
)

type QuoteFilter struct {
	CompanyID     *uuid.UUID
	UserID        *uuid.UUID
	Status        string
	BrokersStatus string
	Stage         Stage
}

func (f QuoteFilter) apply(b sq.SelectBuilder) sq.SelectBuilder {
	if f.CompanyID != nil {
		b = b.Where(sq.Eq{"company_id": f.CompanyID.String()})
	}
	if f.UserID != nil {
		b = b.Where(sq.Eq{"user_id": f.UserID.String()})
	}
	if f.Status != "" {
		b = b.Where(sq.Eq{"status": f.Status})
	}
	if f.BrokersStatus != "" {
		b = b.Where(sq.Eq{"brokers_status": f.BrokersStatus})
	}
	switch f.Stage {
	case StageOrders:
		b = b.Where(sq.Eq{"status": models.OrderStatuses()})
	case StageQuotes:
		b = b.Where(sq.NotEq{"status": models.OrderStatuses()})
	}
	return b
}

func ListQuotes(ctx context.Context, db database.DBTX, filter QuoteFilter, page, pageSize int) (*OffsetPage[models.Quote], error) {
	page, pageSize = NormalizePage(page, pageSize)

	countQuery, countArgs, err := filter.apply(psql.Select("COUNT(*)").From("shippingquotes")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count quotes: %w", err)
	}

	var total int64
	if err := db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count quotes: %w", err)
	}

	query, args, err := filter.apply(psql.Select(quoteColumns...).From("shippingquotes")).
		OrderBy("inserted_at DESC", "id DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list quotes: %w", err)
	}

	quotes, err := queryQuotes(ctx, db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	return newOffsetPage(quotes, total, page, pageSize), nil
}

// ListOrdersCursor pages through order-stage rows newest first using the
// (inserted_at, id) keyset.
func ListOrdersCursor(ctx context.Context, db database.DBTX, filter QuoteFilter, cursor string, limit int) (*CursorPage[models.Quote], error) {
	cursorData, err := DecodeCursor(cursor)
	if err != nil {
		return nil, err
	}
	_, limit = NormalizePage(1, limit)

	filter.Stage = StageOrders
	b := filter.apply(psql.Select(quoteColumns...).From("shippingquotes"))
	if cursorData != nil {
		b = b.Where(sq.Expr("(inserted_at, id) < (?, ?)", cursorData.InsertedAt, cursorData.ID))
	}

	query, args, err := b.OrderBy("inserted_at DESC", "id DESC").
		Limit(uint64(limit + 1)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list orders: %w", err)
	}

	orders, err := queryQuotes(ctx, db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	hasMore := len(orders) > limit
	if hasMore {
		orders = orders[:limit]
	}

	var nextCursor string
	if hasMore && len(orders) > 0 {
		last := orders[len(orders)-1]
		nextCursor = EncodeCursor(QuoteCursor{
			InsertedAt: last.InsertedAt,
			ID:         last.ID,
		})
	}

	if orders == nil {
		orders = []models.Quote{}
	}
	return &CursorPage[models.Quote]{
		Items:      orders,
		NextCursor: nextCursor,
		HasMore:    hasMore,
	}, nil
}

func queryQuotes(ctx context.Context, db database.DBTX, query string, args ...any) ([]models.Quote, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []models.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		quotes = append(quotes, *q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return quotes, nil
}

// ConvertToOrder moves a priced quote into the order stage. The row is
// locked for the duration of the serializable transaction.
func ConvertToOrder(ctx context.Context, db *sql.DB, id int64) (*models.Quote, error) {
	var order *models.Quote

	opts := database.DefaultTxOptions()
	opts.IsolationLevel = sql.LevelSerializable

	err := database.WithRetry(ctx, db, opts, func(tx *sql.Tx) error {
		q, err := scanQuote(tx.QueryRowContext(ctx,
			`SELECT `+quoteColumnList+` FROM shippingquotes WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return database.ErrQuoteNotFound
			}
			return fmt.Errorf("lock quote: %w", err)
		}

		if q.IsOrder() {
			return database.ErrAlreadyOrder
		}
		if !q.IsPriced() {
			return database.ErrQuoteNotPriced
		}

		order, err = scanQuote(tx.QueryRowContext(ctx,
			`UPDATE shippingquotes SET status = $1 WHERE id = $2 RETURNING `+quoteColumnList,
			models.StatusDispatched, id))
		if err != nil {
			return fmt.Errorf("convert quote: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return order, nil
}

// SetStatus overwrites one status column. Any option may replace any other.
func SetStatus(ctx context.Context, db database.DBTX, id int64, column models.StatusColumn, value string) (*models.Quote, error) {
	if !column.IsValid() {
		return nil, fmt.Errorf("set status: unknown column %q", column)
	}

	query, args, err := psql.Update("shippingquotes").
		Set(string(column), value).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + quoteColumnList).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set status: %w", err)
	}

	q, err := scanQuote(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("set status: %w", err)
	}
	return q, nil
}
