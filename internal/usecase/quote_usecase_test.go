package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/safar/freight-quotes/internal/database"
	"github.com/safar/freight-quotes/internal/diff"
	"github.com/safar/freight-quotes/internal/models"
	"github.com/safar/freight-quotes/internal/store"
	mock_interfaces "github.com/safar/freight-quotes/internal/usecase/interfaces/mocks"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type quoteFixture struct {
	quotes   *mock_interfaces.MockIQuoteRepository
	profiles *mock_interfaces.MockIProfileRepository
	uc       *QuoteUseCase
}

func newQuoteFixture(t *testing.T) *quoteFixture {
	ctrl := gomock.NewController(t)
	f := &quoteFixture{
		quotes:   mock_interfaces.NewMockIQuoteRepository(ctrl),
		profiles: mock_interfaces.NewMockIProfileRepository(ctrl),
	}
	company := companyID
	f.profiles.EXPECT().CompanyIDForUser(gomock.Any(), gomock.Any()).Return(&company, nil).AnyTimes()
	f.uc = NewQuoteUseCase(f.quotes, f.profiles, zap.NewNop())
	return f
}

func insertEcho(id int64) func(context.Context, *models.Quote) (*models.Quote, error) {
	return func(_ context.Context, q *models.Quote) (*models.Quote, error) {
		out := *q
		out.ID = id
		return &out, nil
	}
}

func TestQuoteUseCase_Duplicate(t *testing.T) {
	f := newQuoteFixture(t)
	source := quote42()
	f.quotes.EXPECT().GetQuote(gomock.Any(), int64(42)).Return(source, nil)

	var inserted *models.Quote
	f.quotes.EXPECT().InsertQuote(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, q *models.Quote) (*models.Quote, error) {
			inserted = q
			return insertEcho(43)(ctx, q)
		},
	)

	dup, err := f.uc.Duplicate(context.Background(), 42, false, shipper)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dup.ID == 42 || dup.ID == 0 {
		t.Fatalf("expected a fresh id, got %d", dup.ID)
	}
	if inserted.ID != 0 {
		t.Fatalf("insert should leave id to the store, got %d", inserted.ID)
	}
	if dup.DueDate != nil {
		t.Fatalf("expected due_date cleared, got %v", dup.DueDate)
	}

	changes, err := diff.Compute(quote42(), dup, nil)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if got := changes.Fields(); len(got) != 1 || got[0] != "due_date" {
		t.Fatalf("only due_date may differ from the source, got %v", got)
	}
	if source.DueDate == nil || source.ID != 42 {
		t.Fatalf("source quote was mutated: %+v", source)
	}
}

func TestQuoteUseCase_DuplicateReverse(t *testing.T) {
	f := newQuoteFixture(t)
	f.quotes.EXPECT().GetQuote(gomock.Any(), int64(42)).Return(quote42(), nil)
	f.quotes.EXPECT().InsertQuote(gomock.Any(), gomock.Any()).DoAndReturn(insertEcho(44))

	rev, err := f.uc.Duplicate(context.Background(), 42, true, shipper)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rev.ID == 42 {
		t.Fatalf("expected a fresh id")
	}
	if rev.OriginCity != "Denver" || rev.OriginState != "CO" || rev.OriginZip != "80202" {
		t.Fatalf("unexpected origin %s, %s, %s", rev.OriginCity, rev.OriginState, rev.OriginZip)
	}
	if rev.DestinationCity != "Austin" || rev.DestinationState != "TX" || rev.DestinationZip != "73301" {
		t.Fatalf("unexpected destination %s, %s, %s", rev.DestinationCity, rev.DestinationState, rev.DestinationZip)
	}
	if rev.DueDate != nil {
		t.Fatalf("expected due_date cleared")
	}
	if rev.OriginStreet != "100 Congress Ave" || rev.DestinationStreet != "" {
		t.Fatalf("streets should not be swapped: %q / %q", rev.OriginStreet, rev.DestinationStreet)
	}
}

func TestQuoteUseCase_DuplicateInsertFails(t *testing.T) {
	f := newQuoteFixture(t)
	f.quotes.EXPECT().GetQuote(gomock.Any(), int64(42)).Return(quote42(), nil)
	f.quotes.EXPECT().InsertQuote(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

	if _, err := f.uc.Duplicate(context.Background(), 42, false, broker); err == nil {
		t.Fatalf("expected error")
	}
}

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("missing route", func(t *testing.T) {
		f := newQuoteFixture(t)
		_, err := f.uc.CreateQuote(context.Background(), models.Quote{OriginCity: "Austin"}, shipper)
		if !errors.Is(err, ErrInvalidQuote) {
			t.Fatalf("expected ErrInvalidQuote, got %v", err)
		}
	})

	t.Run("shipper submission starts pending and unpriced", func(t *testing.T) {
		f := newQuoteFixture(t)
		price := decimal.NewFromInt(1)
		in := models.Quote{
			OriginCity: " Austin ", OriginState: "TX",
			DestinationCity: "Denver", DestinationState: "CO",
			Price:  &price,
			Status: models.StatusCompleted,
			UserID: uuid.New(),
		}
		f.quotes.EXPECT().InsertQuote(gomock.Any(), gomock.Any()).DoAndReturn(insertEcho(7))

		q, err := f.uc.CreateQuote(context.Background(), in, shipper)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Price != nil || q.Status != models.StatusPending || q.BrokersStatus != models.StatusPending {
			t.Fatalf("unexpected defaults %+v", q)
		}
		if q.UserID != shipperID {
			t.Fatalf("shipper cannot create on behalf of others, got %s", q.UserID)
		}
		if q.CompanyID == nil || *q.CompanyID != companyID {
			t.Fatalf("expected company %s, got %v", companyID, q.CompanyID)
		}
		if q.OriginCity != "Austin" {
			t.Fatalf("expected trimmed origin city, got %q", q.OriginCity)
		}
	})

	t.Run("broker on behalf of shipper", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quotes.EXPECT().InsertQuote(gomock.Any(), gomock.Any()).DoAndReturn(insertEcho(8))

		q, err := f.uc.CreateQuote(context.Background(), models.Quote{
			OriginCity: "Austin", OriginState: "TX",
			DestinationCity: "Denver", DestinationState: "CO",
			UserID: shipperID,
		}, broker)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.UserID != shipperID {
			t.Fatalf("expected owner %s, got %s", shipperID, q.UserID)
		}
	})
}

func TestQuoteUseCase_SetStatus(t *testing.T) {
	t.Run("shipper forbidden", func(t *testing.T) {
		f := newQuoteFixture(t)
		_, err := f.uc.SetStatus(context.Background(), 42, models.ColumnStatus, models.StatusArchived, shipper)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	invalid := []struct {
		name   string
		column models.StatusColumn
		value  string
	}{
		{"unknown column", models.StatusColumn("price"), models.StatusPending},
		{"unknown value", models.ColumnStatus, "Lost"},
		{"archived is not a broker option", models.ColumnBrokersStatus, models.StatusArchived},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			f := newQuoteFixture(t)
			_, err := f.uc.SetStatus(context.Background(), 42, tc.column, tc.value, broker)
			if !errors.Is(err, ErrInvalidStatus) {
				t.Fatalf("expected ErrInvalidStatus, got %v", err)
			}
		})
	}

	t.Run("any transition", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quotes.EXPECT().SetStatus(gomock.Any(), int64(42), models.ColumnStatus, models.StatusPending).
			Return(&models.Quote{ID: 42, Status: models.StatusPending}, nil)

		q, err := f.uc.SetStatus(context.Background(), 42, models.ColumnStatus, models.StatusPending, broker)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != models.StatusPending {
			t.Fatalf("expected Pending, got %s", q.Status)
		}
	})
}

func TestQuoteUseCase_Shortcuts(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *QuoteUseCase, ctx context.Context, id int64, actor models.Actor) (*models.Quote, error)
		status string
	}{
		{name: "archive", call: (*QuoteUseCase).Archive, status: models.StatusArchived},
		{name: "reject", call: (*QuoteUseCase).Reject, status: models.StatusRejected},
		{name: "cancel", call: (*QuoteUseCase).Cancel, status: models.StatusCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newQuoteFixture(t)
			f.quotes.EXPECT().SetStatus(gomock.Any(), int64(42), models.ColumnStatus, tc.status).
				Return(&models.Quote{ID: 42, Status: tc.status}, nil)

			q, err := tc.call(f.uc, context.Background(), 42, broker)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Status != tc.status {
				t.Fatalf("expected %s, got %s", tc.status, q.Status)
			}
		})
	}
}

func TestQuoteUseCase_ConvertToOrder(t *testing.T) {
	t.Run("not priced", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quotes.EXPECT().GetQuote(gomock.Any(), int64(42)).Return(quote42(), nil)
		f.quotes.EXPECT().ConvertToOrder(gomock.Any(), int64(42)).Return(nil, database.ErrQuoteNotPriced)

		_, err := f.uc.ConvertToOrder(context.Background(), 42, shipper)
		if !errors.Is(err, database.ErrQuoteNotPriced) {
			t.Fatalf("expected ErrQuoteNotPriced, got %v", err)
		}
	})

	t.Run("converted", func(t *testing.T) {
		f := newQuoteFixture(t)
		order := quote42()
		order.Status = models.StatusDispatched
		f.quotes.EXPECT().GetQuote(gomock.Any(), int64(42)).Return(quote42(), nil)
		f.quotes.EXPECT().ConvertToOrder(gomock.Any(), int64(42)).Return(order, nil)

		got, err := f.uc.ConvertToOrder(context.Background(), 42, shipper)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsOrder() {
			t.Fatalf("expected an order, got status %s", got.Status)
		}
	})
}

func TestQuoteUseCase_ListScope(t *testing.T) {
	t.Run("shipper limited to company", func(t *testing.T) {
		f := newQuoteFixture(t)
		company := companyID
		f.quotes.EXPECT().ListQuotes(gomock.Any(), store.QuoteFilter{
			CompanyID: &company,
			Status:    models.StatusPriced,
			Stage:     store.StageQuotes,
		}, 2, 10).Return(&store.OffsetPage[models.Quote]{}, nil)

		other := uuid.New()
		_, err := f.uc.ListQuotes(context.Background(), QuoteQuery{
			CompanyID: &other,
			Status:    models.StatusPriced,
			Stage:     store.StageQuotes,
			Page:      2,
			PageSize:  10,
		}, shipper)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("shipper without company limited to own quotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewQuoteUseCase(quotes, profiles, zap.NewNop())

		profiles.EXPECT().CompanyIDForUser(gomock.Any(), shipperID).Return(nil, nil)
		quotes.EXPECT().ListOrders(gomock.Any(), store.QuoteFilter{UserID: &shipper.UserID}, "abc", 5).
			Return(&store.CursorPage[models.Quote]{}, nil)

		if _, err := uc.ListOrders(context.Background(), OrderQuery{Cursor: "abc", Limit: 5}, shipper); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("broker sees requested company", func(t *testing.T) {
		f := newQuoteFixture(t)
		other := uuid.New()
		f.quotes.EXPECT().ListQuotes(gomock.Any(), store.QuoteFilter{CompanyID: &other}, 1, 20).
			Return(&store.OffsetPage[models.Quote]{}, nil)

		if _, err := f.uc.ListQuotes(context.Background(), QuoteQuery{CompanyID: &other, Page: 1, PageSize: 20}, broker); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_GetQuoteForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
	uc := NewQuoteUseCase(quotes, profiles, zap.NewNop())

	stranger := models.Actor{UserID: uuid.New(), Role: models.RoleShipper}
	elsewhere := uuid.New()
	quotes.EXPECT().GetQuote(gomock.Any(), int64(42)).Return(quote42(), nil)
	profiles.EXPECT().CompanyIDForUser(gomock.Any(), stranger.UserID).Return(&elsewhere, nil)

	if _, err := uc.GetQuote(context.Background(), 42, stranger); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
