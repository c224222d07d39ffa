package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/safar/freight-quotes/internal/database"
	"github.com/safar/freight-quotes/internal/diff"
	"github.com/safar/freight-quotes/internal/models"
	"github.com/safar/freight-quotes/internal/store"
	"github.com/safar/freight-quotes/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// EditInput is a candidate version of a quote. Only Fields are compared
// against the stored record; when Fields is empty every declared field is.
type EditInput struct {
	QuoteID int64
	Updated models.Quote
	Fields  []string
	Reason  string
	Actor   models.Actor
}

// EditResult reports which path an edit took. Exactly one of History and
// Request is set.
type EditResult struct {
	Applied bool                `json:"applied"`
	Changes diff.Changes        `json:"changes"`
	History *models.EditHistory `json:"history,omitempty"`
	Request *models.EditRequest `json:"request,omitempty"`
}

// IEditUseCase decides whether an edit applies now or waits for review.
//
// Brokers edit directly and every applied edit leaves one history row.
// Shippers produce a pending edit request and the quote is left untouched.
type IEditUseCase interface {
	SubmitEdit(ctx context.Context, in EditInput) (*EditResult, error)
	PatchQuote(ctx context.Context, quoteID int64, patch map[string]json.RawMessage, reason string, actor models.Actor) (*EditResult, error)
	ReviewEditRequest(ctx context.Context, requestID int64, approve bool, reviewer models.Actor) (*models.EditRequest, error)
	ListEditHistory(ctx context.Context, quoteID int64, actor models.Actor) ([]models.EditHistory, error)
	ListEditRequests(ctx context.Context, query EditRequestQuery, actor models.Actor) ([]models.EditRequest, error)
}

type EditRequestQuery struct {
	QuoteID   int64
	CompanyID *uuid.UUID
	Status    models.EditRequestStatus
}

type EditUseCase struct {
	quotes   interfaces.IQuoteRepository
	history  interfaces.IEditHistoryRepository
	requests interfaces.IEditRequestRepository
	access   access
	logger   *zap.Logger
}

var _ IEditUseCase = (*EditUseCase)(nil)

func NewEditUseCase(
	quotes interfaces.IQuoteRepository,
	history interfaces.IEditHistoryRepository,
	requests interfaces.IEditRequestRepository,
	profiles interfaces.IProfileRepository,
	logger *zap.Logger,
) *EditUseCase {
	return &EditUseCase{
		quotes:   quotes,
		history:  history,
		requests: requests,
		access:   access{profiles: profiles},
		logger:   logger,
	}
}

func (u *EditUseCase) SubmitEdit(ctx context.Context, in EditInput) (*EditResult, error) {
	if in.QuoteID <= 0 {
		return nil, ErrInvalidQuoteID
	}

	original, err := u.quotes.GetQuote(ctx, in.QuoteID)
	if err != nil {
		return nil, err
	}
	return u.submit(ctx, original, &in.Updated, in.Fields, in.Reason, in.Actor)
}

// PatchQuote applies a JSON patch keyed by column name to the stored quote and
// submits the result. Keys present in patch are the supplied fields.
func (u *EditUseCase) PatchQuote(ctx context.Context, quoteID int64, patch map[string]json.RawMessage, reason string, actor models.Actor) (*EditResult, error) {
	if quoteID <= 0 {
		return nil, ErrInvalidQuoteID
	}
	if len(patch) == 0 {
		return nil, ErrNoChanges
	}

	original, err := u.quotes.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	updated := *original
	if err := diff.Apply(&updated, patch); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEdit, err)
	}

	fields := make([]string, 0, len(patch))
	for name := range patch {
		fields = append(fields, name)
	}
	return u.submit(ctx, original, &updated, fields, reason, actor)
}

func (u *EditUseCase) submit(ctx context.Context, original, updated *models.Quote, fields []string, reason string, actor models.Actor) (*EditResult, error) {
	if err := u.access.canView(ctx, actor, original.UserID, original.CompanyID); err != nil {
		return nil, err
	}

	changes, err := diff.Compute(original, updated, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEdit, err)
	}
	if changes.Empty() {
		return nil, ErrNoChanges
	}

	if actor.IsAdmin() {
		return u.applyDirect(ctx, original.ID, updated, changes, actor)
	}
	return u.requestEdit(ctx, original.ID, changes, reason, actor)
}

// applyDirect writes the changed columns, then appends one history row. A
// failed history insert does not undo the update.
func (u *EditUseCase) applyDirect(ctx context.Context, quoteID int64, updated *models.Quote, changes diff.Changes, actor models.Actor) (*EditResult, error) {
	values, err := diff.Values(updated, changes.Fields())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEdit, err)
	}

	companyID, err := u.access.companyOf(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	if err := u.quotes.UpdateQuote(ctx, quoteID, values); err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(changes)
	if err != nil {
		return nil, fmt.Errorf("%w: encode changes: %w", ErrEditHistoryNotRecorded, err)
	}

	entry, err := u.history.InsertEditHistory(ctx, &models.EditHistory{
		QuoteID:   quoteID,
		EditedBy:  actor.UserID,
		Changes:   string(encoded),
		CompanyID: companyID,
	})
	if err != nil {
		u.logger.Error("quote updated without edit history",
			zap.Int64("quote_id", quoteID),
			zap.String("edited_by", actor.UserID.String()),
			zap.Strings("fields", changes.Fields()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrEditHistoryNotRecorded, err)
	}

	u.logger.Info("quote edited",
		zap.Int64("quote_id", quoteID),
		zap.String("edited_by", actor.UserID.String()),
		zap.Strings("fields", changes.Fields()),
	)

	return &EditResult{Applied: true, Changes: changes, History: entry}, nil
}

func (u *EditUseCase) requestEdit(ctx context.Context, quoteID int64, changes diff.Changes, reason string, actor models.Actor) (*EditResult, error) {
	if utf8.RuneCountInString(reason) > MaxReasonLength {
		return nil, ErrReasonTooLong
	}

	encoded, err := json.Marshal(changes.Requested())
	if err != nil {
		return nil, fmt.Errorf("encode requested changes: %w", err)
	}

	companyID, err := u.access.companyOf(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	req, err := u.requests.InsertEditRequest(ctx, &models.EditRequest{
		QuoteID:          quoteID,
		RequestedBy:      actor.UserID,
		RequestedChanges: encoded,
		Reason:           reason,
		CompanyID:        companyID,
		Status:           models.EditRequestPending,
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("edit request submitted",
		zap.Int64("quote_id", quoteID),
		zap.Int64("edit_request_id", req.ID),
		zap.String("requested_by", actor.UserID.String()),
	)

	return &EditResult{Applied: false, Changes: changes, Request: req}, nil
}

// ReviewEditRequest approves or rejects a pending request. Approval applies
// the requested values as a direct edit by the reviewer before the request
// is marked approved.
func (u *EditUseCase) ReviewEditRequest(ctx context.Context, requestID int64, approve bool, reviewer models.Actor) (*models.EditRequest, error) {
	if !reviewer.IsAdmin() {
		return nil, ErrForbidden
	}

	req, err := u.requests.GetEditRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.EditRequestPending {
		return nil, ErrEditRequestNotPending
	}

	status := models.EditRequestRejected
	if approve {
		status = models.EditRequestApproved
		if err := u.applyRequest(ctx, req, reviewer); err != nil {
			return nil, err
		}
	}

	resolved, err := u.requests.ResolveEditRequest(ctx, requestID, status, reviewer.UserID)
	if err != nil {
		if errors.Is(err, database.ErrEditRequestResolved) {
			return nil, ErrEditRequestNotPending
		}
		return nil, err
	}

	u.logger.Info("edit request reviewed",
		zap.Int64("edit_request_id", requestID),
		zap.String("status", string(status)),
		zap.String("reviewed_by", reviewer.UserID.String()),
	)
	return resolved, nil
}

func (u *EditUseCase) applyRequest(ctx context.Context, req *models.EditRequest, reviewer models.Actor) error {
	var requested map[string]diff.RequestedChange
	if err := json.Unmarshal(req.RequestedChanges, &requested); err != nil {
		return fmt.Errorf("decode requested changes: %w", err)
	}
	targets := diff.FromRequested(requested).Targets()

	original, err := u.quotes.GetQuote(ctx, req.QuoteID)
	if err != nil {
		return err
	}

	updated := *original
	if err := diff.Apply(&updated, targets); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEdit, err)
	}

	fields := make([]string, 0, len(targets))
	for name := range targets {
		fields = append(fields, name)
	}

	changes, err := diff.Compute(original, &updated, fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEdit, err)
	}
	if changes.Empty() {
		// The quote already carries the requested values.
		return nil
	}

	_, err = u.applyDirect(ctx, original.ID, &updated, changes, reviewer)
	return err
}

func (u *EditUseCase) ListEditHistory(ctx context.Context, quoteID int64, actor models.Actor) ([]models.EditHistory, error) {
	if quoteID <= 0 {
		return nil, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if err := u.access.canView(ctx, actor, q.UserID, q.CompanyID); err != nil {
		return nil, err
	}
	return u.history.ListEditHistory(ctx, quoteID)
}

// ListEditRequests shows brokers every request; shippers only see their own.
func (u *EditUseCase) ListEditRequests(ctx context.Context, query EditRequestQuery, actor models.Actor) ([]models.EditRequest, error) {
	filter := store.EditRequestFilter{
		QuoteID: query.QuoteID,
		Status:  query.Status,
	}
	if actor.IsAdmin() {
		filter.CompanyID = query.CompanyID
	} else {
		filter.RequestedBy = &actor.UserID
	}
	return u.requests.ListEditRequests(ctx, filter)
}
