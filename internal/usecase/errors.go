package usecase

import "errors"

var (
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrInvalidQuote           = errors.New("invalid quote")
	ErrInvalidEdit            = errors.New("invalid edit")
	ErrNoChanges              = errors.New("no changes detected")
	ErrReasonTooLong          = errors.New("reason is too long")
	ErrEditHistoryNotRecorded = errors.New("quote updated but edit history was not recorded")
	ErrEditRequestNotPending  = errors.New("edit request is not pending")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidDocument        = errors.New("invalid document")
	ErrFileTooLarge           = errors.New("file too large")
)

// MaxReasonLength bounds the free-text reason of an edit request, in characters.
const MaxReasonLength = 500
