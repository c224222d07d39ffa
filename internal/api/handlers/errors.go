package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safar/freight-quotes/internal/database"
	"github.com/safar/freight-quotes/internal/usecase"
	"github.com/safar/freight-quotes/pkg/apperror"
)

var (
	errInvalidID      = apperror.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
	errInvalidPayload = apperror.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery   = apperror.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameter", http.StatusBadRequest)
)

func respondError(c *gin.Context, appErr *apperror.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapError translates use case and store errors into API errors. Anything
// unrecognised is a 500.
func mapError(err error) *apperror.AppError {
	switch {
	case errors.Is(err, usecase.ErrEditHistoryNotRecorded):
		return apperror.NewDomainError("EDIT_HISTORY_NOT_RECORDED", "Quote updated but edit history was not recorded", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return apperror.NewDomainError("INVALID_ID", "Invalid quote id", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuote):
		return apperror.NewDomainError("INVALID_QUOTE", "Origin and destination city and state are required", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEdit):
		return apperror.NewDomainError("INVALID_EDIT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReasonTooLong):
		return apperror.NewDomainError("REASON_TOO_LONG", "Reason must be at most 500 characters", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return apperror.NewDomainError("INVALID_STATUS", "Invalid status column or value", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDocument):
		return apperror.NewDomainError("INVALID_DOCUMENT", "A file is required", err, http.StatusBadRequest)
	case errors.Is(err, database.ErrInvalidCursor):
		return apperror.NewDomainError("INVALID_CURSOR", "Invalid cursor", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoChanges):
		return apperror.NewDomainError("NO_CHANGES", "No changes detected", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrForbidden):
		return apperror.NewDomainError("FORBIDDEN", "Not allowed", err, http.StatusForbidden)
	case errors.Is(err, database.ErrQuoteNotFound):
		return apperror.NewDomainError("QUOTE_NOT_FOUND", "Quote not found", err, http.StatusNotFound)
	case errors.Is(err, database.ErrEditRequestNotFound):
		return apperror.NewDomainError("EDIT_REQUEST_NOT_FOUND", "Edit request not found", err, http.StatusNotFound)
	case errors.Is(err, database.ErrDocumentNotFound):
		return apperror.NewDomainError("DOCUMENT_NOT_FOUND", "Document not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrEditRequestNotPending), errors.Is(err, database.ErrEditRequestResolved):
		return apperror.NewDomainError("EDIT_REQUEST_NOT_PENDING", "Edit request is not pending", err, http.StatusConflict)
	case errors.Is(err, database.ErrAlreadyOrder):
		return apperror.NewDomainError("ALREADY_ORDER", "Quote is already an order", err, http.StatusConflict)
	case errors.Is(err, database.ErrQuoteNotPriced):
		return apperror.NewDomainError("QUOTE_NOT_PRICED", "Quote must be priced before it becomes an order", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return apperror.NewDomainError("FILE_TOO_LARGE", "File too large", err, http.StatusRequestEntityTooLarge)
	default:
		return apperror.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
