package interfaces

import (
	"context"

	"github.com/google/uuid"
	"github.com/safar/freight-quotes/internal/models"
	"github.com/safar/freight-quotes/internal/store"
)

// IEditHistoryRepository is the append-only audit log of applied edits.
type IEditHistoryRepository interface {
	InsertEditHistory(ctx context.Context, h *models.EditHistory) (*models.EditHistory, error)
	ListEditHistory(ctx context.Context, quoteID int64) ([]models.EditHistory, error)
}

// IEditRequestRepository stores edit proposals awaiting broker review.
type IEditRequestRepository interface {
	InsertEditRequest(ctx context.Context, r *models.EditRequest) (*models.EditRequest, error)
	GetEditRequest(ctx context.Context, id int64) (*models.EditRequest, error)
	ListEditRequests(ctx context.Context, filter store.EditRequestFilter) ([]models.EditRequest, error)
	ResolveEditRequest(ctx context.Context, id int64, status models.EditRequestStatus, reviewer uuid.UUID) (*models.EditRequest, error)
}
