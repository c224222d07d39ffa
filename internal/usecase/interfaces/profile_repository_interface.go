package interfaces

import (
	"context"

	"github.com/google/uuid"
)

type IProfileRepository interface {
	CompanyIDForUser(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error)
}
