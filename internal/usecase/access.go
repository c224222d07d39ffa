package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/safar/freight-quotes/internal/database"
	"github.com/safar/freight-quotes/internal/models"
	"github.com/safar/freight-quotes/internal/usecase/interfaces"
)

// access answers who may see a record: brokers see everything, shippers see
// their own records and those of their company.
type access struct {
	profiles interfaces.IProfileRepository
}

// companyOf returns nil for users without a profile.
func (a access) companyOf(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	companyID, err := a.profiles.CompanyIDForUser(ctx, userID)
	if errors.Is(err, database.ErrProfileNotFound) {
		return nil, nil
	}
	return companyID, err
}

func (a access) canView(ctx context.Context, actor models.Actor, ownerID uuid.UUID, ownerCompany *uuid.UUID) error {
	if actor.IsAdmin() || ownerID == actor.UserID {
		return nil
	}
	if ownerCompany == nil {
		return ErrForbidden
	}

	companyID, err := a.companyOf(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if companyID != nil && *companyID == *ownerCompany {
		return nil
	}
	return ErrForbidden
}
