package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/safar/freight-quotes/internal/database"
	"github.com/safar/freight-quotes/internal/models"
)

func GetProfile(ctx context.Context, db database.DBTX, userID uuid.UUID) (*models.Profile, error) {
	p := &models.Profile{}

	err := db.QueryRowContext(ctx,
		`SELECT id, company_id, email, first_name, last_name
		 FROM profiles
		 WHERE id = $1`,
		userID).Scan(&p.ID, &p.CompanyID, &p.Email, &p.FirstName, &p.LastName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// CompanyIDForUser returns the user's company, or nil when the profile has
// none.
func CompanyIDForUser(ctx context.Context, db database.DBTX, userID uuid.UUID) (*uuid.UUID, error) {
	p, err := GetProfile(ctx, db, userID)
	if err != nil {
		return nil, err
	}
	return p.CompanyID, nil
}

func UpsertProfile(ctx context.Context, db database.DBTX, p *models.Profile) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO profiles (id, company_id, email, first_name, last_name)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE
		 SET company_id = EXCLUDED.company_id,
		     email = EXCLUDED.email,
		     first_name = EXCLUDED.first_name,
		     last_name = EXCLUDED.last_name`,
		p.ID, p.CompanyID, p.Email, p.FirstName, p.LastName)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
