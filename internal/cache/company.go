package cache

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const noCompany = "none"

type companySource interface {
	CompanyIDForUser(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error)
}

// CompanyCache is a read-through cache in front of the profile lookup.
// Redis failures are logged and the lookup falls through to the source.
type CompanyCache struct {
	client *redis.Client
	source companySource
	ttl    time.Duration
	logger *zap.Logger
}

func NewCompanyCache(client *redis.Client, source companySource, ttl time.Duration, logger *zap.Logger) *CompanyCache {
	return &CompanyCache{
		client: client,
		source: source,
		ttl:    ttl,
		logger: logger,
	}
}

func companyKey(userID uuid.UUID) string {
	return "profile:company:" + userID.String()
}

func (c *CompanyCache) CompanyIDForUser(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	key := companyKey(userID)

	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if cached == noCompany {
			return nil, nil
		}
		id, parseErr := uuid.Parse(cached)
		if parseErr == nil {
			return &id, nil
		}
		c.logger.Warn("discarding malformed cached company id",
			zap.String("key", key), zap.Error(parseErr))
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("company cache read failed",
			zap.String("user_id", userID.String()), zap.Error(err))
	}

	companyID, err := c.source.CompanyIDForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	value := noCompany
	if companyID != nil {
		value = companyID.String()
	}
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.logger.Warn("company cache write failed",
			zap.String("user_id", userID.String()), zap.Error(err))
	}
	return companyID, nil
}
