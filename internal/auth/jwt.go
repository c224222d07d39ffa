// Package auth issues and verifies the HS256 bearer tokens used by the API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/safar/freight-quotes/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrUnknownRole  = errors.New("unknown role")
)

type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"` // broker | shipper
}

type JWTManager struct {
	signingKey []byte
	ttl        time.Duration
}

func NewJWTManager(signingKey string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		signingKey: []byte(signingKey),
		ttl:        ttl,
	}
}

func (m *JWTManager) Issue(userID uuid.UUID, role string) (string, error) {
	if role != models.RoleBroker && role != models.RoleShipper {
		return "", fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Role: role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signingKey)
}

func (m *JWTManager) Parse(tokenStr string) (models.Actor, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.signingKey, nil
	})
	if err != nil {
		return models.Actor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return models.Actor{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return models.Actor{}, fmt.Errorf("%w: subject: %v", ErrInvalidToken, err)
	}
	if claims.Role != models.RoleBroker && claims.Role != models.RoleShipper {
		return models.Actor{}, fmt.Errorf("%w: %s", ErrUnknownRole, claims.Role)
	}

	return models.Actor{UserID: userID, Role: claims.Role}, nil
}
