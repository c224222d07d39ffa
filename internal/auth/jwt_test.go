package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/safar/freight-quotes/internal/models"
)

func TestIssueAndParse(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	user := uuid.New()

	for _, role := range []string{models.RoleBroker, models.RoleShipper} {
		token, err := m.Issue(user, role)
		if err != nil {
			t.Fatalf("Issue %s: %v", role, err)
		}

		actor, err := m.Parse(token)
		if err != nil {
			t.Fatalf("Parse %s: %v", role, err)
		}
		if actor.UserID != user {
			t.Errorf("Expected user %s, got %s", user, actor.UserID)
		}
		if actor.IsAdmin() != (role == models.RoleBroker) {
			t.Errorf("Role %s: unexpected IsAdmin %v", role, actor.IsAdmin())
		}
	}
}

func TestIssueUnknownRole(t *testing.T) {
	_, err := NewJWTManager("secret", time.Hour).Issue(uuid.New(), "admin")
	if !errors.Is(err, ErrUnknownRole) {
		t.Errorf("Expected ErrUnknownRole, got %v", err)
	}
}

func TestParseRejectsBadTokens(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	user := uuid.New()

	other, err := NewJWTManager("other", time.Hour).Issue(user, models.RoleBroker)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	expired, err := NewJWTManager("secret", -time.Minute).Issue(user, models.RoleBroker)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.String()},
		Role:             models.RoleBroker,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("Sign none: %v", err)
	}

	tests := map[string]string{
		"wrong key": other,
		"expired":   expired,
		"alg none":  none,
		"garbage":   "not.a.token",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := m.Parse(token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
