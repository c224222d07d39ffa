package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/safar/freight-quotes/internal/api/handlers"
	"github.com/safar/freight-quotes/internal/api/handlers/mocks"
	"github.com/safar/freight-quotes/internal/auth"
	"github.com/safar/freight-quotes/internal/config"
	"github.com/safar/freight-quotes/internal/models"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type upPinger struct{}

func (upPinger) Ping(context.Context) error { return nil }

func newEngine(t *testing.T) (http.Handler, *mocks.MockIQuoteUseCase, *auth.JWTManager) {
	ctrl := gomock.NewController(t)
	quotes := mocks.NewMockIQuoteUseCase(ctrl)
	jwt := auth.NewJWTManager("secret", time.Hour)

	cfg := config.Default()
	cfg.Server.AllowedOrigins = []string{"https://app.example.com"}

	r := New(cfg, Handlers{
		Quotes:    handlers.NewQuoteHandler(quotes),
		Edits:     handlers.NewEditHandler(mocks.NewMockIEditUseCase(ctrl)),
		Documents: handlers.NewDocumentHandler(mocks.NewMockIDocumentUseCase(ctrl)),
		Health:    handlers.NewHealthHandler(upPinger{}, zap.NewNop()),
	}, jwt, zap.NewNop())
	return r, quotes, jwt
}

func TestPublicRoutes(t *testing.T) {
	r, _, _ := newEngine(t)

	for _, path := range []string{"/health", "/v1/statuses"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _, _ := newEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/1", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthenticatedRequestReachesHandler(t *testing.T) {
	r, quotes, jwt := newEngine(t)

	userID := uuid.New()
	token, err := jwt.Issue(userID, models.RoleShipper)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	actor := models.Actor{UserID: userID, Role: models.RoleShipper}
	quotes.EXPECT().GetQuote(gomock.Any(), int64(1), actor).Return(&models.Quote{ID: 1, UserID: userID}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/quotes/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestCORSPreflight(t *testing.T) {
	r, _, _ := newEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/quotes", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("unexpected allow origin %q", got)
	}
}
