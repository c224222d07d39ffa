package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/safar/freight-quotes/internal/api/handlers/mocks"
	"github.com/safar/freight-quotes/internal/database"
	"github.com/safar/freight-quotes/internal/diff"
	"github.com/safar/freight-quotes/internal/models"
	"github.com/safar/freight-quotes/internal/usecase"
	"go.uber.org/mock/gomock"
)

func TestEditHandler_EditQuote(t *testing.T) {
	t.Run("applied by broker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEditUseCase(ctrl)
		h := NewEditHandler(uc)
		r := newRouter(&broker)
		r.PATCH("/v1/quotes/:id", h.EditQuote)

		uc.EXPECT().PatchQuote(gomock.Any(), int64(42), gomock.Any(), "", broker).
			DoAndReturn(func(_ any, _ int64, patch map[string]json.RawMessage, _ string, _ models.Actor) (*usecase.EditResult, error) {
				if string(patch["origin_city"]) != `"Dallas"` {
					t.Errorf("unexpected patch %v", patch)
				}
				return &usecase.EditResult{
					Applied: true,
					Changes: diff.Changes{"origin_city": {Old: json.RawMessage(`"Austin"`), New: json.RawMessage(`"Dallas"`)}},
					History: &models.EditHistory{ID: 1, QuoteID: 42},
				}, nil
			})

		w := doJSON(r, http.MethodPatch, "/v1/quotes/42", `{"origin_city":"Dallas"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("requested by shipper", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEditUseCase(ctrl)
		h := NewEditHandler(uc)
		r := newRouter(&shipper)
		r.PATCH("/v1/quotes/:id", h.EditQuote)

		uc.EXPECT().PatchQuote(gomock.Any(), int64(42), gomock.Any(), "wrong city", shipper).
			Return(&usecase.EditResult{Request: &models.EditRequest{ID: 5, Status: models.EditRequestPending}}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/quotes/42?reason=wrong%20city", `{"origin_city":"Dallas"}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"no changes", usecase.ErrNoChanges, http.StatusUnprocessableEntity, "NO_CHANGES"},
		{"unknown field", fmt.Errorf("%w: %w", usecase.ErrInvalidEdit, diff.ErrUnknownField), http.StatusBadRequest, "INVALID_EDIT"},
		{"reason too long", usecase.ErrReasonTooLong, http.StatusBadRequest, "REASON_TOO_LONG"},
		{"history not recorded", fmt.Errorf("%w: %w", usecase.ErrEditHistoryNotRecorded, fmt.Errorf("conn reset")), http.StatusInternalServerError, "EDIT_HISTORY_NOT_RECORDED"},
		{"not found", database.ErrQuoteNotFound, http.StatusNotFound, "QUOTE_NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIEditUseCase(ctrl)
			h := NewEditHandler(uc)
			r := newRouter(&broker)
			r.PATCH("/v1/quotes/:id", h.EditQuote)

			uc.EXPECT().PatchQuote(gomock.Any(), int64(42), gomock.Any(), "", broker).Return(nil, tc.err)

			w := doJSON(r, http.MethodPatch, "/v1/quotes/42", `{"make":"Komatsu"}`)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if code := errorCode(t, w); code != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, code)
			}
		})
	}

	t.Run("body must be an object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewEditHandler(mocks.NewMockIEditUseCase(ctrl))
		r := newRouter(&broker)
		r.PATCH("/v1/quotes/:id", h.EditQuote)

		w := doJSON(r, http.MethodPatch, "/v1/quotes/42", `["origin_city"]`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestEditHandler_Review(t *testing.T) {
	cases := []struct {
		name    string
		path    string
		approve bool
		err     error
		status  int
	}{
		{"approve", "/v1/edit-requests/5/approve", true, nil, http.StatusOK},
		{"reject", "/v1/edit-requests/5/reject", false, nil, http.StatusOK},
		{"not pending", "/v1/edit-requests/5/approve", true, usecase.ErrEditRequestNotPending, http.StatusConflict},
		{"not found", "/v1/edit-requests/5/reject", false, database.ErrEditRequestNotFound, http.StatusNotFound},
		{"forbidden", "/v1/edit-requests/5/approve", true, usecase.ErrForbidden, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIEditUseCase(ctrl)
			h := NewEditHandler(uc)
			r := newRouter(&broker)
			r.POST("/v1/edit-requests/:id/approve", h.Approve)
			r.POST("/v1/edit-requests/:id/reject", h.Reject)

			var req *models.EditRequest
			if tc.err == nil {
				req = &models.EditRequest{ID: 5, Status: models.EditRequestApproved}
			}
			uc.EXPECT().ReviewEditRequest(gomock.Any(), int64(5), tc.approve, broker).Return(req, tc.err)

			w := doJSON(r, http.MethodPost, tc.path, "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestEditHandler_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEditUseCase(ctrl)
	h := NewEditHandler(uc)
	r := newRouter(&broker)
	r.GET("/v1/quotes/:id/history", h.ListHistory)
	r.GET("/v1/edit-requests", h.ListRequests)

	uc.EXPECT().ListEditHistory(gomock.Any(), int64(42), broker).Return([]models.EditHistory{{ID: 1}, {ID: 2}}, nil)
	uc.EXPECT().ListEditRequests(gomock.Any(), usecase.EditRequestQuery{QuoteID: 42, Status: models.EditRequestPending}, broker).
		Return([]models.EditRequest{{ID: 5}}, nil)

	w := doJSON(r, http.MethodGet, "/v1/quotes/42/history", "")
	if w.Code != http.StatusOK {
		t.Fatalf("history: expected 200, got %d", w.Code)
	}
	var body struct {
		Items []models.EditHistory `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body.Items) != 2 {
		t.Fatalf("unexpected history body %s", w.Body.String())
	}

	if w := doJSON(r, http.MethodGet, "/v1/edit-requests?quote_id=42&status=pending", ""); w.Code != http.StatusOK {
		t.Fatalf("requests: expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/v1/edit-requests?status=maybe", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("requests: expected 400 for unknown status, got %d", w.Code)
	}
}
