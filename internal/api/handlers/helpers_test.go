package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/safar/freight-quotes/internal/api/middleware"
	"github.com/safar/freight-quotes/internal/models"
)

var (
	shipper = models.Actor{UserID: uuid.MustParse("5b0e1f8e-2f4c-4c55-8d0e-6c8a9a1e7b21"), Role: models.RoleShipper}
	broker  = models.Actor{UserID: uuid.MustParse("0c9b7c1e-6a47-4d7b-9b8e-2f1d3c4b5a69"), Role: models.RoleBroker}
)

// newRouter returns a test engine that authenticates every request as actor.
func newRouter(actor *models.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if actor != nil {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ContextKeyActor, *actor)
			c.Next()
		})
	}
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return body.Error.Code
}
