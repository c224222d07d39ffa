package apperror

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestToHTTPError(t *testing.T) {
	appErr := NewDomainErrorSimple("NO_CHANGES", "No changes detected", http.StatusUnprocessableEntity)

	data, err := json.Marshal(appErr.ToHTTPError())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"error":{"code":"NO_CHANGES","message":"No changes detected"}}` {
		t.Fatalf("unexpected body %s", data)
	}
}

func TestNewDomainErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected cause to be reachable via errors.Is")
	}
	if appErr.Error() != "INTERNAL_ERROR: connection refused" {
		t.Fatalf("unexpected message %q", appErr.Error())
	}
}
