package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorClass
	}{
		{name: "nil", err: nil, want: ErrorClassPermanent},
		{name: "serialization", err: &pq.Error{Code: "40001"}, want: ErrorClassSerialization},
		{name: "deadlock", err: &pq.Error{Code: "40P01"}, want: ErrorClassDeadlock},
		{name: "lock not available", err: &pq.Error{Code: "55P03"}, want: ErrorClassTransient},
		{name: "unique violation", err: &pq.Error{Code: "23505"}, want: ErrorClassPermanent},
		{name: "wrapped serialization", err: fmt.Errorf("update quote: %w", &pq.Error{Code: "40001"}), want: ErrorClassSerialization},
		{name: "no rows", err: sql.ErrNoRows, want: ErrorClassPermanent},
		{name: "plain", err: errors.New("boom"), want: ErrorClassPermanent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyError(tc.err); got != tc.want {
				t.Errorf("Expected class %d, got %d", tc.want, got)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(&pq.Error{Code: "40P01"}) {
		t.Error("Deadlock should be retryable")
	}
	if IsRetryable(&pq.Error{Code: "23503"}) {
		t.Error("Foreign key violation should not be retryable")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !IsForeignKeyViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23503"})) {
		t.Error("Expected wrapped 23503 to be a foreign key violation")
	}
	if IsForeignKeyViolation(&pq.Error{Code: "23505"}) {
		t.Error("Unique violation is not a foreign key violation")
	}
}
