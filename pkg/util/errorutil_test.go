package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewValidationError("bad input", nil)
	mapped := ToDomainError(original)
	if mapped.Code != "VALIDATION_FAILED" || mapped.HTTPStatus != http.StatusBadRequest {
		t.Errorf("mapped = %+v", mapped)
	}
}

func TestToDomainErrorUnwrapsWrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewUnauthorized("nope"))
	mapped := ToDomainError(wrapped)
	if mapped.Code != "UNAUTHORIZED" {
		t.Errorf("code = %q, want UNAUTHORIZED", mapped.Code)
	}
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	if mapped.Code != "NOT_FOUND" || mapped.HTTPStatus != http.StatusNotFound {
		t.Errorf("mapped = %+v, want NOT_FOUND/404", mapped)
	}
}

func TestToDomainErrorDefaultsToInternal(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("mapped = %+v, want INTERNAL_ERROR/500", mapped)
	}
}

func TestStoreErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreError(cause)
	if !errors.Is(err, cause) {
		t.Error("store error must wrap its cause")
	}
	mapped := ToDomainError(err)
	if mapped.Code != "STORE_FAILURE" {
		t.Errorf("code = %q, want STORE_FAILURE", mapped.Code)
	}
}
