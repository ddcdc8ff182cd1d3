package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewDuplicate("taken", map[string]any{"email": "a@example.com"})
	mapped := ToDomainError(fmt.Errorf("wrapped: %w", original))
	if mapped.Code != "DUPLICATE" {
		t.Fatalf("expected DUPLICATE, got %s", mapped.Code)
	}
	if mapped.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("duplicates map to 400, got %d", mapped.HTTPStatus)
	}
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(fmt.Errorf("query: %w", pgx.ErrNoRows))
	if mapped.Code != "NOT_FOUND" || mapped.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected NOT_FOUND/404, got %s/%d", mapped.Code, mapped.HTTPStatus)
	}
}

func TestToDomainErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_employee_day"}
	mapped := ToDomainError(fmt.Errorf("insert: %w", pgErr))
	if mapped.Code != "DUPLICATE" || mapped.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected DUPLICATE/400, got %s/%d", mapped.Code, mapped.HTTPStatus)
	}
	if mapped.Details["constraint"] != "uq_attendance_employee_day" {
		t.Fatalf("expected constraint detail, got %v", mapped.Details)
	}
}

func TestToDomainErrorGeneric(t *testing.T) {
	mapped := ToDomainError(errors.New("connection refused"))
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected INTERNAL_ERROR/500, got %s/%d", mapped.Code, mapped.HTTPStatus)
	}
}

func TestTaxonomyStatuses(t *testing.T) {
	tests := []struct {
		err    error
		code   string
		status int
	}{
		{NewNotFound("employee", nil), "NOT_FOUND", http.StatusNotFound},
		{NewDuplicate("dup", nil), "DUPLICATE", http.StatusBadRequest},
		{NewInvalidState("closed", nil), "INVALID_STATE", http.StatusBadRequest},
		{NewInvalidOrder("backwards", nil), "INVALID_ORDER", http.StatusBadRequest},
		{NewValidationError("bad", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{NewConflict("busy", nil), "CONFLICT", http.StatusConflict},
	}
	for _, tt := range tests {
		var domainErr *DomainError
		if !errors.As(tt.err, &domainErr) {
			t.Fatalf("%v is not a DomainError", tt.err)
		}
		if domainErr.Code != tt.code || domainErr.HTTPStatus != tt.status {
			t.Fatalf("got %s/%d, want %s/%d", domainErr.Code, domainErr.HTTPStatus, tt.code, tt.status)
		}
	}
}
