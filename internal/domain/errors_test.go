package domain

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ErrorAndStatus(t *testing.T) {
	e := NewAppError("No quote found with the given id", http.StatusBadRequest, ErrorTypeNotFound)
	if e.Error() != "No quote found with the given id" {
		t.Fatalf("unexpected message: %q", e.Error())
	}
	if e.Status() != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", e.Status())
	}
	if e.Type != ErrorTypeNotFound {
		t.Fatalf("unexpected type: %s", e.Type)
	}
}

func TestAppError_StatusDefaultsTo500(t *testing.T) {
	e := &AppError{Message: "boom", Type: ErrorTypeServer}
	if e.Status() != http.StatusInternalServerError {
		t.Fatalf("expected 500 default, got %d", e.Status())
	}
}

func TestAppError_ErrorsAs(t *testing.T) {
	var err error = NewAppError("x", http.StatusForbidden, ErrorTypeCORS)
	var app *AppError
	if !errors.As(err, &app) {
		t.Fatalf("errors.As failed to unwrap *AppError")
	}
	if app.Code != http.StatusForbidden || app.Type != ErrorTypeCORS {
		t.Fatalf("unexpected fields: %+v", app)
	}
}
