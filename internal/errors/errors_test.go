package errors

import (
	"database/sql"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	err := DatabaseError("failed to load catalog", sql.ErrConnDone).WithOperation("ListAll")

	assert.Contains(t, err.Error(), ErrCodeDatabaseError)
	assert.Contains(t, err.Error(), "failed to load catalog")
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Equal(t, "ListAll", err.Operation)
	assert.NotEmpty(t, err.File)
	assert.Positive(t, err.Line)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid input", InvalidInput("missing field", nil), http.StatusBadRequest},
		{"validation", ValidationError("bad value", nil), http.StatusBadRequest},
		{"not found", NotFound("no such university", nil), http.StatusNotFound},
		{"database", DatabaseError("query failed", nil), http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("suggest: %w", InvalidInput("missing", nil)), http.StatusBadRequest},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
