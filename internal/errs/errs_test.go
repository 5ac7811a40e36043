package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-farmpet-api/internal/errs"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		err    *errs.HTTPError
		status int
		code   string
	}{
		{errs.NewBadRequestError("bad", nil), http.StatusBadRequest, "BAD_REQUEST"},
		{errs.NewBadRequestError("short", errs.Code("INSUFFICIENT_STOCK")), http.StatusBadRequest, "INSUFFICIENT_STOCK"},
		{errs.NewNotFoundError("gone", nil), http.StatusNotFound, "NOT_FOUND"},
		{errs.NewConflictError("dup", nil), http.StatusConflict, "CONFLICT"},
		{errs.NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestHTTPError_IsAndWithMessage(t *testing.T) {
	base := errs.NewNotFoundError("client not found", errs.Code("CLIENT_NOT_FOUND"))
	wrapped := fmt.Errorf("handler: %w", base)

	var target *errs.HTTPError
	assert.True(t, errors.As(wrapped, &target))
	assert.True(t, errors.Is(wrapped, &errs.HTTPError{}))

	other := base.WithMessage("pet not found")
	assert.Equal(t, "pet not found", other.Error())
	assert.Equal(t, base.Code, other.Code)
	assert.Equal(t, "client not found", base.Error())
}
