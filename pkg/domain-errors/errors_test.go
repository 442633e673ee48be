package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCodeWalksTheChain(t *testing.T) {
	cause := errors.New("connection refused")
	inner := Wrap(cause, CodeUnavailable, "could not verify token")
	outer := Wrap(fmt.Errorf("authenticate: %w", inner), CodeUnauthorized, "login failed")

	assert.True(t, HasCode(outer, CodeUnauthorized))
	assert.True(t, HasCode(outer, CodeUnavailable))
	assert.False(t, HasCode(outer, CodeNotFound))
	assert.ErrorIs(t, outer, cause)
	assert.Equal(t, CodeUnauthorized, CodeOf(outer))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, CodeInternal, "ignored"))
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
}

func TestToHTTPStatus(t *testing.T) {
	tests := map[Code]int{
		CodeValidation:   http.StatusBadRequest,
		CodeUnauthorized: http.StatusUnauthorized,
		CodeNotFound:     http.StatusNotFound,
		CodeConflict:     http.StatusConflict,
		CodeRateLimited:  http.StatusTooManyRequests,
		CodeTimeout:      http.StatusGatewayTimeout,
		CodeUnavailable:  http.StatusBadGateway,
		CodeInternal:     http.StatusInternalServerError,
	}
	for code, want := range tests {
		assert.Equal(t, want, ToHTTPStatus(code), string(code))
	}
}
