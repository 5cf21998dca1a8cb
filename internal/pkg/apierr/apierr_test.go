package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidation_CarriesFieldMap(t *testing.T) {
	err := Validation(map[string]string{
		"email": "email is required",
		"phone": "invalid phone number",
	})

	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "email is required", err.Fields["email"])
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "phone")
}

func TestUpstream_NotFoundKind(t *testing.T) {
	assert.Equal(t, KindNotFound, Upstream(http.StatusNotFound, "gone").Kind)
	assert.Equal(t, KindUpstream, Upstream(http.StatusBadGateway, "down").Kind)
}

func TestPartial_NamesFailedSubset(t *testing.T) {
	err := Partial("delete", map[string]string{
		"u2": "conflict",
		"u1": "not found",
	})

	assert.Equal(t, KindPartial, err.Kind)
	assert.Contains(t, err.Message, "u1, u2")
	assert.Equal(t, "conflict", err.Failed["u2"])
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation(map[string]string{"name": "required"}), http.StatusBadRequest},
		{New(KindPrecondition, "id is required"), http.StatusBadRequest},
		{Upstream(http.StatusNotFound, ""), http.StatusNotFound},
		{Partial("delete", map[string]string{"a": "x"}), http.StatusMultiStatus},
		{New(KindNetwork, "dial failed"), http.StatusBadGateway},
		{Upstream(http.StatusServiceUnavailable, ""), http.StatusBadGateway},
		{New(KindConfig, "missing key"), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), "for %v", tt.err)
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	inner := New(KindDecode, "bad json")
	wrapped := fmt.Errorf("listing users: %w", inner)

	assert.Equal(t, KindDecode, KindOf(wrapped))

	e, ok := AsError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "bad json", e.Message)
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindNetwork, "upstream call failed", cause)

	assert.ErrorIs(t, err, cause)
}
