package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/binder"
	"github.com/dmitrymomot/authkit/pkg/validator"
)

type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func newRequest(body, contentType string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON()

	t.Run("decodes valid body", func(t *testing.T) {
		t.Parallel()
		var req signupRequest
		err := bind(newRequest(`{"email":"a@b.co","name":"Ann","password":"  Secret1! "}`, "application/json; charset=utf-8"), &req)
		require.NoError(t, err)
		assert.Equal(t, signupRequest{Email: "a@b.co", Name: "Ann", Password: "  Secret1! "}, req)
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		sentinel    error
		field       string
	}{
		{name: "missing content type", body: `{}`, sentinel: binder.ErrMissingContentType, field: "body"},
		{name: "wrong content type", body: `{}`, contentType: "text/plain", sentinel: binder.ErrUnsupportedMediaType, field: "body"},
		{name: "empty body", body: ``, contentType: "application/json", sentinel: binder.ErrFailedToParseJSON, field: "body"},
		{name: "malformed", body: `{"email":`, contentType: "application/json", sentinel: binder.ErrFailedToParseJSON, field: "body"},
		{name: "unknown field", body: `{"email":"a@b.co","role":"admin"}`, contentType: "application/json", sentinel: binder.ErrFailedToParseJSON, field: "role"},
		{name: "wrong type", body: `{"email":42}`, contentType: "application/json", sentinel: binder.ErrFailedToParseJSON, field: "email"},
		{name: "trailing data", body: `{"email":"a@b.co"} {}`, contentType: "application/json", sentinel: binder.ErrFailedToParseJSON, field: "body"},
		{name: "too large", body: `{"name":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`, contentType: "application/json", sentinel: binder.ErrFailedToParseJSON, field: "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var req signupRequest
			err := bind(newRequest(tt.body, tt.contentType), &req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs)
			assert.Contains(t, verrs.Map(), tt.field, verrs.Error())
		})
	}
}
