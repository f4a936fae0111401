package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/dmitrymomot/authkit/pkg/validator"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// bodyField is the validation field used for problems with the body as a whole.
const bodyField = "body"

// JSON creates a strict JSON binder.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fail(ErrMissingContentType, bodyField, "content type must be application/json")
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fail(ErrUnsupportedMediaType, bodyField, "content type must be application/json")
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fail(ErrFailedToParseJSON, bodyField, "failed to read request body")
		}
		if len(body) > DefaultMaxJSONSize {
			return fail(ErrFailedToParseJSON, bodyField, fmt.Sprintf("request body too large (max %d bytes)", DefaultMaxJSONSize))
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(v); err != nil {
			return decodeError(err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fail(ErrFailedToParseJSON, bodyField, "unexpected data after JSON object")
		}

		return nil
	}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return fail(ErrFailedToParseJSON, bodyField, "request body is empty")
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return fail(ErrFailedToParseJSON, typeErr.Field, "must be a "+typeErr.Type.String())
	}

	// encoding/json has no typed error for unknown fields.
	if name, ok := strings.CutPrefix(err.Error(), `json: unknown field "`); ok {
		name = strings.TrimSuffix(name, `"`)
		return fail(ErrFailedToParseJSON, name, "property "+name+" should not exist")
	}

	return fail(ErrFailedToParseJSON, bodyField, "malformed JSON")
}

func fail(sentinel error, field, message string) error {
	return errors.Join(sentinel, validator.NewError(field, message))
}
