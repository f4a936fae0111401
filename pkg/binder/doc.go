// Package binder decodes HTTP request bodies into typed request structs.
//
// JSON is strict: it requires an application/json content type, caps the
// body at DefaultMaxJSONSize, rejects unknown fields and trailing data.
// Every failure carries a validator.ValidationErrors describing the problem,
// so callers can report it to the client the same way as failed rules.
package binder
