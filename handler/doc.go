// Package handler turns typed request handlers into net/http handlers.
//
// A HandlerFunc receives a Context and a request value already decoded by
// the configured binders, and returns a Response. Wrap adapts it to
// http.HandlerFunc; binding, rendering and returned errors all flow into a
// single ErrorHandler so every failure reaches the client in the same JSON
// shape:
//
//	{"statusCode": 409, "message": "User with this email already exists", "error": "Conflict"}
//
// Validation failures additionally carry a "details" object keyed by field.
//
// Cross-cutting behaviour such as authentication is expressed as ordinary
// net/http middleware on the router, not inside this package.
package handler
