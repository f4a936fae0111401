package handler

import (
	"encoding/json"
	"net/http"
)

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON renders body as JSON with the given status.
func JSON(status int, body any) Response {
	return jsonResponse{status: status, body: body}
}

// OK renders body as JSON with 200 OK.
func OK(body any) Response {
	return JSON(http.StatusOK, body)
}

// Created renders body as JSON with 201 Created.
func Created(body any) Response {
	return JSON(http.StatusCreated, body)
}

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that routes err to the error handler.
func Error(err error) Response {
	return errorResponse{err: err}
}
