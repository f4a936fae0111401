package httpserver

import "errors"

var (
	ErrStart       = errors.New("failed to start HTTP server")
	ErrShutdown    = errors.New("failed to shutdown HTTP server gracefully")
	ErrRunning     = errors.New("server already running")
	ErrCheckFailed = errors.New("readiness check failed")
)
