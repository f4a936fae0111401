// Package httpserver runs the HTTP listener and serves health probes.
//
// Server.Run blocks until its context is cancelled, then shuts down
// gracefully within Config.ShutdownTimeout. Signal handling belongs to the
// caller:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler return JSON bodies such as
// {"status":"ready","checks":{"postgres":"up"}}. A failing readiness check
// answers 503.
package httpserver
