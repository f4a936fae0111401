// Package clientip resolves the caller's IP address so authentication logs
// can be attributed to a source.
//
// Forwarding headers are ignored unless the deployment names them as trusted:
//
//	ips := clientip.NewResolver("CF-Connecting-IP", clientip.ForwardedFor)
//	r.Use(ips.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
