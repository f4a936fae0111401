// Package session moves session tokens between the client and the server.
//
// CookieTransport stores the token in a single HttpOnly cookie whose
// security attributes follow the deployment environment: in production the
// cookie is Secure and SameSite=Strict, elsewhere it is SameSite=Lax so the
// frontend dev server works over plain HTTP. The cookie lives for the same
// 24 hours as the token it carries.
package session
