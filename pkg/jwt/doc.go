// Package jwt issues and verifies the signed, time-bounded session tokens
// carried in the auth cookie.
//
// Tokens are HS256 JWTs built with github.com/golang-jwt/jwt/v5. The payload
// holds the user id as the subject together with issued-at and expiry times;
// the lifetime is fixed at TokenTTL. Tokens are stateless and never stored
// server side, so a token stays valid until it expires.
//
//	issuer, err := jwt.NewIssuer(cfg.Secret)
//	token, err := issuer.Issue(user.ID)
//	claims, err := issuer.Verify(token)
//	if errors.Is(err, jwt.ErrExpiredToken) {
//		// ...
//	}
package jwt
