package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which flows to mount in the account module.
// Each one is optional and is only mounted if provided.
type RouterOptions struct {
	// Email and password sign-up, sign-in, logout and check.
	Credentials Mountable
}

// Router creates the account module router.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/", account.Router(account.RouterOptions{
//	    Credentials: account.NewCredentials(svc, transport, guard.Middleware),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.Credentials != nil {
		r.Mount("/auth", opts.Credentials.Handle())
	}

	return r
}
