package middleware

import (
	"net/http"

	"itexe-marketplace-api/internal/service"
	"itexe-marketplace-api/pkg/apierror"
)

// RequireSession gates routes that need an authenticated session (selling,
// the account view). Anonymous requests get 401.
func RequireSession(session service.SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session.Current() == nil {
				writeError(w, apierror.Unauthorized("You must be logged in."))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAnonymous gates login and register, which are unreachable while a
// session is active.
func RequireAnonymous(session service.SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session.Current() != nil {
				writeError(w, apierror.Conflict("Already signed in."))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// writeError writes an API error response.
func writeError(w http.ResponseWriter, err *apierror.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	w.Write(err.ToJSON())
}
