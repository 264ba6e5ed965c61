package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"northlinktelecom.com/cmd/server/auth"
)

type contextKey int

const identityKey contextKey = 0

// Authenticator resolves an access token into an identity.
// Satisfied by auth.Guard.
type Authenticator interface {
	Authenticate(token string) (*auth.Identity, error)
}

// RequireRole returns middleware that authenticates the request and checks
// the caller's role against the given set before the handler runs.
// Unauthenticated requests get 401, authenticated ones with a role outside
// the set get 403; in both cases the handler (and therefore the gateway)
// is never reached. The verified identity is stored on the request context
// for handlers to pass down to the repositories.
func RequireRole(authenticator Authenticator, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := authenticator.Authenticate(auth.TokenFromRequest(r))
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "unauthorized", "A valid session is required")
				return
			}

			if !identity.Allowed(roles...) {
				writeAuthError(w, http.StatusForbidden, "forbidden", "Your role does not permit this action")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom returns the verified identity stored by RequireRole, or nil
// when the request never passed through it
func IdentityFrom(ctx context.Context) *auth.Identity {
	identity, _ := ctx.Value(identityKey).(*auth.Identity)
	return identity
}

func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   code,
		"message": message,
	})
}
