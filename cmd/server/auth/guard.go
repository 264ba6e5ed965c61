// Package auth implements the session and role checks guarding every
// mutating endpoint. Sessions are verified against the hosted auth
// provider; roles come from the user_roles table, keyed by user id. A user
// without a role row is authenticated but authorized for nothing.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/supabase-go"
	"northlinktelecom.com/cmd/server/models"
)

// ErrNoSession is returned by Authenticate when no valid session exists
var ErrNoSession = errors.New("no valid session")

// Identity is a verified session: who the caller is and what role they hold.
// Role is empty when the user has no user_roles row.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// Allowed reports whether the identity's role belongs to the given set
func (i *Identity) Allowed(roles ...string) bool {
	if i == nil || i.Role == "" {
		return false
	}
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

// RoleSource looks up the role for a user id. The second return value is
// false when the user has no role record.
type RoleSource interface {
	RoleFor(userID string) (string, bool, error)
}

// Guard verifies sessions and resolves roles
type Guard struct {
	auth  gotrue.Client
	roles RoleSource
}

// NewGuard builds a Guard over the Supabase clients: sessions are checked
// with the anon client's auth API, roles are read with the service client
// (the user_roles table is not publicly readable).
func NewGuard(anon, service *supabase.Client) *Guard {
	return &Guard{
		auth:  anon.Auth,
		roles: &tableRoles{db: service},
	}
}

// NewGuardWith builds a Guard from explicit collaborators, used in tests
func NewGuardWith(authClient gotrue.Client, roles RoleSource) *Guard {
	return &Guard{auth: authClient, roles: roles}
}

// Authenticate resolves an access token into a verified Identity.
// Returns ErrNoSession when the token is missing, expired, or rejected by
// the auth provider. A valid session with no role record yields an
// Identity whose Role is empty.
func (g *Guard) Authenticate(token string) (*Identity, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	user, err := g.auth.WithToken(token).GetUser()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSession, err)
	}

	identity := &Identity{
		UserID: user.ID.String(),
		Email:  user.Email,
	}

	role, ok, err := g.roles.RoleFor(identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up role: %w", err)
	}
	if ok {
		identity.Role = role
	}

	return identity, nil
}

// TokenFromRequest extracts the access token from the Authorization header
// (Bearer scheme) or, failing that, the sb-access-token cookie set by the
// auth provider's browser SDK. Returns "" when neither is present.
func TokenFromRequest(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if token := strings.TrimSpace(parts[1]); token != "" {
				return token
			}
		}
	}

	if cookie, err := r.Cookie("sb-access-token"); err == nil {
		return cookie.Value
	}

	return ""
}

// tableRoles reads roles from the user_roles table
type tableRoles struct {
	db *supabase.Client
}

func (t *tableRoles) RoleFor(userID string) (string, bool, error) {
	var rows []models.UserRole

	_, err := t.db.
		From("user_roles").
		Select("*", "", false).
		Eq("user_id", userID).
		Limit(1, "").
		ExecuteTo(&rows)

	if err != nil {
		return "", false, fmt.Errorf("failed to query user_roles: %w", err)
	}

	if len(rows) == 0 {
		return "", false, nil
	}

	return rows[0].Role, true, nil
}
