package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityAllowed(t *testing.T) {
	testCases := []struct {
		name     string
		identity *Identity
		roles    []string
		expected bool
	}{
		{name: "admin in admin set", identity: &Identity{Role: "admin"}, roles: []string{"admin"}, expected: true},
		{name: "editor in admin+editor set", identity: &Identity{Role: "editor"}, roles: []string{"admin", "editor"}, expected: true},
		{name: "editor not in admin-only set", identity: &Identity{Role: "editor"}, roles: []string{"admin"}, expected: false},
		{name: "no role record", identity: &Identity{Role: ""}, roles: []string{"admin", "editor"}, expected: false},
		{name: "nil identity", identity: nil, roles: []string{"admin"}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.identity.Allowed(tc.roles...))
		})
	}
}

func TestTokenFromRequest(t *testing.T) {
	t.Run("bearer header", func(t *testing.T) {
		r, _ := http.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer abc123")
		assert.Equal(t, "abc123", TokenFromRequest(r))
	})

	t.Run("lowercase scheme", func(t *testing.T) {
		r, _ := http.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "bearer abc123")
		assert.Equal(t, "abc123", TokenFromRequest(r))
	})

	t.Run("cookie fallback", func(t *testing.T) {
		r, _ := http.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "sb-access-token", Value: "cookie-token"})
		assert.Equal(t, "cookie-token", TokenFromRequest(r))
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		r, _ := http.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer header-token")
		r.AddCookie(&http.Cookie{Name: "sb-access-token", Value: "cookie-token"})
		assert.Equal(t, "header-token", TokenFromRequest(r))
	})

	t.Run("malformed header ignored", func(t *testing.T) {
		r, _ := http.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Basic abc123")
		assert.Equal(t, "", TokenFromRequest(r))
	})

	t.Run("nothing present", func(t *testing.T) {
		r, _ := http.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, "", TokenFromRequest(r))
	})
}
