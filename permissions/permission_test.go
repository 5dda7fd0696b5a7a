package permissions_test

import (
	"net/http"
	"testing"

	"luxhome/permissions"
	"luxhome/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedDocument(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	known := []string{constant.RoleSuperAdmin, constant.RoleAdmin, constant.RoleUser}

	for _, endpoint := range data.Endpoints {
		assert.NotEmpty(t, endpoint.Path)
		assert.Contains(t, []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}, endpoint.Method)

		for _, role := range endpoint.Permissions {
			assert.Contains(t, known, role, "%s %s", endpoint.Method, endpoint.Path)
		}
	}
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	t.Run("public tour", func(t *testing.T) {
		assert.True(t, data.FindPermissions("/v1/apartments/{slug}/virtual_tour/", http.MethodGet).Skip)
	})

	t.Run("listed roles", func(t *testing.T) {
		perm := data.FindPermissions("/v1/auth/change-password", http.MethodPost)

		assert.Contains(t, perm.Roles(data.DefaultRoles), constant.RoleUser)
	})

	t.Run("unknown route uses defaults", func(t *testing.T) {
		perm := data.FindPermissions("/v1/unknown", http.MethodGet)

		assert.False(t, perm.Skip)
		assert.Equal(t, data.DefaultRoles, perm.Roles(data.DefaultRoles))
	})
}

func TestParse(t *testing.T) {
	t.Run("duplicate route", func(t *testing.T) {
		_, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/v1/x","method":"GET"},{"path":"/v1/x","method":"GET"}]}`))

		assert.EqualError(t, err, "duplicate permission for GET /v1/x")
	})

	t.Run("public route with roles", func(t *testing.T) {
		_, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/v1/x","method":"GET","skip":true,"permissions":["admin"]}]}`))

		assert.EqualError(t, err, "public route GET /v1/x lists roles")
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := permissions.Parse([]byte(`{`))

		assert.ErrorContains(t, err, "failed to decode permissions")
	})

	t.Run("same path different method", func(t *testing.T) {
		data, err := permissions.Parse([]byte(`{"default_roles":["admin"],"endpoints":[{"path":"/v1/x","method":"GET","skip":true},{"path":"/v1/x","method":"POST"}]}`))

		require.NoError(t, err)
		assert.True(t, data.FindPermissions("/v1/x", http.MethodGet).Skip)
		assert.False(t, data.FindPermissions("/v1/x", http.MethodPost).Skip)
	})
}
