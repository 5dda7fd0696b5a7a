package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission is the access rule of one route pattern. Skip marks it public.
type Permission struct {
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Permissions []string `json:"permissions"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Skip         bool         `json:"skip"`
	DefaultRoles []string     `json:"default_roles"`
	Endpoints    []Permission `json:"endpoints"`

	index map[string]int
}

// Roles returns the roles listed on the endpoint, or defaults when it lists none.
func (p Permission) Roles(defaults []string) []string {
	if len(p.Permissions) > 0 {
		return p.Permissions
	}

	return defaults
}

func key(method, path string) string {
	return method + " " + path
}

// FindPermissions looks up the rule for a chi route pattern. Unknown routes get the zero
// Permission, which falls back to the default roles.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if idx, ok := r.index[key(method, path)]; ok {
		return r.Endpoints[idx]
	}

	return Permission{}
}

// Parse decodes a permission document and rejects duplicate routes.
func Parse(data []byte) (*PermissionData, error) {
	permissions := &PermissionData{}

	if err := json.Unmarshal(data, permissions); err != nil {
		return nil, errors.Wrap(err, "failed to decode permissions")
	}

	permissions.index = make(map[string]int, len(permissions.Endpoints))

	for i, endpoint := range permissions.Endpoints {
		k := key(endpoint.Method, endpoint.Path)
		if _, dup := permissions.index[k]; dup {
			return nil, fmt.Errorf("duplicate permission for %s", k)
		}

		if endpoint.Skip && len(endpoint.Permissions) > 0 {
			return nil, fmt.Errorf("public route %s lists roles", k)
		}

		permissions.index[k] = i
	}

	return permissions, nil
}

// Get returns the embedded permission document, or nil when it cannot be parsed. RBAC
// then forbids every protected route.
func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("loaded embedded permissions")

	return permissions
}
