package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission marks a route. Skip lets the request through without credentials.
type Permission struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Skip   bool   `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions matches a route pattern exactly. A pattern ending in "/*" matches every path below it.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		if rp.Method != method && rp.Method != "*" {
			return false
		}

		if prefix, ok := strings.CutSuffix(rp.Path, "/*"); ok {
			return path == prefix || strings.HasPrefix(path, prefix+"/")
		}

		return rp.Path == path
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

// Public reports whether the route needs no credentials.
func (r *PermissionData) Public(path, method string) bool {
	if r == nil {
		return false
	}

	return r.Skip || r.FindPermissions(path, method).Skip
}

func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
