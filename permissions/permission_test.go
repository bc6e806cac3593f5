package permissions_test

import (
	"jamat/permissions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		path   string
		method string
		public bool
	}{
		{path: "/health", method: http.MethodGet, public: true},
		{path: "/swagger/index.html", method: http.MethodGet, public: true},
		{path: "/v1/auth/token", method: http.MethodPost, public: true},
		{path: "/v1/contact", method: http.MethodPost, public: true},
		{path: "/v1/visits", method: http.MethodPost, public: false},
		{path: "/v1/visits/{id}", method: http.MethodGet, public: false},
		{path: "/v1/dashboard", method: http.MethodGet, public: false},
		{path: "/v1/unlisted", method: http.MethodGet, public: false},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.public, data.Public(tt.path, tt.method))
		})
	}
}

func TestFindPermissions(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[
		{"path":"/files/*","method":"*","skip":true},
		{"path":"/files","method":"DELETE","skip":false}
	]}`))
	require.NoError(t, err)

	assert.True(t, data.FindPermissions("/files", http.MethodDelete).Skip)
	assert.True(t, data.FindPermissions("/files/a/b", http.MethodPut).Skip)
	assert.False(t, data.FindPermissions("/filesystem", http.MethodGet).Skip)
	assert.Equal(t, permissions.Permission{}, data.FindPermissions("/other", http.MethodGet))
}

func TestPublic_NilAndGlobalSkip(t *testing.T) {
	var data *permissions.PermissionData
	assert.False(t, data.Public("/health", http.MethodGet))

	open, err := permissions.Parse([]byte(`{"skip":true}`))
	require.NoError(t, err)
	assert.True(t, open.Public("/v1/visits", http.MethodPost))
}

func TestParse_Malformed(t *testing.T) {
	_, err := permissions.Parse([]byte(`{"endpoints":`))
	assert.Error(t, err)
}
