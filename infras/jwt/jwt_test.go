package jwt_test

import (
	"jamat/config"
	"jamat/infras/jwt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "jamat"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 5
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService()

	pair, err := svc.GenerateTokenPair("admin")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.EqualValues(t, 300, pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "jamat", claims.Issuer)
	assert.NotEmpty(t, claims.TokenID)

	refresh, err := svc.ValidateToken(pair.RefreshToken, jwt.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, claims.TokenID, refresh.TokenID)
}

func TestValidateRejectsWrongType(t *testing.T) {
	svc := newService()

	pair, err := svc.GenerateTokenPair("admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("garbage", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestGenerateWithoutSecret(t *testing.T) {
	_, err := jwt.New(&config.Config{}).GenerateTokenPair("admin")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "Basic YWRtaW46YWRtaW4=", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, jwt.ErrMissingToken)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateExpired(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "jamat"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = -1
	cfg.JWT.RefreshExpireMin = 60

	svc := jwt.New(cfg)

	pair, err := svc.GenerateTokenPair("admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateRejectsForeignIssuer(t *testing.T) {
	pair, err := newService().GenerateTokenPair("admin")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Name = "another-app"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"

	_, err = jwt.New(cfg).ValidateToken(pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
