package service_test

import (
	"context"
	"errors"
	"jamat/config"
	"jamat/infras/jwt"
	jwtMocks "jamat/infras/jwt/mocks"
	"jamat/infras/otel/mocks"
	"jamat/internal/domains/auth/model/dto"
	"jamat/internal/domains/auth/service"
	cacheMocks "jamat/shared/cache/mocks"
	"jamat/shared/failure"
	"jamat/shared/password"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConfig(t *testing.T, secret string) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Auth.Username = "admin"
	cfg.App.Auth.Password = secret
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func TestAuthService_Authenticate(t *testing.T) {
	hash, err := password.Hash("s3cret-pass")
	require.NoError(t, err)

	tests := []struct {
		name       string
		configured string
		username   string
		secret     string
		want       bool
	}{
		{name: "plain text match", configured: "s3cret-pass", username: "admin", secret: "s3cret-pass", want: true},
		{name: "bcrypt hash match", configured: hash, username: "admin", secret: "s3cret-pass", want: true},
		{name: "wrong password", configured: "s3cret-pass", username: "admin", secret: "nope", want: false},
		{name: "wrong username", configured: "s3cret-pass", username: "root", secret: "s3cret-pass", want: false},
		{name: "no credentials configured", configured: "", username: "admin", secret: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.New(newConfig(t, tt.configured), nil, mocks.NewOtel(), nil)

			assert.Equal(t, tt.want, svc.Authenticate(tt.username, tt.secret))
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	svc := service.New(newConfig(t, "s3cret-pass"), cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel(), mockJWT)

	pair := &jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 3600}

	tests := []struct {
		name      string
		req       dto.Credentials
		setupMock func()
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.Credentials{Username: "admin", Password: "s3cret-pass"},
			setupMock: func() {
				mockJWT.EXPECT().GenerateTokenPair("admin").Return(pair, nil)
			},
		},
		{
			name:      "invalid credentials",
			req:       dto.Credentials{Username: "admin", Password: "wrong"},
			setupMock: func() {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name: "token generation fails",
			req:  dto.Credentials{Username: "admin", Password: "s3cret-pass"},
			setupMock: func() {
				mockJWT.EXPECT().GenerateTokenPair("admin").Return(nil, errors.New("no secret"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access", res.AccessToken)
			assert.Equal(t, "refresh", res.RefreshToken)
			assert.Equal(t, "Bearer", res.TokenType)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(newConfig(t, "s3cret-pass"), mockCache, mocks.NewOtel(), mockJWT)

	claims := &jwt.Claims{Username: "admin", TokenID: "tid-1", Type: jwt.RefreshToken}
	pair := &jwt.TokenPair{AccessToken: "access-2", RefreshToken: "refresh-2"}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "rotates and revokes the old token",
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken("refresh-1", jwt.RefreshToken).Return(claims, nil)
				mockCache.EXPECT().Exists(gomock.Any(), "auth:revoked:tid-1").Return(false, nil)
				mockJWT.EXPECT().GenerateTokenPair("admin").Return(pair, nil)
				mockCache.EXPECT().Save(gomock.Any(), "auth:revoked:tid-1", "1", 3600).Return(nil)
			},
		},
		{
			name: "revoked token",
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken("refresh-1", jwt.RefreshToken).Return(claims, nil)
				mockCache.EXPECT().Exists(gomock.Any(), "auth:revoked:tid-1").Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "cache outage does not block refresh",
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken("refresh-1", jwt.RefreshToken).Return(claims, nil)
				mockCache.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))
				mockJWT.EXPECT().GenerateTokenPair("admin").Return(pair, nil)
				mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
		},
		{
			name: "invalid token",
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken("refresh-1", jwt.RefreshToken).Return(nil, jwt.ErrInvalidToken)
			},
			wantErr: true,
		},
		{
			name: "token minted for another user",
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken("refresh-1", jwt.RefreshToken).Return(&jwt.Claims{Username: "old-admin", TokenID: "tid-9"}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.RefreshToken(context.Background(), dto.RefreshRequest{RefreshToken: "refresh-1"})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-2", res.AccessToken)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(newConfig(t, "s3cret-pass"), mockCache, mocks.NewOtel(), mockJWT)

	mockJWT.EXPECT().ValidateToken("refresh-1", jwt.RefreshToken).Return(&jwt.Claims{Username: "admin", TokenID: "tid-1"}, nil)
	mockCache.EXPECT().Exists(gomock.Any(), "auth:revoked:tid-1").Return(false, nil)
	mockCache.EXPECT().Save(gomock.Any(), "auth:revoked:tid-1", "1", 3600).Return(nil)

	require.NoError(t, svc.Logout(context.Background(), dto.RefreshRequest{RefreshToken: "refresh-1"}))
}
