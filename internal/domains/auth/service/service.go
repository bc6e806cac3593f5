package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Auth=MockAuthService

import (
	"context"
	"crypto/subtle"
	"fmt"
	"jamat/config"
	"jamat/infras/jwt"
	"jamat/infras/otel"
	"jamat/internal/domains/auth/model/dto"
	"jamat/shared"
	"jamat/shared/cache"
	"jamat/shared/constant"
	"jamat/shared/failure"
	"jamat/shared/password"

	"github.com/rs/zerolog/log"
)

const cacheRevokedToken = "auth:revoked"

type Auth interface {
	// Authenticate reports whether the pair matches the configured administrator.
	Authenticate(username, secret string) bool
	Login(ctx context.Context, req dto.Credentials) (dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshRequest) (dto.TokenResponse, error)
	Logout(ctx context.Context, req dto.RefreshRequest) error
}

type serviceImpl struct {
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(cfg *config.Config, cache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Authenticate(username, secret string) bool {
	configured := s.cfg.App.Auth
	if configured.Username == "" || configured.Password == "" {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(configured.Username)) == 1
	passOK := password.Matches(secret, configured.Password)

	return userOK && passOK
}

func (s *serviceImpl) Login(ctx context.Context, req dto.Credentials) (res dto.TokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.Authenticate(req.Username, req.Password) {
		log.Warn().Str("username", req.Username).Msg("rejected login")

		return res, failure.InvalidCredentials
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(req.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return dto.NewTokenResponse(tokenPair), nil
}

// RefreshToken rotates a refresh token. The presented token is revoked once the new pair is minted.
func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.validRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return res, err
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(claims.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.revoke(ctx, claims.TokenID)

	return dto.NewTokenResponse(tokenPair), nil
}

func (s *serviceImpl) Logout(ctx context.Context, req dto.RefreshRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.validRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return err
	}

	s.revoke(ctx, claims.TokenID)

	return nil
}

func (s *serviceImpl) validRefreshToken(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.jwtService.ValidateToken(token, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("invalid refresh token")

		return nil, failure.Unauthorized("invalid refresh token") //nolint:wrapcheck
	}

	if claims.Username != s.cfg.App.Auth.Username {
		return nil, failure.Unauthorized("invalid refresh token") //nolint:wrapcheck
	}

	// the denylist lives in redis; without it tokens stay valid until they expire
	revoked, err := s.cache.Exists(ctx, shared.BuildCacheKey(cacheRevokedToken, claims.TokenID))
	if err != nil {
		log.Warn().Err(err).Msg("could not check refresh token denylist")

		return claims, nil
	}

	if revoked {
		return nil, failure.Unauthorized("refresh token has been revoked") //nolint:wrapcheck
	}

	return claims, nil
}

func (s *serviceImpl) revoke(ctx context.Context, tokenID string) {
	ttl := s.cfg.JWT.RefreshExpireMin * 60

	if err := s.cache.Save(ctx, shared.BuildCacheKey(cacheRevokedToken, tokenID), "1", ttl); err != nil {
		log.Warn().Err(err).Str("token_id", tokenID).Msg("failed to revoke refresh token")
	}
}
