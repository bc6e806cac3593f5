package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"jamat/config"
	"jamat/shared/timezone"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
	ErrMissingToken = errors.New("authorization header must carry a bearer token")
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

const bearer = "Bearer"

// Claims identifies the administrator a token was minted for. TokenID is what logout revokes.
type Claims struct {
	Username string    `json:"username"`
	TokenID  string    `json:"token_id"`
	Type     TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type JWT interface {
	GenerateTokenPair(username string) (*TokenPair, error)
	ValidateToken(tokenString string, tokenType TokenType) (*Claims, error)
}

// key is the HMAC secret and lifetime for one token type.
type key struct {
	secret []byte
	ttl    time.Duration
}

type signer struct {
	issuer string
	keys   map[TokenType]key
}

func New(cfg *config.Config) JWT {
	return &signer{
		issuer: cfg.App.Name,
		keys: map[TokenType]key{
			AccessToken:  {secret: []byte(cfg.JWT.AccessSecret), ttl: time.Duration(cfg.JWT.AccessExpireMin) * time.Minute},
			RefreshToken: {secret: []byte(cfg.JWT.RefreshSecret), ttl: time.Duration(cfg.JWT.RefreshExpireMin) * time.Minute},
		},
	}
}

func (s *signer) GenerateTokenPair(username string) (*TokenPair, error) {
	now := timezone.Now()

	access, err := s.sign(username, AccessToken, now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := s.sign(username, RefreshToken, now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    bearer,
		ExpiresIn:    int64(s.keys[AccessToken].ttl.Seconds()),
	}, nil
}

func (s *signer) key(tokenType TokenType) (key, error) {
	k, ok := s.keys[tokenType]
	if !ok {
		return key{}, fmt.Errorf("unknown token type: %s", tokenType)
	}

	if len(k.secret) == 0 {
		return key{}, fmt.Errorf("no secret configured for %s tokens", tokenType)
	}

	return k, nil
}

func (s *signer) sign(username string, tokenType TokenType, issuedAt time.Time) (string, error) {
	k, err := s.key(tokenType)
	if err != nil {
		return "", err
	}

	tokenID := uuid.NewString()

	claims := Claims{
		Username: username,
		TokenID:  tokenID,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(k.ttl)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.issuer,
			Subject:   username,
			ID:        tokenID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(k.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken checks the signature, issuer and expiry, then that the token is of the expected type.
func (s *signer) ValidateToken(tokenString string, tokenType TokenType) (*Claims, error) {
	k, err := s.key(tokenType)
	if err != nil {
		return nil, err
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(timezone.Now),
	)

	claims := &Claims{}

	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return k.secret, nil
	})

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil, !token.Valid:
		return nil, ErrInvalidToken
	case claims.Type != tokenType:
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader returns the token of a "Bearer <token>" header. The scheme is case-insensitive.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, bearer) {
		return "", ErrMissingToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}

	return token, nil
}
