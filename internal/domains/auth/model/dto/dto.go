package dto

import (
	"jamat/infras/jwt"
)

// Credentials are the shared administrator username and password from configuration.
type Credentials struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=255"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func NewTokenResponse(pair *jwt.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    pair.ExpiresIn,
	}
}
