package auth

import (
	"jamat/infras/otel"
	"jamat/internal/domains/auth/model/dto"
	"jamat/internal/domains/auth/service"
	"jamat/shared/constant"
	"jamat/shared/validator"
	"jamat/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/token", handler.Token)
		r.Post("/refresh", handler.RefreshToken)
		r.Post("/logout", handler.Logout)
	})
}

// Token exchanges the administrator credentials for a token pair.
// @Summary Issue tokens
// @Description Exchange the administrator username and password for an access and refresh token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.Credentials true "Credentials"
// @Success 200 {object} response.Data[dto.TokenResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/token [post]
func (handler *Handler) Token(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Token")
	defer scope.End()

	req := dto.Credentials{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to issue tokens")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tokens issued")

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken handles token refresh
// @Summary Refresh tokens
// @Description Rotate a refresh token. The presented token cannot be used again.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[dto.TokenResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/refresh [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh token")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Token refreshed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Logout revokes a refresh token.
// @Summary Logout
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh Token Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/logout [post]
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	req := dto.RefreshRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Logout(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to logout")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Logged out")
}
