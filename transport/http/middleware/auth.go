package middleware

import (
	"context"
	"errors"
	"jamat/config"
	"jamat/infras/jwt"
	"jamat/infras/otel"
	authService "jamat/internal/domains/auth/service"
	"jamat/permissions"
	"jamat/shared/constant"
	"jamat/shared/failure"
	"jamat/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	authService authService.Auth
	jwtService  jwt.JWT
	otel        otel.Otel
	permission  *permissions.PermissionData
	cfg         *config.Config
}

func NewAuthMiddleware(
	authService authService.Auth,
	jwtService jwt.JWT,
	otel otel.Otel,
	permissions *permissions.PermissionData,
	cfg *config.Config,
) Auth {
	return &authImpl{
		authService: authService,
		jwtService:  jwtService,
		otel:        otel,
		permission:  permissions,
		cfg:         cfg,
	}
}

// Auth accepts the shared administrator credentials over HTTP Basic or a bearer access token.
// Routes marked skip in permissions.json pass through untouched.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		path := routePattern(request)

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		if m.permission.Public(path, request.Method) || m.permission.Public(request.URL.Path, request.Method) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		if request.Header.Get(constant.RequestHeaderAuthorization) == "" {
			err := failure.Unauthorized("Missing authorization header")
			response.WithUnauthorized(writer, m.cfg.App.Auth.Realm, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		if username, secret, ok := request.BasicAuth(); ok {
			if !m.authService.Authenticate(username, secret) {
				log.Warn().Str("username", username).Msg("rejected basic credentials")

				response.WithUnauthorized(writer, m.cfg.App.Auth.Realm, failure.InvalidCredentials)

				scope.TraceError(failure.InvalidCredentials)
				scope.End()

				return
			}

			ctx = context.WithValue(ctx, constant.ContextKeyUserID, username)
			ctx = context.WithValue(ctx, constant.ContextKeyAuthType, constant.AuthTypeBasic)

			scope.End()
			next.ServeHTTP(writer, request.WithContext(ctx))

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			err := failure.Unauthorized("Invalid authorization header format")
			response.WithUnauthorized(writer, m.cfg.App.Auth.Realm, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Invalid token"
			}

			err := failure.Unauthorized(message)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.Username)
		ctx = context.WithValue(ctx, constant.ContextKeyAuthType, constant.AuthTypeBearer)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != "" {
		return pattern
	}

	return request.URL.Path
}
