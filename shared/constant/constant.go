package constant

import "time"

const (
	ContextGuest  = "guest"
	ContextSystem = "system"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyAuthType  contextKey = "auth_type"
	ContextKeyTokenID   contextKey = "token_id"
	ContextKeyRequestID contextKey = "request_id"
)

const (
	AuthTypeBasic  = "basic"
	AuthTypeBearer = "bearer"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID             = "id"
	RequestParamStartDate      = "start_date"
	RequestParamEndDate        = "end_date"
	RequestParamHostFilter     = "host_filter"
	RequestParamVisitingFilter = "visiting_filter"
)

const (
	DefaultValueLimit = 10
	MaxValueLimit     = 500
)

const (
	// FilterAll disables a host or visiting filter.
	FilterAll = "all"
	// UnknownName buckets visits whose mosque or group no longer resolves.
	UnknownName = "Unknown"
)

// SQLSTATE codes raised by postgres.
const (
	PqErrorCodeFkViolation    = "23503"
	PqErrorCodeCheckViolation = "23514"
)

const DateFormat = time.RFC3339

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderWWWAuthenticate    = "WWW-Authenticate"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorInternal             = "INTERNAL SERVER ERROR"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const Empty = ""
