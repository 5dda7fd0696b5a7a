package constant

import "time"

type contextKey string

// Values the auth middleware stores on the request context.
const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleUser       = "user"
)

const (
	ServerEnvLocal       = "local"
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

// Audit columns shared by every table.
const (
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const PqErrorCodeUniqueViolation = "23505"

const DateFormat = time.RFC3339

const BytesPerMegabyte = 1 << 20

const CacheTourPrefix = "tour:get"

const (
	Empty   = ""
	Asterix = "*"
)

const (
	OtelHandlerScopeName    = "handler"
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelS3ScopeName         = "s3"
	OtelQueryAttributeKey   = "query"
)
