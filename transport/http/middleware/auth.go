package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"slices"

	"luxhome/config"
	"luxhome/infras/jwt"
	"luxhome/infras/otel"
	"luxhome/permissions"
	"luxhome/shared/constant"
	"luxhome/shared/failure"
	"luxhome/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// SkipAuthKey marks a request already trusted through the internal API key.
type SkipAuthKey string

const trusted = SkipAuthKey("skip")

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole is the full access chain mounted on the /v1 group: APIKey, Auth, RBAC.
type AuthRole interface {
	Auth
	Role
}

type guard struct {
	tokens      jwt.JWT
	otel        otel.Otel
	permissions *permissions.PermissionData
	apiKey      string
}

func NewAuthRoleMiddleware(tokens jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &guard{
		tokens:      tokens,
		otel:        otel,
		permissions: permissions,
		apiKey:      cfg.App.APIKey,
	}
}

func isTrusted(r *http.Request) bool {
	ok, _ := r.Context().Value(trusted).(bool)

	return ok
}

func (g *guard) rule(r *http.Request) (permissions.Permission, string) {
	path := routeOf(r)
	if g.permissions == nil {
		return permissions.Permission{}, path
	}

	return g.permissions.FindPermissions(path, r.Method), path
}

func reject(w http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(w, err)
}

var tokenMessages = []struct {
	err     error
	message string
}{
	{jwt.ErrExpiredToken, "Token has expired"},
	{jwt.ErrInvalidToken, "Invalid token"},
	{jwt.ErrInvalidClaim, "Invalid token claims"},
}

func tokenFailure(err error) error {
	for _, m := range tokenMessages {
		if errors.Is(err, m.err) {
			return failure.Unauthorized(m.message)
		}
	}

	return failure.Unauthorized("Token validation failed")
}

func withClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	values := map[any]string{
		constant.ContextKeyUserID:    claims.UserID,
		constant.ContextKeyUserEmail: claims.Email,
		constant.ContextKeyUserRole:  claims.Role,
		constant.ContextKeyTokenID:   claims.TokenID,
	}

	for key, value := range values {
		ctx = context.WithValue(ctx, key, value)
	}

	return ctx
}

// Auth resolves the bearer token into the request context. Public routes and
// trusted internal calls pass through untouched.
func (g *guard) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rule, path := g.rule(r)
		if isTrusted(r) || rule.Skip {
			next.ServeHTTP(w, r)

			return
		}

		ctx, scope := g.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     r.Method,
		})

		header := r.Header.Get(constant.RequestHeaderAuthorization)
		if header == "" {
			reject(w, scope, failure.Unauthorized("Missing authorization header"))

			return
		}

		raw, err := jwt.ExtractTokenFromHeader(header)
		if err != nil {
			reject(w, scope, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := g.tokens.ValidateToken(raw, jwt.AccessToken)
		if err != nil {
			reject(w, scope, tokenFailure(err))

			return
		}

		if claims.UserID == "" || claims.Email == "" {
			log.Error().Str("token_id", claims.TokenID).Msg("token carries no user id or email")
			reject(w, scope, failure.Unauthorized("Invalid token claims"))

			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(ctx, claims)))
	})
}

// RBAC enforces the role list of the matched route. It must run after Auth.
func (g *guard) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isTrusted(r) {
			next.ServeHTTP(w, r)

			return
		}

		_, scope := g.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if g.permissions == nil {
			reject(w, scope, failure.ForbiddenError)

			return
		}

		rule, _ := g.rule(r)
		if g.permissions.Skip || rule.Skip {
			next.ServeHTTP(w, r)

			return
		}

		role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)
		allowed := rule.Roles(g.permissions.DefaultRoles)

		if len(allowed) > 0 && !slices.Contains(allowed, role) {
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": allowed,
			})
			reject(w, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// APIKey trusts service-to-service calls carrying the configured key. Requests
// without the header continue as regular clients.
func (g *guard) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(constant.RequestHeaderAPIKey)
		if key == "" {
			next.ServeHTTP(w, r)

			return
		}

		ctx, scope := g.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		if g.apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(g.apiKey)) != 1 {
			reject(w, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, trusted, true)))
	})
}

// routeOf resolves the registered pattern of the request, e.g. /v1/tour-rooms/{id}.
func routeOf(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return r.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), r.Method, r.URL.Path)
}
