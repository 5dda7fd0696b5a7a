package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"luxhome/config"
	"luxhome/infras/jwt"
	jwtMocks "luxhome/infras/jwt/mocks"
	otelMocks "luxhome/infras/otel/mocks"
	"luxhome/permissions"
	"luxhome/shared/constant"
	"luxhome/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*jwtMocks.MockJWT, http.Handler) {
	ctrl := gomock.NewController(t)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	authRole := middleware.NewAuthRoleMiddleware(mockJWT, otelMocks.NewOtel(), permissions.Get(), cfg)

	ok := func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)
		w.Header().Set("X-Role", role)
		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Group(func(group chi.Router) {
		group.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)
		group.Route("/v1", func(v1 chi.Router) {
			v1.Route("/apartments", func(r chi.Router) {
				r.Get("/", ok)
				r.Post("/", ok)
				r.Get("/{slug}/virtual_tour/", ok)
			})
			v1.Post("/tour-rooms/", ok)
			v1.Get("/users/", ok)
			v1.Post("/auth/change-password", ok)
		})
	})

	return mockJWT, router
}

func request(router http.Handler, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func claims(role string) *jwt.Claims {
	return &jwt.Claims{UserID: "user-1", Email: role + "@luxhome.example", Role: role, TokenID: "token-1"}
}

func TestAuth_PublicRoutes(t *testing.T) {
	_, router := newRouter(t)

	assert.Equal(t, http.StatusOK, request(router, http.MethodGet, "/v1/apartments/", "").Code)
	assert.Equal(t, http.StatusOK, request(router, http.MethodGet, "/v1/apartments/sea-view-loft/virtual_tour/", "").Code)
}

func TestAuth_MissingToken(t *testing.T) {
	_, router := newRouter(t)

	rec := request(router, http.MethodPost, "/v1/tour-rooms/", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing authorization header")
}

func TestAuth_ExpiredToken(t *testing.T) {
	mockJWT, router := newRouter(t)

	mockJWT.EXPECT().ValidateToken("stale", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)

	rec := request(router, http.MethodPost, "/v1/tour-rooms/", "stale")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token has expired")
}

func TestRBAC(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		role     string
		wantCode int
	}{
		{name: "admin manages rooms", method: http.MethodPost, target: "/v1/tour-rooms/", role: constant.RoleAdmin, wantCode: http.StatusOK},
		{name: "admin creates apartments", method: http.MethodPost, target: "/v1/apartments/", role: constant.RoleAdmin, wantCode: http.StatusOK},
		{name: "regular user cannot manage rooms", method: http.MethodPost, target: "/v1/tour-rooms/", role: constant.RoleUser, wantCode: http.StatusForbidden},
		{name: "admin cannot list users", method: http.MethodGet, target: "/v1/users/", role: constant.RoleAdmin, wantCode: http.StatusForbidden},
		{name: "superadmin lists users", method: http.MethodGet, target: "/v1/users/", role: constant.RoleSuperAdmin, wantCode: http.StatusOK},
		{name: "regular user changes own password", method: http.MethodPost, target: "/v1/auth/change-password", role: constant.RoleUser, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockJWT, router := newRouter(t)

			mockJWT.EXPECT().ValidateToken("token", jwt.AccessToken).Return(claims(tt.role), nil)

			rec := request(router, tt.method, tt.target, "token")

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.role, rec.Header().Get("X-Role"))
			}
		})
	}
}

func TestAPIKey(t *testing.T) {
	t.Run("valid key bypasses auth", func(t *testing.T) {
		_, router := newRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/users/", nil)
		req.Header.Set(constant.RequestHeaderAPIKey, "internal-key")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong key is forbidden", func(t *testing.T) {
		_, router := newRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/users/", nil)
		req.Header.Set(constant.RequestHeaderAPIKey, "guess")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
