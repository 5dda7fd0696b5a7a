package jwt_test

import (
	"testing"
	"time"

	"luxhome/config"
	"luxhome/infras/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "luxhome"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60 * 24

	return cfg
}

func TestGenerateAndValidate(t *testing.T) {
	service := jwt.New(newConfig())

	pair, err := service.GenerateTokenPair("user-1", "agent@luxhome.example", "admin")
	require.NoError(t, err)

	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := service.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "agent@luxhome.example", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "luxhome", claims.Issuer)
	assert.Equal(t, claims.ID, claims.TokenID)

	t.Run("refresh token is not an access token", func(t *testing.T) {
		_, err := service.ValidateToken(pair.RefreshToken, jwt.AccessToken)

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := service.ValidateToken(pair.AccessToken+"x", jwt.AccessToken)

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestValidateToken_Rejections(t *testing.T) {
	cfg := newConfig()
	service := jwt.New(cfg)

	sign := func(claims gojwt.Claims, method gojwt.SigningMethod, key any) string {
		signed, err := gojwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)

		return signed
	}

	base := func(expiresAt time.Time) jwt.Claims {
		return jwt.Claims{
			UserID:  "user-1",
			Email:   "agent@luxhome.example",
			TokenID: "token-1",
			Type:    jwt.AccessToken,
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "luxhome",
				ExpiresAt: gojwt.NewNumericDate(expiresAt),
			},
		}
	}

	t.Run("expired", func(t *testing.T) {
		token := sign(base(time.Now().Add(-time.Hour)), gojwt.SigningMethodHS256, []byte(cfg.JWT.AccessSecret))

		_, err := service.ValidateToken(token, jwt.AccessToken)

		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("other issuer", func(t *testing.T) {
		claims := base(time.Now().Add(time.Hour))
		claims.Issuer = "someone-else"

		_, err := service.ValidateToken(sign(claims, gojwt.SigningMethodHS256, []byte(cfg.JWT.AccessSecret)), jwt.AccessToken)

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("other algorithm", func(t *testing.T) {
		token := sign(base(time.Now().Add(time.Hour)), gojwt.SigningMethodHS512, []byte(cfg.JWT.AccessSecret))

		_, err := service.ValidateToken(token, jwt.AccessToken)

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong token type claim", func(t *testing.T) {
		claims := base(time.Now().Add(time.Hour))
		claims.Type = jwt.RefreshToken

		_, err := service.ValidateToken(sign(claims, gojwt.SigningMethodHS256, []byte(cfg.JWT.AccessSecret)), jwt.AccessToken)

		assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
	})

	t.Run("secret not configured", func(t *testing.T) {
		empty := newConfig()
		empty.JWT.AccessSecret = ""

		_, err := jwt.New(empty).ValidateToken("anything", jwt.AccessToken)

		assert.ErrorIs(t, err, jwt.ErrMissingSecret)
	})
}

func TestRefreshTokens(t *testing.T) {
	service := jwt.New(newConfig())

	pair, err := service.GenerateTokenPair("user-1", "agent@luxhome.example", "superadmin")
	require.NoError(t, err)

	rotated, err := service.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := service.ValidateToken(rotated.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "superadmin", claims.Role)

	_, err = service.RefreshTokens(pair.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "scheme only", header: "Bearer ", wantErr: true},
		{name: "token only", header: "abc.def.ghi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr {
				assert.ErrorIs(t, err, jwt.ErrMissingBearer)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
