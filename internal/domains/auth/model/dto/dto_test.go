package dto_test

import (
	"testing"

	"luxhome/infras/jwt"
	"luxhome/internal/domains/auth/model/dto"
	"luxhome/shared"

	"github.com/stretchr/testify/assert"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestUpdatePasswordRequest_TransformFields(t *testing.T) {
	fields := shared.TransformFields(dto.UpdatePasswordRequest{Password: "hashed"}, "user-1")

	assert.Equal(t, "hashed", fields["password"])
	assert.Equal(t, "user-1", fields["modified_by"])
	assert.Contains(t, fields, "modified_at")
}
