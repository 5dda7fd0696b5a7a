package password_test

import (
	"strings"
	"testing"

	"luxhome/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	password.Cost = bcrypt.MinCost

	m.Run()
}

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		plain   string
		wantErr error
	}{
		{name: "agent password", plain: "s3cret-pass"},
		{name: "unicode", plain: "apartamento-à-beira-mar"},
		{name: "empty", plain: "", wantErr: password.ErrEmptyPassword},
		{name: "over 72 bytes", plain: strings.Repeat("x", 73), wantErr: password.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := password.Hash(tt.plain)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hashed)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.plain, hashed)

			cost, err := bcrypt.Cost([]byte(hashed))
			require.NoError(t, err)
			assert.Equal(t, bcrypt.MinCost, cost)
		})
	}
}

func TestVerify(t *testing.T) {
	hashed, err := password.Hash("s3cret-pass")
	require.NoError(t, err)

	tests := []struct {
		name    string
		plain   string
		hash    string
		wantErr error
	}{
		{name: "match", plain: "s3cret-pass", hash: hashed},
		{name: "wrong password", plain: "guess", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty password", plain: "", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "no stored hash", plain: "s3cret-pass", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "truncated hash", plain: "s3cret-pass", hash: hashed[:20], wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.plain, tt.hash)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}
