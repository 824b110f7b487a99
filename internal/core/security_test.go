// AngelaMos | 2026
// security_test.go

package core

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("cover-drive-42")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, rehash, err := CheckPassword("cover-drive-42", hash)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, rehash)

	ok, _, err = CheckPassword("square-cut", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckPasswordRehashesOutdatedParams(t *testing.T) {
	old := argonParams{memory: 32 * 1024, time: 1, threads: 2, keyLen: 32}
	salt := []byte("0123456789abcdef")
	encoded := old.encode(salt, old.derive("yorker", salt))

	ok, rehash, err := CheckPassword("yorker", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NotEmpty(t, rehash)

	ok, again, err := CheckPassword("yorker", rehash)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, again)
}

func TestCheckPasswordTimingSafeUnknownUser(t *testing.T) {
	ok, rehash, err := CheckPasswordTimingSafe("anything", "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, rehash)
}

func TestCheckPasswordRejectsMalformedHash(t *testing.T) {
	_, _, err := CheckPassword("x", "$bcrypt$nope")
	require.Error(t, err)
}

func TestGenerateOTP(t *testing.T) {
	for range 200 {
		otp, err := GenerateOTP(6)
		require.NoError(t, err)
		require.Len(t, otp, 6)

		n, err := strconv.Atoi(otp)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}

	_, err := GenerateOTP(0)
	require.Error(t, err)
}

func TestTokenHashing(t *testing.T) {
	token, err := GenerateRefreshToken()
	require.NoError(t, err)

	other, err := GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)

	hash := HashToken(token)
	assert.Len(t, hash, 64)
	assert.True(t, CompareTokenHash(token, hash))
	assert.False(t, CompareTokenHash(other, hash))
}
