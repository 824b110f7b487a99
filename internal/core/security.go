// AngelaMos | 2026
// security.go

package core

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/argon2"
)

const saltLength = 16

type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
}

var currentParams = argonParams{
	memory:  64 * 1024,
	time:    1,
	threads: 4,
	keyLen:  32,
}

func (p argonParams) derive(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, p.keyLen)
}

func (p argonParams) encode(salt, hash []byte) string {
	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.memory,
		p.time,
		p.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
}

func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return currentParams.encode(salt, currentParams.derive(password, salt)), nil
}

// CheckPassword reports whether password matches encodedHash. When it
// matches and the stored hash uses outdated parameters, rehash carries a
// fresh encoding the caller should persist.
func CheckPassword(password, encodedHash string) (ok bool, rehash string, err error) {
	params, salt, want, err := decodeHash(encodedHash)
	if err != nil {
		return false, "", err
	}

	got := params.derive(password, salt)
	if subtle.ConstantTimeCompare(want, got) != 1 {
		return false, "", nil
	}

	if *params != currentParams {
		if fresh, hashErr := HashPassword(password); hashErr == nil {
			rehash = fresh
		}
	}

	return true, rehash, nil
}

var dummyHash string

func init() {
	hash, err := HashPassword("academy-timing-equaliser")
	if err != nil {
		panic(fmt.Sprintf("security: failed to generate dummy hash: %v", err))
	}
	dummyHash = hash
}

// CheckPasswordTimingSafe runs a full argon2 derivation even when the
// account does not exist, so unknown emails cost the same as bad passwords.
func CheckPasswordTimingSafe(password, encodedHash string) (bool, string, error) {
	if encodedHash == "" {
		_, _, _ = CheckPassword(password, dummyHash) //nolint:errcheck // timing only
		return false, "", nil
	}
	return CheckPassword(password, encodedHash)
}

func decodeHash(encodedHash string) (*argonParams, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return nil, nil, nil, fmt.Errorf("invalid hash format")
	}

	if parts[1] != "argon2id" {
		return nil, nil, nil, fmt.Errorf("unsupported algorithm: %s", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid version: %w", err)
	}
	if version != argon2.Version {
		return nil, nil, nil, fmt.Errorf("incompatible version: %d", version)
	}

	params := &argonParams{}
	if _, err := fmt.Sscanf(
		parts[3],
		"m=%d,t=%d,p=%d",
		&params.memory,
		&params.time,
		&params.threads,
	); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid params: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("decode salt: %w", err)
	}

	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("decode hash: %w", err)
	}

	//nolint:gosec // G115: argon2id output is 32 bytes
	params.keyLen = uint32(len(hash))

	return params, salt, hash, nil
}

func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func GenerateRefreshToken() (string, error) {
	return GenerateSecureToken(32)
}

// GenerateOTP returns a uniformly random numeric code of exactly digits
// length with no leading zero (for 6 digits: 100000..999999).
func GenerateOTP(digits int) (string, error) {
	if digits < 1 || digits > 18 {
		return "", fmt.Errorf("otp length out of range: %d", digits)
	}

	low := int64(1)
	for range digits - 1 {
		low *= 10
	}
	span := big.NewInt(low*10 - low)

	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+low), nil
}

func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func CompareTokenHash(token, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashToken(token)), []byte(hash)) == 1
}
