// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/cricketacademy/academy-api/internal/config"
	"github.com/cricketacademy/academy-api/internal/core"
	"github.com/cricketacademy/academy-api/internal/middleware"
)

const (
	claimRole         = "role"
	claimEmail        = "email"
	claimTokenVersion = "token_version"
	claimType         = "type"
	accessType        = "access"
)

// JWTManager signs ES256 access tokens and publishes the verifying key as
// a JWKS document.
type JWTManager struct {
	signing jwk.Key
	verify  jwk.Key
	jwks    jwk.Set
	kid     string
	cfg     config.JWTConfig
	now     func() time.Time
}

func NewJWTManager(cfg config.JWTConfig) (*JWTManager, error) {
	raw, err := os.ReadFile(cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}

	signing, err := jwk.ParseKey(raw, jwk.WithPEM(true))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	verify, err := signing.PublicKey()
	if err != nil {
		return nil, fmt.Errorf("derive public key: %w", err)
	}

	// The key id follows the key itself, so restarts keep JWKS caches valid.
	kid, err := thumbprintID(verify)
	if err != nil {
		return nil, err
	}

	for _, k := range []jwk.Key{signing, verify} {
		if err := k.Set(jwk.KeyIDKey, kid); err != nil {
			return nil, fmt.Errorf("set key id: %w", err)
		}
		if err := k.Set(jwk.AlgorithmKey, jwa.ES256()); err != nil {
			return nil, fmt.Errorf("set algorithm: %w", err)
		}
	}
	if err := verify.Set(jwk.KeyUsageKey, "sig"); err != nil {
		return nil, fmt.Errorf("set key usage: %w", err)
	}

	set := jwk.NewSet()
	if err := set.AddKey(verify); err != nil {
		return nil, fmt.Errorf("add key to set: %w", err)
	}

	return &JWTManager{
		signing: signing,
		verify:  verify,
		jwks:    set,
		kid:     kid,
		cfg:     cfg,
		now:     time.Now,
	}, nil
}

func thumbprintID(k jwk.Key) (string, error) {
	sum, err := k.Thumbprint(crypto.SHA256)
	if err != nil {
		return "", fmt.Errorf("key thumbprint: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(sum)[:16], nil
}

// GenerateKeyPair writes a new P-256 key pair as PEM files.
func GenerateKeyPair(privateKeyPath, publicKeyPath string) error {
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	private, err := jwk.Import(ecKey)
	if err != nil {
		return fmt.Errorf("import private key: %w", err)
	}
	public, err := private.PublicKey()
	if err != nil {
		return fmt.Errorf("derive public key: %w", err)
	}

	if err := writePEM(private, privateKeyPath, 0o600); err != nil {
		return err
	}
	return writePEM(public, publicKeyPath, 0o644)
}

func writePEM(k jwk.Key, path string, perm os.FileMode) error {
	encoded, err := jwk.Pem(k)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	//nolint:gosec // G306: perm is chosen per key by the caller
	if err := os.WriteFile(path, encoded, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

type AccessTokenClaims struct {
	UserID       string `json:"sub"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	TokenVersion int    `json:"token_version"`
}

func (m *JWTManager) CreateAccessToken(claims AccessTokenClaims) (string, error) {
	now := m.now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.NewString()).
		Issuer(m.cfg.Issuer).
		Audience([]string{m.cfg.Audience}).
		Subject(claims.UserID).
		IssuedAt(now).
		NotBefore(now).
		Expiration(now.Add(m.cfg.AccessTokenExpire)).
		Claim(claimRole, claims.Role).
		Claim(claimEmail, claims.Email).
		Claim(claimTokenVersion, claims.TokenVersion).
		Claim(claimType, accessType).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.ES256(), m.signing))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return string(signed), nil
}

func (m *JWTManager) VerifyAccessToken(
	_ context.Context,
	raw string,
) (*middleware.AccessTokenClaims, error) {
	token, err := jwt.Parse(
		[]byte(raw),
		jwt.WithKey(jwa.ES256(), m.verify),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithAudience(m.cfg.Audience),
	)
	if err != nil {
		if expired(err) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}
	return claimsFrom(token)
}

func claimsFrom(token jwt.Token) (*middleware.AccessTokenClaims, error) {
	invalid := func(what string) error {
		return fmt.Errorf("verify token: %s: %w", what, core.ErrTokenInvalid)
	}

	var typ string
	if err := token.Get(claimType, &typ); err != nil || typ != accessType {
		return nil, invalid("not an access token")
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, invalid("missing subject")
	}

	var role string
	if err := token.Get(claimRole, &role); err != nil {
		return nil, invalid("missing role")
	}

	var version float64
	if err := token.Get(claimTokenVersion, &version); err != nil {
		return nil, invalid("missing token version")
	}

	claims := &middleware.AccessTokenClaims{
		UserID:       subject,
		Role:         role,
		TokenVersion: int(version),
	}
	//nolint:errcheck // informational claims
	_ = token.Get(claimEmail, &claims.Email)
	claims.ID, _ = token.JwtID()
	claims.ExpiresAt, _ = token.Expiration()
	return claims, nil
}

func expired(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "exp") && strings.Contains(msg, "not satisfied")
}

// JWKSHandler serves the public verification key set.
func (m *JWTManager) JWKSHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		if err := json.NewEncoder(w).Encode(m.jwks); err != nil {
			core.InternalServerError(w, err)
		}
	}
}

// AccessTokenTTL is how long an issued access token stays valid.
func (m *JWTManager) AccessTokenTTL() time.Duration {
	return m.cfg.AccessTokenExpire
}

func (m *JWTManager) KeyID() string {
	return m.kid
}

type RefreshTokenData struct {
	Token     string
	Hash      string
	ExpiresAt time.Time
	FamilyID  string
}

// CreateRefreshToken mints an opaque token. An empty familyID starts a
// new rotation family.
func (m *JWTManager) CreateRefreshToken(userID, familyID string) (*RefreshTokenData, error) {
	token, err := core.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token for %s: %w", userID, err)
	}
	if familyID == "" {
		familyID = uuid.NewString()
	}
	return &RefreshTokenData{
		Token:     token,
		Hash:      core.HashToken(token),
		ExpiresAt: m.now().Add(m.cfg.RefreshTokenExpire),
		FamilyID:  familyID,
	}, nil
}
