// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cricketacademy/academy-api/internal/config"
	"github.com/cricketacademy/academy-api/internal/core"
	"github.com/cricketacademy/academy-api/internal/middleware"
)

var (
	ErrInvalidCredentials = core.NewAppError(
		core.ErrUnauthorized, "invalid email or password", http.StatusUnauthorized, "INVALID_CREDENTIALS")
	ErrUserInactive = core.NewAppError(
		core.ErrUnauthorized, "user is inactive please contact academy", http.StatusUnauthorized, "USER_INACTIVE")
	ErrTokenReuse = core.NewAppError(
		core.ErrTokenRevoked,
		"security alert: token reuse detected, all sessions revoked",
		http.StatusUnauthorized,
		"TOKEN_REUSE_DETECTED",
	)
)

type UserInfo struct {
	ID            string
	Email         string
	Name          string
	Phone         string
	PasswordHash  string
	Role          string
	Status        string
	EmailVerified bool
	TokenVersion  int
	CreatedAt     time.Time
}

func (u *UserInfo) IsInactive() bool {
	return u.Status == "INACTIVE"
}

type NewUser struct {
	Name            string
	Email           string
	Phone           string
	Age             int
	ExperienceLevel string
	PasswordHash    string
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	Create(ctx context.Context, nu NewUser) (*UserInfo, error)
	IncrementTokenVersion(ctx context.Context, userID string) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	Activate(ctx context.Context, userID string) error
	EmailExists(ctx context.Context, email string) (bool, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
}

// Mailer delivers the auth emails. Implementations live in internal/mail.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, name, link string) error
	SendVerificationOTP(ctx context.Context, to, name, otp string, expires time.Duration) error
}

// KeyStore is the slice of redis the auth flows need.
type KeyStore interface {
	Set(ctx context.Context, key string, ttl time.Duration) error
	SetNX(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
}

type redisStore struct {
	c redis.Cmdable
}

func NewRedisStore(c redis.Cmdable) KeyStore {
	return &redisStore{c: c}
}

func (s *redisStore) Set(ctx context.Context, key string, ttl time.Duration) error {
	return s.c.Set(ctx, key, "1", ttl).Err()
}

func (s *redisStore) SetNX(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.c.SetNX(ctx, key, "1", ttl).Result()
}

func (s *redisStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.c.Exists(ctx, key).Result()
	return n > 0, err
}

type Deps struct {
	Tokens        Repository
	Activity      ActivityRepository
	Resets        ResetTokenRepository
	Verifications VerificationRepository
	JWT           *JWTManager
	Users         UserProvider
	Store         KeyStore
	Mailer        Mailer
	Config        config.AuthConfig
	Logger        *slog.Logger
}

type Service struct {
	repo          Repository
	activity      ActivityRepository
	resets        ResetTokenRepository
	verifications VerificationRepository
	jwt           *JWTManager
	userProvider  UserProvider
	store         KeyStore
	mailer        Mailer
	cfg           config.AuthConfig
	logger        *slog.Logger
	now           func() time.Time
}

func NewService(d Deps) *Service {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:          d.Tokens,
		activity:      d.Activity,
		resets:        d.Resets,
		verifications: d.Verifications,
		jwt:           d.JWT,
		userProvider:  d.Users,
		store:         d.Store,
		mailer:        d.Mailer,
		cfg:           d.Config,
		logger:        logger.With("component", "auth"),
		now:           time.Now,
	}
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
	userAgent, ipAddress string,
) (*AuthResponse, error) {
	user, err := s.userProvider.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // burn the same time as a real check
			_, _, _ = core.CheckPasswordTimingSafe(req.Password, "")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.CheckPasswordTimingSafe(req.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !valid {
		return nil, ErrInvalidCredentials
	}

	if user.IsInactive() {
		return nil, ErrUserInactive
	}

	if newHash != "" {
		if err := s.userProvider.UpdatePassword(ctx, user.ID, newHash); err != nil {
			s.logger.WarnContext(ctx, "password rehash failed", "user_id", user.ID, "error", err)
		}
	}

	if err := s.startActivity(ctx, user.ID, userAgent, ipAddress); err != nil {
		return nil, err
	}

	return s.createAuthResponse(ctx, user, userAgent, ipAddress, "", nil)
}

func (s *Service) startActivity(ctx context.Context, userID, userAgent, ipAddress string) error {
	if err := s.activity.CloseActive(ctx, userID); err != nil {
		return err
	}
	return s.activity.Open(ctx, &UserActivity{
		ID:        uuid.New().String(),
		UserID:    userID,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	})
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
	userAgent, ipAddress string,
) (*AuthResponse, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userProvider.Create(ctx, NewUser{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Age:             req.Age,
		ExperienceLevel: req.ExperienceLevel,
		PasswordHash:    passwordHash,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.startActivity(ctx, user.ID, userAgent, ipAddress); err != nil {
		return nil, err
	}

	return s.createAuthResponse(ctx, user, userAgent, ipAddress, "", nil)
}

func (s *Service) Refresh(
	ctx context.Context,
	refreshToken, userAgent, ipAddress string,
) (*AuthResponse, error) {
	storedToken, err := s.repo.FindByHash(ctx, core.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("refresh: %w", core.ErrTokenInvalid)
		}
		return nil, fmt.Errorf("find token: %w", err)
	}

	if storedToken.IsUsed {
		if err := s.repo.RevokeByFamilyID(ctx, storedToken.FamilyID); err != nil {
			s.logger.ErrorContext(ctx, "revoke reused token family", "family_id", storedToken.FamilyID, "error", err)
		}
		s.logger.WarnContext(ctx, "refresh token reuse detected",
			"user_id", storedToken.UserID,
			"ip", ipAddress,
		)
		return nil, ErrTokenReuse
	}

	if !storedToken.IsValid() {
		if storedToken.IsRevoked() {
			return nil, fmt.Errorf("refresh: %w", core.ErrTokenRevoked)
		}
		return nil, fmt.Errorf("refresh: %w", core.ErrTokenExpired)
	}

	user, err := s.userProvider.GetByID(ctx, storedToken.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user.IsInactive() {
		return nil, ErrUserInactive
	}

	return s.createAuthResponse(
		ctx,
		user,
		userAgent,
		ipAddress,
		storedToken.FamilyID,
		&storedToken.ID,
	)
}

// Logout revokes the refresh token, blacklists the presented access
// token and closes the session activity row.
func (s *Service) Logout(
	ctx context.Context,
	refreshToken string,
	claims *middleware.AccessTokenClaims,
) error {
	if claims == nil {
		return fmt.Errorf("logout: %w", core.ErrUnauthorized)
	}

	if refreshToken != "" {
		storedToken, err := s.repo.FindByHash(ctx, core.HashToken(refreshToken))
		switch {
		case errors.Is(err, core.ErrNotFound):
		case err != nil:
			return fmt.Errorf("find token: %w", err)
		case storedToken.UserID != claims.UserID:
			return fmt.Errorf("logout: %w", core.ErrForbidden)
		default:
			if err := s.repo.RevokeByID(ctx, storedToken.ID); err != nil &&
				!errors.Is(err, core.ErrNotFound) {
				return fmt.Errorf("revoke token: %w", err)
			}
		}
	}

	if err := s.RevokeAccessToken(ctx, claims.ID, claims.ExpiresAt); err != nil {
		return err
	}

	return s.activity.CloseActive(ctx, claims.UserID)
}

func (s *Service) LogoutAll(ctx context.Context, userID string) error {
	if err := s.repo.RevokeAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("revoke all tokens: %w", err)
	}

	if err := s.userProvider.IncrementTokenVersion(ctx, userID); err != nil {
		return fmt.Errorf("increment token version: %w", err)
	}

	return s.activity.CloseActive(ctx, userID)
}

func blacklistKey(jti string) string {
	return "auth:blacklist:" + jti
}

func (s *Service) RevokeAccessToken(
	ctx context.Context,
	jti string,
	expiresAt time.Time,
) error {
	ttl := expiresAt.Sub(s.now())
	if jti == "" || ttl <= 0 {
		return nil
	}

	if err := s.store.Set(ctx, blacklistKey(jti), ttl); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}

	return nil
}

// VerifyAccessToken checks the signature, then the blacklist, then that
// the token version has not been bumped since issue. It satisfies
// middleware.TokenVerifier.
func (s *Service) VerifyAccessToken(
	ctx context.Context,
	token string,
) (*middleware.AccessTokenClaims, error) {
	claims, err := s.jwt.VerifyAccessToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if claims.ID != "" {
		revoked, err := s.store.Exists(ctx, blacklistKey(claims.ID))
		if err != nil {
			return nil, fmt.Errorf("check blacklist: %w", err)
		}
		if revoked {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenRevoked)
		}
	}

	if err := s.ValidateTokenVersion(ctx, claims.UserID, claims.TokenVersion); err != nil {
		return nil, err
	}

	return claims, nil
}

func (s *Service) ValidateTokenVersion(
	ctx context.Context,
	userID string,
	tokenVersion int,
) error {
	user, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return fmt.Errorf("validate token version: %w", core.ErrTokenInvalid)
		}
		return fmt.Errorf("get user: %w", err)
	}

	if tokenVersion < user.TokenVersion {
		return fmt.Errorf("validate token version: %w", core.ErrTokenRevoked)
	}

	return nil
}

func (s *Service) GetActiveSessions(
	ctx context.Context,
	userID string,
) ([]SessionInfo, error) {
	tokens, err := s.repo.GetActiveSessionsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}

	sessions := make([]SessionInfo, 0, len(tokens))
	for _, t := range tokens {
		sessions = append(sessions, SessionInfo{
			ID:        t.ID,
			UserAgent: t.UserAgent,
			IPAddress: t.IPAddress,
			CreatedAt: t.CreatedAt,
			ExpiresAt: t.ExpiresAt,
		})
	}

	return sessions, nil
}

func (s *Service) RevokeSession(
	ctx context.Context,
	userID, sessionID string,
) error {
	token, err := s.repo.FindByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("find session: %w", err)
	}

	if token.UserID != userID {
		return fmt.Errorf("revoke session: %w", core.ErrForbidden)
	}

	if err := s.repo.RevokeByID(ctx, sessionID); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	return nil
}

func (s *Service) Activity(ctx context.Context, userID string) ([]UserActivity, error) {
	return s.activity.ListForUser(ctx, userID, 20)
}

func (s *Service) ChangePassword(
	ctx context.Context,
	userID, currentPassword, newPassword string,
) error {
	user, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	valid, _, err := core.CheckPassword(currentPassword, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}
	if !valid {
		return core.UnauthorizedError("current password is incorrect")
	}

	if err := s.setPassword(ctx, userID, newPassword); err != nil {
		return err
	}

	return s.LogoutAll(ctx, userID)
}

func (s *Service) setPassword(ctx context.Context, userID, password string) error {
	newHash, err := core.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userProvider.UpdatePassword(ctx, userID, newHash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

func (s *Service) GetCurrentUser(
	ctx context.Context,
	userID string,
) (*UserResponse, error) {
	user, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *Service) EmailAvailable(ctx context.Context, email string) (bool, error) {
	exists, err := s.userProvider.EmailExists(ctx, strings.ToLower(email))
	return !exists, err
}

func (s *Service) PhoneAvailable(ctx context.Context, phone string) (bool, error) {
	exists, err := s.userProvider.PhoneExists(ctx, phone)
	return !exists, err
}

func (s *Service) createAuthResponse(
	ctx context.Context,
	user *UserInfo,
	userAgent, ipAddress, familyID string,
	oldTokenID *string,
) (*AuthResponse, error) {
	accessToken, err := s.jwt.CreateAccessToken(AccessTokenClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	refreshData, err := s.jwt.CreateRefreshToken(user.ID, familyID)
	if err != nil {
		return nil, fmt.Errorf("create refresh token: %w", err)
	}

	newTokenID := uuid.New().String()

	if err := s.repo.Create(ctx, &RefreshToken{
		ID:        newTokenID,
		UserID:    user.ID,
		TokenHash: refreshData.Hash,
		FamilyID:  refreshData.FamilyID,
		ExpiresAt: refreshData.ExpiresAt,
		UserAgent: userAgent,
		IPAddress: ipAddress,
	}); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	if oldTokenID != nil {
		if err := s.repo.MarkAsUsed(ctx, *oldTokenID, newTokenID); err != nil {
			// lost the race to another refresh with the same token
			if errors.Is(err, core.ErrNotFound) {
				return nil, ErrTokenReuse
			}
			return nil, fmt.Errorf("rotate refresh token: %w", err)
		}
	}

	ttl := s.jwt.AccessTokenTTL()
	return &AuthResponse{
		User: toUserResponse(user),
		Tokens: TokenResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshData.Token,
			TokenType:    "Bearer",
			ExpiresIn:    int(ttl / time.Second),
			ExpiresAt:    s.now().Add(ttl),
		},
	}, nil
}

var _ middleware.TokenVerifier = (*Service)(nil)
