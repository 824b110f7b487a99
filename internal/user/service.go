// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cricketacademy/academy-api/internal/auth"
	"github.com/cricketacademy/academy-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

// Create registers a self-signup. New accounts are PENDING students until
// the email OTP is verified.
func (s *Service) Create(
	ctx context.Context,
	nu auth.NewUser,
) (*auth.UserInfo, error) {
	user := &User{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(nu.Name),
		Email:           strings.ToLower(strings.TrimSpace(nu.Email)),
		Phone:           strings.TrimSpace(nu.Phone),
		Age:             nu.Age,
		ExperienceLevel: strings.ToUpper(nu.ExperienceLevel),
		PasswordHash:    nu.PasswordHash,
		Role:            RoleStudent,
	}
	user.SetStatus(StatusPending)

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) IncrementTokenVersion(
	ctx context.Context,
	userID string,
) error {
	return s.repo.IncrementTokenVersion(ctx, userID)
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func (s *Service) Activate(ctx context.Context, userID string) error {
	return s.repo.Activate(ctx, userID)
}

func (s *Service) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {
	return s.repo.ExistsByEmail(ctx, strings.TrimSpace(email))
}

func (s *Service) PhoneExists(
	ctx context.Context,
	phone string,
) (bool, error) {
	return s.repo.ExistsByPhone(ctx, strings.TrimSpace(phone))
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetMe(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("get me: %w", core.ErrUnauthorized)
	}

	return s.repo.GetByID(ctx, userID)
}

func (s *Service) UpdateMe(
	ctx context.Context,
	userID string,
	req UpdateMeRequest,
) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("update me: %w", core.ErrUnauthorized)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfile(user, req)

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) DeleteMe(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("delete me: %w", core.ErrUnauthorized)
	}

	return s.repo.SoftDelete(ctx, userID)
}

// CreateUser is the admin path. Role and status may be set directly and
// the email counts as verified once the account is ACTIVE.
func (s *Service) CreateUser(
	ctx context.Context,
	req AdminCreateUserRequest,
) (*User, error) {
	hash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           strings.TrimSpace(req.Phone),
		Age:             req.Age,
		ExperienceLevel: req.ExperienceLevel,
		PasswordHash:    hash,
		Role:            orDefault(req.Role, RoleStudent),
	}
	user.SetStatus(orDefault(req.Status, StatusActive))
	user.EmailVerified = user.Status == StatusActive

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) UpdateUser(
	ctx context.Context,
	id string,
	req AdminUpdateUserRequest,
) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyProfile(user, req.UpdateMeRequest)

	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	statusChanged := false
	if req.Status != nil && *req.Status != user.Status {
		user.SetStatus(*req.Status)
		statusChanged = true
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if statusChanged && user.Status == StatusInactive {
		if err := s.repo.IncrementTokenVersion(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// DeactivateUser flips the account to INACTIVE and invalidates every
// access token issued to it.
func (s *Service) DeactivateUser(ctx context.Context, id string) (*User, error) {
	inactive := StatusInactive
	return s.UpdateUser(ctx, id, AdminUpdateUserRequest{Status: &inactive})
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *Service) ListUsers(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	return s.repo.Statistics(ctx)
}

func (s *Service) CanDeleteUser(
	ctx context.Context,
	requesterID, targetID string,
) error {
	if requesterID == targetID {
		return fmt.Errorf("cannot delete your own account here: %w", core.ErrForbidden)
	}

	target, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if target.IsAdmin() {
		return fmt.Errorf("cannot delete admin users: %w", core.ErrForbidden)
	}

	return nil
}

func applyProfile(u *User, req UpdateMeRequest) {
	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		u.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Age != nil {
		u.Age = *req.Age
	}
	if req.ExperienceLevel != nil {
		u.ExperienceLevel = *req.ExperienceLevel
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Phone:         u.Phone,
		PasswordHash:  u.PasswordHash,
		Role:          u.Role,
		Status:        u.Status,
		EmailVerified: u.EmailVerified,
		TokenVersion:  u.TokenVersion,
		CreatedAt:     u.CreatedAt,
	}
}

var _ auth.UserProvider = (*Service)(nil)
