// AngelaMos | 2026
// dto.go

package auth

import (
	"time"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

type RegisterRequest struct {
	Name            string `json:"name"             validate:"required,min=1,max=100"`
	Email           string `json:"email"            validate:"required,email,max=255"`
	Phone           string `json:"phone"            validate:"required,phone"`
	Age             int    `json:"age"              validate:"required,gte=5,lte=80"`
	ExperienceLevel string `json:"experience_level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED PROFESSIONAL"`
	Password        string `json:"password"         validate:"required,min=6,max=128"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"        validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=128"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6,max=128"`
}

type VerifyOTPRequest struct {
	Token string `json:"token" validate:"required"`
	OTP   string `json:"otp"   validate:"required,len=6,numeric"`
}

type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

type AuthResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

type SessionInfo struct {
	ID        string    `json:"id"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionsResponse struct {
	Sessions []SessionInfo `json:"sessions"`
}

type OTPSentResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type VerificationStatus struct {
	Status        string `json:"status"`
	EmailVerified bool   `json:"email_verified"`
}

type AvailabilityResponse struct {
	Value     string `json:"value"`
	Available bool   `json:"available"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ExperienceLevel struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ExperienceLevels is ordered from novice to professional.
var ExperienceLevels = []ExperienceLevel{
	{Code: "BEGINNER", Label: "Beginner", Description: "New to cricket or playing casually"},
	{Code: "INTERMEDIATE", Label: "Intermediate", Description: "Plays regularly at club level"},
	{Code: "ADVANCED", Label: "Advanced", Description: "Competitive district or state level"},
	{Code: "PROFESSIONAL", Label: "Professional", Description: "Plays or has played professionally"},
}

func toUserResponse(u *UserInfo) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Phone:         u.Phone,
		Role:          u.Role,
		Status:        u.Status,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}
