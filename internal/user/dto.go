// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type UpdateMeRequest struct {
	Name            *string `json:"name,omitempty"             validate:"omitempty,min=1,max=100"`
	Phone           *string `json:"phone,omitempty"            validate:"omitempty,phone"`
	Age             *int    `json:"age,omitempty"              validate:"omitempty,gte=5,lte=80"`
	ExperienceLevel *string `json:"experience_level,omitempty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED PROFESSIONAL"`
}

type AdminCreateUserRequest struct {
	Name            string `json:"name"             validate:"required,min=1,max=100"`
	Email           string `json:"email"            validate:"required,email,max=255"`
	Phone           string `json:"phone"            validate:"required,phone"`
	Age             int    `json:"age"              validate:"required,gte=5,lte=80"`
	ExperienceLevel string `json:"experience_level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED PROFESSIONAL"`
	Password        string `json:"password"         validate:"required,min=6,max=128"`
	Role            string `json:"role"             validate:"omitempty,oneof=STUDENT COACH ADMIN"`
	Status          string `json:"status"           validate:"omitempty,oneof=PENDING ACTIVE INACTIVE"`
}

type AdminUpdateUserRequest struct {
	UpdateMeRequest
	Email  *string `json:"email,omitempty"  validate:"omitempty,email,max=255"`
	Role   *string `json:"role,omitempty"   validate:"omitempty,oneof=STUDENT COACH ADMIN"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=PENDING ACTIVE INACTIVE"`
}

type UserResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Age             int       `json:"age"`
	ExperienceLevel string    `json:"experience_level"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	IsActive        bool      `json:"is_active"`
	EmailVerified   bool      `json:"email_verified"`
	PhoneVerified   bool      `json:"phone_verified"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ListUsersParams struct {
	Page            int
	PageSize        int
	Search          string
	Role            string
	Status          string
	ExperienceLevel string
}

func (p *ListUsersParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListUsersParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type Statistics struct {
	Total             int            `json:"total"`
	Active            int            `json:"active"`
	ByStatus          map[string]int `json:"by_status"`
	ByExperienceLevel map[string]int `json:"by_experience_level"`
	ByRole            map[string]int `json:"by_role"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Phone:           u.Phone,
		Age:             u.Age,
		ExperienceLevel: u.ExperienceLevel,
		Role:            u.Role,
		Status:          u.Status,
		IsActive:        u.IsActive,
		EmailVerified:   u.EmailVerified,
		PhoneVerified:   u.PhoneVerified,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}
