// AngelaMos | 2026
// dto.go

package contact

import (
	"strings"
	"time"
)

type InfoRequest struct {
	Address string `json:"address" validate:"required,max=500"`
	Phone   string `json:"phone"   validate:"required,max=30"`
	Email   string `json:"email"   validate:"required,email,max=255"`
}

func (req InfoRequest) apply(c *Info) {
	c.Address = strings.TrimSpace(req.Address)
	c.Phone = strings.TrimSpace(req.Phone)
	c.Email = strings.ToLower(strings.TrimSpace(req.Email))
}

type InfoResponse struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToInfoResponse(c *Info) InfoResponse {
	return InfoResponse{
		ID:        c.ID,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
