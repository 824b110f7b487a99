// AngelaMos | 2026
// entity.go

package contact

import "time"

// Info is one published set of academy contact details.
type Info struct {
	ID        string    `db:"id"`
	Address   string    `db:"address"`
	Phone     string    `db:"phone"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
