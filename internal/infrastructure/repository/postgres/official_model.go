package postgres

import "time"

type officialTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	FullName  string    `db:"full_name"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
