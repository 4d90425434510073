package models

// AdminUser represents an operator account. The password column holds a
// bcrypt digest; it never leaves the server, hence json:"-".
type AdminUser struct {
	ID       int64   `db:"admin_id" json:"admin_id"`
	Username string  `db:"username" json:"username"`
	Password string  `db:"password" json:"-"`
	Email    *string `db:"email" json:"email,omitempty"`
	Role     string  `db:"role" json:"role"`
}
