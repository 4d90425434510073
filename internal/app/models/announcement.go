package models

// Announcement represents a posted announcement. A nil DepartmentID means the
// announcement applies to every department.
type Announcement struct {
	ID           int64   `db:"id" json:"id"`
	Title        string  `db:"title" json:"title"`
	Content      string  `db:"content" json:"content"`
	Image        *string `db:"image" json:"image,omitempty"`
	DepartmentID *int64  `db:"department_id" json:"department_id"`
	CreatedAt    string  `db:"created_at" json:"created_at"`

	// Joined from departments; nil for global announcements.
	DepartmentName *string `db:"department_name" json:"department_name,omitempty"`
}
