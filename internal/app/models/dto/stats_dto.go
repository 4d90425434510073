package dto

// DepartmentCount is one row of the per-department breakdown. Departments
// with no students appear with a zero count.
type DepartmentCount struct {
	DepartmentName string `db:"department_name" json:"department_name"`
	Count          int64  `db:"count" json:"count"`
}

// DashboardStats feeds the admin dashboard.
type DashboardStats struct {
	Students    int64             `json:"students"`
	Departments int64             `json:"departments"`
	Breakdown   []DepartmentCount `json:"breakdown"`
}

// PublicStats feeds the landing page.
type PublicStats struct {
	Students  int64             `json:"students"`
	Breakdown []DepartmentCount `json:"breakdown"`
}
