package models

// Department represents a row in the departments table.
type Department struct {
	ID   int64  `db:"department_id" json:"department_id"`
	Name string `db:"department_name" json:"department_name"`
	Code string `db:"code" json:"code"`
}
