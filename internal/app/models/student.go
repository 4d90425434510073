package models

// Student defines the student model based on the 'students' table.
// StudentCode is the human-assigned external identifier, distinct from the
// numeric primary key. DOB is stored as YYYY-MM-DD text.
type Student struct {
	ID           int64   `db:"student_id" json:"student_id"`
	Prefix       *string `db:"prefix" json:"prefix,omitempty"`
	FirstName    string  `db:"first_name" json:"first_name"`
	LastName     string  `db:"last_name" json:"last_name"`
	DOB          string  `db:"dob" json:"dob"`
	Phone        *string `db:"phone" json:"phone,omitempty"`
	DepartmentID *int64  `db:"department_id" json:"department_id"`
	StudentCode  string  `db:"student_code" json:"student_code"`
	Password     string  `db:"password" json:"-"`
	Level        string  `db:"level" json:"level"`
	BloodGroup   *string `db:"blood_group" json:"blood_group,omitempty"`
	Image        *string `db:"student_image" json:"student_image,omitempty"`
	FatherName   *string `db:"father_name" json:"father_name,omitempty"`
	MotherName   *string `db:"mother_name" json:"mother_name,omitempty"`
	ParentPhone  *string `db:"parent_phone" json:"parent_phone,omitempty"`

	// Joined from departments when queried with the department join.
	DepartmentName *string `db:"department_name" json:"department_name,omitempty"`
	DeptCode       *string `db:"dept_code" json:"dept_code,omitempty"`
}

// FullName is the display name carried in the session payload.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
