package dto

// RegisterRequest carries the public registration form. The same shape is
// accepted as JSON when an admin creates a student directly.
type RegisterRequest struct {
	Prefix       string `form:"prefix" json:"prefix"`
	FirstName    string `form:"first_name" json:"first_name" binding:"required"`
	LastName     string `form:"last_name" json:"last_name" binding:"required"`
	DOB          string `form:"dob" json:"dob" binding:"required,dateformat"`
	Phone        string `form:"phone" json:"phone"`
	DepartmentID int64  `form:"department_id" json:"department_id" binding:"required"`
	StudentCode  string `form:"student_code" json:"student_code" binding:"required"`
	Level        string `form:"level" json:"level" binding:"required"`
	BloodGroup   string `form:"blood_group" json:"blood_group"`
	FatherName   string `form:"father_name" json:"father_name"`
	MotherName   string `form:"mother_name" json:"mother_name"`
	ParentPhone  string `form:"parent_phone" json:"parent_phone"`
}

// RegisterResponse echoes the caller-supplied student code back.
type RegisterResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	StudentCode string `json:"student_code"`
}

// StudentLoginRequest is the student login body.
type StudentLoginRequest struct {
	StudentCode string `json:"student_code" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// AdminLoginRequest is the admin login body.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse tells the page where to go next.
type LoginResponse struct {
	Success  bool   `json:"success"`
	Redirect string `json:"redirect"`
}
