package dto

// UpdateStudentRequest carries the admin edit form for a student record.
// Password and photo are changed through their own endpoints.
type UpdateStudentRequest struct {
	Prefix       string `json:"prefix"`
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	DOB          string `json:"dob" binding:"required,dateformat"`
	Phone        string `json:"phone"`
	DepartmentID int64  `json:"department_id" binding:"required"`
	Level        string `json:"level" binding:"required"`
	BloodGroup   string `json:"blood_group"`
	FatherName   string `json:"father_name"`
	MotherName   string `json:"mother_name"`
	ParentPhone  string `json:"parent_phone"`
}

// ChangePasswordRequest sets an operator-chosen student password.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

// UploadImageResponse returns the stored reference after a photo replace.
type UploadImageResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ImagePath string `json:"imagePath"`
}
