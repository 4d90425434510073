package dto

// CreateAnnouncementRequest is the multipart announcement form. DepartmentID
// arrives as a string because the form sends "" or "null" for a global
// announcement.
type CreateAnnouncementRequest struct {
	Title        string `form:"title" binding:"required"`
	Content      string `form:"content" binding:"required"`
	DepartmentID string `form:"department_id"`
}
