package services

import (
	"context"
	"mime/multipart"
	"sort"
	"strconv"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models/dto"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
)

// fakeStudentRepo is an in-memory IStudentRepository for service tests.
type fakeStudentRepo struct {
	nextID   int64
	students map[int64]*models.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{nextID: 1, students: make(map[int64]*models.Student)}
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	for _, existing := range f.students {
		if existing.StudentCode == student.StudentCode {
			return apperrors.ErrStudentCodeExists
		}
	}
	student.ID = f.nextID
	f.nextID++
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (f *fakeStudentRepo) GetByCode(_ context.Context, code string) (*models.Student, error) {
	for _, student := range f.students {
		if student.StudentCode == code {
			copied := *student
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	all := make([]*models.Student, 0, len(f.students))
	for _, student := range f.students {
		copied := *student
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return all, nil
}

func (f *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentRepo) UpdatePassword(_ context.Context, id int64, digest string) error {
	student, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.Password = digest
	return nil
}

func (f *fakeStudentRepo) UpdateImage(_ context.Context, id int64, image *string) error {
	student, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.Image = image
	return nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

// fakeAdminRepo is an in-memory IAdminRepository.
type fakeAdminRepo struct {
	nextID int64
	admins map[string]*models.AdminUser
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{nextID: 1, admins: make(map[string]*models.AdminUser)}
}

func (f *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*models.AdminUser, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	copied := *admin
	return &copied, nil
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *models.AdminUser) error {
	if _, ok := f.admins[admin.Username]; ok {
		return apperrors.ErrDuplicate
	}
	admin.ID = f.nextID
	f.nextID++
	copied := *admin
	f.admins[admin.Username] = &copied
	return nil
}

func (f *fakeAdminRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.admins)), nil
}

// fakeStorage records Save and Delete calls instead of touching disk.
type fakeStorage struct {
	saves   int
	deleted []string
}

func (f *fakeStorage) Save(_ context.Context, _ *multipart.FileHeader) (string, error) {
	f.saves++
	return "/uploads/" + strconv.Itoa(f.saves) + ".jpg", nil
}

func (f *fakeStorage) Delete(_ context.Context, ref string) error {
	f.deleted = append(f.deleted, ref)
	return nil
}

// fakeAnnouncementRepo captures create calls and serves canned feeds.
type fakeAnnouncementRepo struct {
	nextID  int64
	created []*models.Announcement
}

func (f *fakeAnnouncementRepo) Create(_ context.Context, announcement *models.Announcement) error {
	f.nextID++
	announcement.ID = f.nextID
	copied := *announcement
	f.created = append(f.created, &copied)
	return nil
}

func (f *fakeAnnouncementRepo) GetAll(_ context.Context, departmentID *int64) ([]*models.Announcement, error) {
	var out []*models.Announcement
	for _, a := range f.created {
		if departmentID == nil || (a.DepartmentID != nil && *a.DepartmentID == *departmentID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAnnouncementRepo) GetForDepartment(_ context.Context, departmentID *int64) ([]*models.Announcement, error) {
	var out []*models.Announcement
	for _, a := range f.created {
		if a.DepartmentID == nil {
			out = append(out, a)
			continue
		}
		if departmentID != nil && *a.DepartmentID == *departmentID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAnnouncementRepo) Delete(_ context.Context, id int64) error {
	for i, a := range f.created {
		if a.ID == id {
			f.created = append(f.created[:i], f.created[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrAnnouncementNotFound
}

func registerRequest(code string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Prefix:       "นาย",
		FirstName:    "สมชาย",
		LastName:     "ใจดี",
		DOB:          "2005-03-07",
		DepartmentID: 1,
		StudentCode:  code,
		Level:        "ปวช.1",
	}
}
