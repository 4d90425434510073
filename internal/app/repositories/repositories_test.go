package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/migrations"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models"
	"github.com/tharatepjaiya-creator/Student-info1/internal/db"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
)

// newTestDB opens a migrated throwaway database.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.NewSQLiteMemory()
	require.NoError(t, err)
	t.Cleanup(database.Close)

	require.NoError(t, migrations.NewMigrator(database.DB, database.Driver).Run(context.Background()))
	return database.DB
}

func testStudent(code string, departmentID *int64) *models.Student {
	return &models.Student{
		FirstName:    "สมชาย",
		LastName:     "ใจดี",
		DOB:          "2005-03-07",
		DepartmentID: departmentID,
		StudentCode:  code,
		Password:     "digest",
		Level:        "ปวช.1",
	}
}

func TestStudentCreateAndGet(t *testing.T) {
	handle := newTestDB(t)
	ctx := context.Background()

	departments := NewDepartmentRepository(handle)
	dept := &models.Department{Name: "เทคโนโลยีคอมพิวเตอร์", Code: "COM"}
	require.NoError(t, departments.Create(ctx, dept))

	students := NewStudentRepository(handle)
	student := testStudent("65001", &dept.ID)
	require.NoError(t, students.Create(ctx, student))
	assert.NotZero(t, student.ID)

	byCode, err := students.GetByCode(ctx, "65001")
	require.NoError(t, err)
	assert.Equal(t, student.ID, byCode.ID)
	require.NotNil(t, byCode.DepartmentName)
	assert.Equal(t, "เทคโนโลยีคอมพิวเตอร์", *byCode.DepartmentName)
	require.NotNil(t, byCode.DeptCode)
	assert.Equal(t, "COM", *byCode.DeptCode)

	_, err = students.GetByCode(ctx, "99999")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	_, err = students.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentCodeUnique(t *testing.T) {
	handle := newTestDB(t)
	ctx := context.Background()
	students := NewStudentRepository(handle)

	require.NoError(t, students.Create(ctx, testStudent("65001", nil)))

	dup := testStudent("65001", nil)
	dup.FirstName = "สมหญิง"
	err := students.Create(ctx, dup)
	assert.ErrorIs(t, err, apperrors.ErrStudentCodeExists)

	// The original row is untouched.
	kept, err := students.GetByCode(ctx, "65001")
	require.NoError(t, err)
	assert.Equal(t, "สมชาย", kept.FirstName)
}

func TestStudentUpdateTargetsOnlyEditableColumns(t *testing.T) {
	handle := newTestDB(t)
	ctx := context.Background()
	students := NewStudentRepository(handle)

	student := testStudent("65001", nil)
	require.NoError(t, students.Create(ctx, student))

	student.FirstName = "สมหญิง"
	student.Level = "ปวช.2"
	require.NoError(t, students.Update(ctx, student))

	require.NoError(t, students.UpdatePassword(ctx, student.ID, "newdigest"))
	image := "/uploads/1.jpg"
	require.NoError(t, students.UpdateImage(ctx, student.ID, &image))

	got, err := students.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "สมหญิง", got.FirstName)
	assert.Equal(t, "newdigest", got.Password)
	require.NotNil(t, got.Image)
	assert.Equal(t, image, *got.Image)

	assert.ErrorIs(t, students.Update(ctx, &models.Student{ID: 9999, FirstName: "x", LastName: "y", DOB: "2005-01-01"}), apperrors.ErrStudentNotFound)
	assert.ErrorIs(t, students.UpdatePassword(ctx, 9999, "d"), apperrors.ErrStudentNotFound)
	assert.ErrorIs(t, students.Delete(ctx, 9999), apperrors.ErrStudentNotFound)
}

func TestDepartmentDeleteLeavesDanglingReference(t *testing.T) {
	handle := newTestDB(t)
	ctx := context.Background()

	departments := NewDepartmentRepository(handle)
	dept := &models.Department{Name: "ช่างยนต์", Code: "AUTO"}
	require.NoError(t, departments.Create(ctx, dept))

	students := NewStudentRepository(handle)
	student := testStudent("65001", &dept.ID)
	require.NoError(t, students.Create(ctx, student))

	require.NoError(t, departments.Delete(ctx, dept.ID))
	assert.ErrorIs(t, departments.Delete(ctx, dept.ID), apperrors.ErrDepartmentNotFound)
	_, err := departments.GetByID(ctx, dept.ID)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)

	// The student keeps its department_id, but the join yields no name.
	got, err := students.GetByID(ctx, student.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DepartmentID)
	assert.Equal(t, dept.ID, *got.DepartmentID)
	assert.Nil(t, got.DepartmentName)
}

func TestAnnouncementFeeds(t *testing.T) {
	handle := newTestDB(t)
	ctx := context.Background()

	departments := NewDepartmentRepository(handle)
	com := &models.Department{Name: "เทคโนโลยีคอมพิวเตอร์", Code: "COM"}
	auto := &models.Department{Name: "ช่างยนต์", Code: "AUTO"}
	require.NoError(t, departments.Create(ctx, com))
	require.NoError(t, departments.Create(ctx, auto))

	announcements := NewAnnouncementRepository(handle)
	global := &models.Announcement{Title: "global", Content: "c"}
	forCom := &models.Announcement{Title: "for com", Content: "c", DepartmentID: &com.ID}
	forAuto := &models.Announcement{Title: "for auto", Content: "c", DepartmentID: &auto.ID}
	require.NoError(t, announcements.Create(ctx, global))
	require.NoError(t, announcements.Create(ctx, forCom))
	require.NoError(t, announcements.Create(ctx, forAuto))
	assert.NotEmpty(t, global.CreatedAt)

	all, err := announcements.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	onlyCom, err := announcements.GetAll(ctx, &com.ID)
	require.NoError(t, err)
	require.Len(t, onlyCom, 1)
	assert.Equal(t, "for com", onlyCom[0].Title)
	require.NotNil(t, onlyCom[0].DepartmentName)
	assert.Equal(t, com.Name, *onlyCom[0].DepartmentName)

	feed, err := announcements.GetForDepartment(ctx, &com.ID)
	require.NoError(t, err)
	titles := make([]string, 0, len(feed))
	for _, a := range feed {
		titles = append(titles, a.Title)
	}
	assert.ElementsMatch(t, []string{"global", "for com"}, titles)

	// A student with no department sees only global announcements.
	noDept, err := announcements.GetForDepartment(ctx, nil)
	require.NoError(t, err)
	require.Len(t, noDept, 1)
	assert.Equal(t, "global", noDept[0].Title)

	require.NoError(t, announcements.Delete(ctx, global.ID))
	assert.ErrorIs(t, announcements.Delete(ctx, global.ID), apperrors.ErrAnnouncementNotFound)
}

func TestStatsCountsIncludeEmptyDepartments(t *testing.T) {
	handle := newTestDB(t)
	ctx := context.Background()

	departments := NewDepartmentRepository(handle)
	com := &models.Department{Name: "เทคโนโลยีคอมพิวเตอร์", Code: "COM"}
	auto := &models.Department{Name: "ช่างยนต์", Code: "AUTO"}
	require.NoError(t, departments.Create(ctx, com))
	require.NoError(t, departments.Create(ctx, auto))

	students := NewStudentRepository(handle)
	require.NoError(t, students.Create(ctx, testStudent("65001", &com.ID)))
	require.NoError(t, students.Create(ctx, testStudent("65002", &com.ID)))

	stats := NewStatsRepository(handle)
	total, err := stats.CountStudents(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	deptTotal, err := stats.CountDepartments(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deptTotal)

	breakdown, err := stats.PerDepartmentCounts(ctx)
	require.NoError(t, err)
	require.Len(t, breakdown, 2)
	counts := map[string]int64{}
	for _, row := range breakdown {
		counts[row.DepartmentName] = row.Count
	}
	assert.EqualValues(t, 2, counts[com.Name])
	assert.EqualValues(t, 0, counts[auto.Name])
}

func TestAdminRepository(t *testing.T) {
	handle := newTestDB(t)
	ctx := context.Background()
	admins := NewAdminRepository(handle)

	count, err := admins.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	admin := &models.AdminUser{Username: "admin", Password: "digest"}
	require.NoError(t, admins.Create(ctx, admin))
	assert.NotZero(t, admin.ID)

	got, err := admins.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Role)

	dup := &models.AdminUser{Username: "admin", Password: "other"}
	assert.ErrorIs(t, admins.Create(ctx, dup), apperrors.ErrDuplicate)

	_, err = admins.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrAdminNotFound)
}
