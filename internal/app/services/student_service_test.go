package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models/dto"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/passwords"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/session"
)

func newStudentFixture(t *testing.T) (StudentService, AuthService, *fakeStudentRepo, *fakeStorage) {
	t.Helper()
	students := newFakeStudentRepo()
	storage := &fakeStorage{}
	auth := NewAuthService(students, newFakeAdminRepo(), session.NewMemoryStore(), time.Hour, zerolog.Nop())
	svc := NewStudentService(students, storage, zerolog.Nop())
	return svc, auth, students, storage
}

func TestUpdateStudentKeepsCredentialAndPhoto(t *testing.T) {
	svc, auth, students, _ := newStudentFixture(t)
	ctx := context.Background()

	image := "/uploads/1.jpg"
	created, err := auth.RegisterStudent(ctx, registerRequest("65001"), &image)
	require.NoError(t, err)

	err = svc.Update(ctx, created.ID, dto.UpdateStudentRequest{
		FirstName:    "สมหญิง",
		LastName:     "ใจดี",
		DOB:          "2005-03-07",
		DepartmentID: 2,
		Level:        "ปวช.2",
	})
	require.NoError(t, err)

	updated, err := students.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "สมหญิง", updated.FirstName)
	assert.Equal(t, created.StudentCode, updated.StudentCode)
	assert.Equal(t, created.Password, updated.Password)
	require.NotNil(t, updated.Image)
	assert.Equal(t, image, *updated.Image)
	// Optional fields not sent in the edit form are cleared.
	assert.Nil(t, updated.Prefix)
}

func TestUpdateStudentMissing(t *testing.T) {
	svc, _, _, _ := newStudentFixture(t)
	err := svc.Update(context.Background(), 42, dto.UpdateStudentRequest{
		FirstName: "x", LastName: "y", DOB: "2005-01-01", DepartmentID: 1, Level: "ปวช.1",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestResetPasswordRestoresDerivedSecret(t *testing.T) {
	svc, auth, _, _ := newStudentFixture(t)
	ctx := context.Background()

	created, err := auth.RegisterStudent(ctx, registerRequest("65001"), nil)
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(ctx, created.ID, "secret99"))
	_, err = auth.LoginStudent(ctx, "65001", "07/03/2548")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	require.NoError(t, svc.ResetPassword(ctx, created.ID))
	_, err = auth.LoginStudent(ctx, "65001", "07/03/2548")
	assert.NoError(t, err)
}

func TestChangePasswordValidation(t *testing.T) {
	svc, auth, students, _ := newStudentFixture(t)
	ctx := context.Background()

	created, err := auth.RegisterStudent(ctx, registerRequest("65001"), nil)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(ctx, created.ID, "abc"), apperrors.ErrPasswordTooShort)
	assert.ErrorIs(t, svc.ChangePassword(ctx, created.ID, "  a "), apperrors.ErrPasswordTooShort)
	assert.ErrorIs(t, svc.ChangePassword(ctx, 42, "longenough"), apperrors.ErrStudentNotFound)

	require.NoError(t, svc.ChangePassword(ctx, created.ID, "abcd"))
	updated, err := students.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, passwords.Verify("abcd", updated.Password))
}

func TestReplacePhotoDeletesOldFile(t *testing.T) {
	svc, auth, students, storage := newStudentFixture(t)
	ctx := context.Background()

	old := "/uploads/old.jpg"
	created, err := auth.RegisterStudent(ctx, registerRequest("65001"), &old)
	require.NoError(t, err)

	require.NoError(t, svc.ReplacePhoto(ctx, created.ID, "/uploads/new.jpg"))

	updated, err := students.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.Image)
	assert.Equal(t, "/uploads/new.jpg", *updated.Image)
	assert.Equal(t, []string{old}, storage.deleted)
}

func TestReplacePhotoWithoutExistingFile(t *testing.T) {
	svc, auth, _, storage := newStudentFixture(t)
	ctx := context.Background()

	created, err := auth.RegisterStudent(ctx, registerRequest("65001"), nil)
	require.NoError(t, err)

	require.NoError(t, svc.ReplacePhoto(ctx, created.ID, "/uploads/new.jpg"))
	assert.Empty(t, storage.deleted)
}

func TestDeleteStudent(t *testing.T) {
	svc, auth, _, _ := newStudentFixture(t)
	ctx := context.Background()

	created, err := auth.RegisterStudent(ctx, registerRequest("65001"), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), apperrors.ErrStudentNotFound)
}
