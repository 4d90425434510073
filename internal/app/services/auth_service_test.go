package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/passwords"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/session"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeStudentRepo, *fakeAdminRepo, *session.MemoryStore) {
	t.Helper()
	students := newFakeStudentRepo()
	admins := newFakeAdminRepo()
	store := session.NewMemoryStore()
	svc := NewAuthService(students, admins, store, time.Hour, zerolog.Nop())
	return svc, students, admins, store
}

func TestRegisterStudentAssignsDerivedPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	student, err := svc.RegisterStudent(ctx, registerRequest("65001"), nil)
	require.NoError(t, err)
	assert.NotZero(t, student.ID)

	// DOB 2005-03-07 derives 07/03/2548.
	assert.True(t, passwords.Verify("07/03/2548", student.Password))
}

func TestRegisterStudentDuplicateCode(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.RegisterStudent(ctx, registerRequest("65001"), nil)
	require.NoError(t, err)

	_, err = svc.RegisterStudent(ctx, registerRequest("65001"), nil)
	assert.ErrorIs(t, err, apperrors.ErrStudentCodeExists)
}

func TestRegisterStudentRejectsBadBirthDate(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	req := registerRequest("65001")
	req.DOB = "07/03/2005"
	_, err := svc.RegisterStudent(context.Background(), req, nil)
	assert.Error(t, err)
}

func TestLoginStudentAcceptsSloppySecretForms(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.RegisterStudent(ctx, registerRequest("65001"), nil)
	require.NoError(t, err)

	for _, raw := range []string{"07/03/2548", "7/3/2548", "07032548", " 07/03/2548 "} {
		result, err := svc.LoginStudent(ctx, "65001", raw)
		require.NoError(t, err, "raw secret %q", raw)
		assert.Equal(t, StudentDashboardPath, result.Redirect)
		assert.Equal(t, session.RoleStudent, result.Payload.Role)
		assert.Equal(t, "65001", result.Payload.StudentCode)
	}
}

func TestLoginStudentFailureKinds(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.RegisterStudent(ctx, registerRequest("65001"), nil)
	require.NoError(t, err)

	// Unknown account and bad secret are distinct failures.
	_, err = svc.LoginStudent(ctx, "99999", "07/03/2548")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = svc.LoginStudent(ctx, "65001", "01/01/2500")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginStudentStoresSession(t *testing.T) {
	svc, _, _, store := newAuthFixture(t)
	ctx := context.Background()

	registered, err := svc.RegisterStudent(ctx, registerRequest("65001"), nil)
	require.NoError(t, err)

	result, err := svc.LoginStudent(ctx, "65001", "07/03/2548")
	require.NoError(t, err)

	payload, err := store.Get(ctx, result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, payload.UserID)
	assert.Equal(t, "สมชาย ใจดี", payload.DisplayName)
}

func TestLoginAdmin(t *testing.T) {
	svc, _, admins, _ := newAuthFixture(t)
	ctx := context.Background()

	digest, err := passwords.Hash("admin")
	require.NoError(t, err)
	require.NoError(t, admins.Create(ctx, &models.AdminUser{Username: "admin", Password: digest, Role: "admin"}))

	result, err := svc.LoginAdmin(ctx, "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, AdminDashboardPath, result.Redirect)
	assert.Equal(t, session.RoleAdmin, result.Payload.Role)

	_, err = svc.LoginAdmin(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.LoginAdmin(ctx, "nobody", "admin")
	assert.ErrorIs(t, err, apperrors.ErrAdminNotFound)
}

func TestLogout(t *testing.T) {
	svc, _, _, store := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.RegisterStudent(ctx, registerRequest("65001"), nil)
	require.NoError(t, err)
	result, err := svc.LoginStudent(ctx, "65001", "07/03/2548")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.SessionID))
	_, err = store.Get(ctx, result.SessionID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Logging out again, or with no cookie at all, is fine.
	assert.NoError(t, svc.Logout(ctx, result.SessionID))
	assert.NoError(t, svc.Logout(ctx, ""))
}
