package service

import (
	"context"
	"testing"
	"time"

	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/entity"
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/enum"
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/repository"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/apperror"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStaffRepo struct {
	repository.StaffRepository
	byEmail map[string]*entity.Staff
	byID    map[uuid.UUID]*entity.Staff
	updated *entity.Staff
}

func (s *stubStaffRepo) GetByEmail(_ context.Context, email string) (*entity.Staff, error) {
	return s.byEmail[email], nil
}

func (s *stubStaffRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Staff, error) {
	return s.byID[id], nil
}

func (s *stubStaffRepo) Update(_ context.Context, staff *entity.Staff) error {
	s.updated = staff
	return nil
}

func newTestAuthService(t *testing.T, staff *entity.Staff) (*AuthService, *stubStaffRepo) {
	t.Helper()
	repo := &stubStaffRepo{
		byEmail: map[string]*entity.Staff{},
		byID:    map[uuid.UUID]*entity.Staff{},
	}
	if staff != nil {
		repo.byEmail[staff.Email] = staff
		repo.byID[staff.ID] = staff
	}
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(repo, jwtManager), repo
}

func activeStaff(t *testing.T, password string) *entity.Staff {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &entity.Staff{
		ID:          uuid.New(),
		DisplayName: "Ada Obi",
		Email:       "ada@pharmjam.test",
		Password:    hash,
		Role:        enum.RoleCashier,
		Active:      true,
	}
}

func TestLogin_Success(t *testing.T) {
	staff := activeStaff(t, "correct horse")
	svc, repo := newTestAuthService(t, staff)

	out, err := svc.Login(context.Background(), &LoginInput{
		Email:    staff.Email,
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, staff.ID, out.Staff.ID)
	require.NotNil(t, repo.updated, "login must record last login time")
	assert.NotNil(t, repo.updated.LastLoginAt)
}

func TestLogin_WrongPassword(t *testing.T) {
	staff := activeStaff(t, "correct horse")
	svc, _ := newTestAuthService(t, staff)

	out, err := svc.Login(context.Background(), &LoginInput{
		Email:    staff.Email,
		Password: "battery staple",
	})
	assert.Nil(t, out)
	require.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(t, nil)

	out, err := svc.Login(context.Background(), &LoginInput{
		Email:    "nobody@pharmjam.test",
		Password: "whatever",
	})
	assert.Nil(t, out)
	require.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	staff := activeStaff(t, "correct horse")
	staff.Active = false
	svc, _ := newTestAuthService(t, staff)

	_, err := svc.Login(context.Background(), &LoginInput{
		Email:    staff.Email,
		Password: "correct horse",
	})
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	staff := activeStaff(t, "correct horse")
	svc, _ := newTestAuthService(t, staff)

	login, err := svc.Login(context.Background(), &LoginInput{
		Email:    staff.Email,
		Password: "correct horse",
	})
	require.NoError(t, err)

	out, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, staff.ID, out.Staff.ID)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
}

func TestRefreshToken_RejectsGarbage(t *testing.T) {
	svc, _ := newTestAuthService(t, nil)

	out, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.Nil(t, out)
	require.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestRefreshToken_DeactivatedAccount(t *testing.T) {
	staff := activeStaff(t, "correct horse")
	svc, _ := newTestAuthService(t, staff)

	login, err := svc.Login(context.Background(), &LoginInput{
		Email:    staff.Email,
		Password: "correct horse",
	})
	require.NoError(t, err)

	staff.Active = false

	out, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	assert.Nil(t, out)
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
}

func TestChangePassword(t *testing.T) {
	staff := activeStaff(t, "old password")
	svc, _ := newTestAuthService(t, staff)

	err := svc.ChangePassword(context.Background(), &ChangePasswordInput{
		StaffID:         staff.ID,
		CurrentPassword: "old password",
		NewPassword:     "new password",
	})
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("new password", staff.Password))
	assert.False(t, utils.CheckPasswordHash("old password", staff.Password))
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	staff := activeStaff(t, "old password")
	svc, _ := newTestAuthService(t, staff)

	err := svc.ChangePassword(context.Background(), &ChangePasswordInput{
		StaffID:         staff.ID,
		CurrentPassword: "guess",
		NewPassword:     "new password",
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.True(t, utils.CheckPasswordHash("old password", staff.Password), "password must not change")
}
