package service

import (
	"context"
	"time"

	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/entity"
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/repository"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/apperror"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/utils"
	"github.com/google/uuid"
)

// AuthService handles staff authentication
type AuthService struct {
	staffRepo  repository.StaffRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(staffRepo repository.StaffRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		staffRepo:  staffRepo,
		jwtManager: jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Staff        *entity.Staff
	AccessToken  string
	RefreshToken string
}

// Login authenticates a staff member and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	staff, err := s.staffRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !staff.Active {
		return nil, apperror.NewAppError(403, "Account is deactivated")
	}

	if !utils.CheckPasswordHash(input.Password, staff.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(staff.ID, staff.Email, staff.DisplayName, string(staff.Role))
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(staff.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	staff.LastLoginAt = &now
	_ = s.staffRepo.Update(ctx, staff)

	return &LoginOutput{
		Staff:        staff,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	staffID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.ErrNotFound
	}
	if !staff.Active {
		return nil, apperror.NewAppError(403, "Account is deactivated")
	}

	newAccessToken, err := s.jwtManager.GenerateAccessToken(staff.ID, staff.Email, staff.DisplayName, string(staff.Role))
	if err != nil {
		return nil, err
	}

	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(staff.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Staff:        staff,
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// GetCurrentStaff returns the authenticated staff member by ID
func (s *AuthService) GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*entity.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.ErrNotFound
	}
	return staff, nil
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	StaffID         uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePassword changes the staff member's password
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	staff, err := s.staffRepo.GetByID(ctx, input.StaffID)
	if err != nil {
		return err
	}
	if staff == nil {
		return apperror.ErrNotFound
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, staff.Password) {
		return apperror.NewBadRequestError("Current password is incorrect")
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	staff.Password = hashedPassword
	return s.staffRepo.Update(ctx, staff)
}
