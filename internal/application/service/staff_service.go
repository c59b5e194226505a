package service

import (
	"context"

	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/entity"
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/enum"
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/repository"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/apperror"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/pagination"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/utils"
	"github.com/google/uuid"
)

// StaffService handles staff account management
type StaffService struct {
	staffRepo repository.StaffRepository
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo repository.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

// CreateStaffInput represents the input for creating a staff account
type CreateStaffInput struct {
	DisplayName string
	Email       string
	Password    string
	Role        string
}

// CreateStaff creates a new staff account
func (s *StaffService) CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.Staff, error) {
	role := enum.StaffRole(input.Role)
	if !role.Valid() {
		return nil, apperror.NewBadRequestError("invalid role: " + input.Role)
	}

	existing, err := s.staffRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Staff with this email already exists")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	staff := &entity.Staff{
		DisplayName: input.DisplayName,
		Email:       input.Email,
		Password:    hashedPassword,
		Role:        role,
		Active:      true,
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// GetStaff retrieves a staff member by ID
func (s *StaffService) GetStaff(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff")
	}
	return staff, nil
}

// ListStaff retrieves staff accounts with pagination
func (s *StaffService) ListStaff(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Staff], error) {
	staff, total, err := s.staffRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(staff, pag), nil
}

// UpdateStaffInput represents the input for updating a staff account
type UpdateStaffInput struct {
	DisplayName *string
	Role        *string
	Active      *bool
}

// UpdateStaff updates a staff account
func (s *StaffService) UpdateStaff(ctx context.Context, id uuid.UUID, input *UpdateStaffInput) (*entity.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff")
	}

	if input.DisplayName != nil {
		staff.DisplayName = *input.DisplayName
	}
	if input.Role != nil {
		role := enum.StaffRole(*input.Role)
		if !role.Valid() {
			return nil, apperror.NewBadRequestError("invalid role: " + *input.Role)
		}
		staff.Role = role
	}
	if input.Active != nil {
		staff.Active = *input.Active
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// DeactivateStaff deactivates a staff account so it can no longer sign in
func (s *StaffService) DeactivateStaff(ctx context.Context, id uuid.UUID) error {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if staff == nil {
		return apperror.NewNotFoundError("Staff")
	}

	staff.Active = false
	return s.staffRepo.Update(ctx, staff)
}
