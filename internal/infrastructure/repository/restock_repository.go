package repository

import (
	"context"
	"errors"

	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/entity"
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/enum"
	domainRepo "github.com/Ajoe62/Pharmjam-sub001/internal/domain/repository"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type restockRepository struct {
	db *gorm.DB
}

// NewRestockRepository creates a new restock repository
func NewRestockRepository(db *gorm.DB) domainRepo.RestockRepository {
	return &restockRepository{db: db}
}

func (r *restockRepository) Create(ctx context.Context, order *entity.RestockOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *restockRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.RestockOrder, error) {
	var order entity.RestockOrder
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *restockRepository) GetByReference(ctx context.Context, reference string) (*entity.RestockOrder, error) {
	var order entity.RestockOrder
	err := r.db.WithContext(ctx).First(&order, "reference = ?", reference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *restockRepository) Update(ctx context.Context, order *entity.RestockOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *restockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.RestockOrder{}, "id = ?", id).Error
}

func (r *restockRepository) List(ctx context.Context, params *domainRepo.RestockFilterParams) ([]entity.RestockOrder, int64, error) {
	var orders []entity.RestockOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.RestockOrder{})

	if params.Search != "" {
		query = query.Where("reference ILIKE ? OR supplier_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.StartDate != nil {
		query = query.Where("ordered_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("ordered_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder != "" && (params.SortOrder == "ASC" || params.SortOrder == "asc") {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Staff").
		Order(sortBy + " " + sortOrder).
		Find(&orders).Error

	return orders, total, err
}

func (r *restockRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.RestockOrder, error) {
	var order entity.RestockOrder
	err := r.db.WithContext(ctx).
		Preload("Staff").
		Preload("Items.Product").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *restockRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.RestockStatus) error {
	return r.db.WithContext(ctx).Model(&entity.RestockOrder{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *restockRepository) GetPending(ctx context.Context, params *pagination.PaginationParams) ([]entity.RestockOrder, int64, error) {
	var orders []entity.RestockOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.RestockOrder{}).
		Where("status = ?", enum.RestockStatusPending)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Staff").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}
