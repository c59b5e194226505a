package repository

import (
	"context"
	"time"

	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/entity"
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/enum"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// RestockRepository defines the interface for restock order data operations
type RestockRepository interface {
	Create(ctx context.Context, order *entity.RestockOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.RestockOrder, error)
	GetByReference(ctx context.Context, reference string) (*entity.RestockOrder, error)
	Update(ctx context.Context, order *entity.RestockOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *RestockFilterParams) ([]entity.RestockOrder, int64, error)
	// GetWithItems retrieves a restock order with its line items preloaded
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.RestockOrder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.RestockStatus) error
	GetPending(ctx context.Context, params *pagination.PaginationParams) ([]entity.RestockOrder, int64, error)
}

// RestockFilterParams contains filtering parameters for restock order queries
type RestockFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.RestockStatus
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
