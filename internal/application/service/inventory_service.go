package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/entity"
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/enum"
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/repository"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/apperror"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/pagination"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/utils"
	"github.com/google/uuid"
)

// InventoryService handles stock monitoring and restock orders
type InventoryService struct {
	productRepo repository.ProductRepository
	restockRepo repository.RestockRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	productRepo repository.ProductRepository,
	restockRepo repository.RestockRepository,
) *InventoryService {
	return &InventoryService{
		productRepo: productRepo,
		restockRepo: restockRepo,
	}
}

// GetLowStockProducts returns products at or below their reorder level
func (s *InventoryService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// GetExpiringProducts returns products expiring within the given number of days
func (s *InventoryService) GetExpiringProducts(ctx context.Context, days int) ([]entity.Product, error) {
	if days <= 0 {
		days = 90
	}
	return s.productRepo.GetExpiringBefore(ctx, days)
}

// RestockItemInput represents one product line on a restock order
type RestockItemInput struct {
	ProductID   uuid.UUID
	Quantity    int
	UnitCost    float64
	BatchNumber *string
	ExpiryDate  *time.Time
}

// CreateRestockInput represents the create restock order input
type CreateRestockInput struct {
	StaffID      uuid.UUID
	SupplierName string
	ExpectedAt   *time.Time
	Items        []RestockItemInput
}

// CreateRestockOrder raises a pending restock order against a supplier
func (s *InventoryService) CreateRestockOrder(ctx context.Context, input *CreateRestockInput) (*entity.RestockOrder, error) {
	if input.SupplierName == "" {
		return nil, apperror.NewBadRequestError("Supplier name is required")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A restock order requires at least one item")
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var totalCost int64
	items := make([]entity.RestockItem, 0, len(input.Items))
	for _, item := range input.Items {
		if _, exists := productMap[item.ProductID]; !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Restock quantities must be positive")
		}

		unitCostKobo := int64(item.UnitCost * 100)
		totalCost += unitCostKobo * int64(item.Quantity)

		items = append(items, entity.RestockItem{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			UnitCost:    unitCostKobo,
			BatchNumber: item.BatchNumber,
			ExpiryDate:  item.ExpiryDate,
		})
	}

	order := &entity.RestockOrder{
		StaffID:      input.StaffID,
		Reference:    utils.GenerateRestockRef(),
		SupplierName: input.SupplierName,
		Status:       enum.RestockStatusPending,
		OrderedAt:    time.Now(),
		ExpectedAt:   input.ExpectedAt,
		TotalCost:    totalCost,
		Items:        items,
	}

	if err := s.restockRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return s.restockRepo.GetWithItems(ctx, order.ID)
}

// GetRestockOrder retrieves a restock order with its items
func (s *InventoryService) GetRestockOrder(ctx context.Context, id uuid.UUID) (*entity.RestockOrder, error) {
	order, err := s.restockRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Restock order")
	}
	return order, nil
}

// ListRestockOrders lists restock orders with filtering
func (s *InventoryService) ListRestockOrders(ctx context.Context, params *repository.RestockFilterParams) (*pagination.PaginatedResult[entity.RestockOrder], error) {
	orders, total, err := s.restockRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// GetPendingRestockOrders returns restock orders awaiting delivery
func (s *InventoryService) GetPendingRestockOrders(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.RestockOrder], error) {
	orders, total, err := s.restockRepo.GetPending(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ReceiveRestockOrder marks a pending order as received and adds the
// delivered quantities to stock. Batch numbers and expiry dates on the
// order lines overwrite the product's current values.
func (s *InventoryService) ReceiveRestockOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.restockRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Restock order")
	}

	if order.Status == enum.RestockStatusReceived {
		return apperror.NewAppError(400, "Restock order is already received")
	}
	if order.Status == enum.RestockStatusCanceled {
		return apperror.NewAppError(400, "Cannot receive a canceled restock order")
	}

	stockIncrements := make(map[uuid.UUID]int)
	for _, item := range order.Items {
		stockIncrements[item.ProductID] += item.Quantity
	}

	// Atomically add delivered quantities to stock
	if err := s.productRepo.AtomicIncrementBatch(ctx, stockIncrements); err != nil {
		return err
	}

	// Carry batch and expiry information onto the products
	for _, item := range order.Items {
		if item.BatchNumber == nil && item.ExpiryDate == nil {
			continue
		}
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil || product == nil {
			continue
		}
		if item.BatchNumber != nil {
			product.BatchNumber = item.BatchNumber
		}
		if item.ExpiryDate != nil {
			product.ExpiryDate = item.ExpiryDate
		}
		if err := s.productRepo.Update(ctx, product); err != nil {
			return err
		}
	}

	now := time.Now()
	order.Status = enum.RestockStatusReceived
	order.ReceivedAt = &now
	return s.restockRepo.Update(ctx, order)
}

// CancelRestockOrder cancels a pending restock order
func (s *InventoryService) CancelRestockOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.restockRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Restock order")
	}

	if order.Status == enum.RestockStatusReceived {
		return apperror.NewAppError(400, "Cannot cancel a received restock order")
	}
	if order.Status == enum.RestockStatusCanceled {
		return apperror.NewAppError(400, "Restock order is already canceled")
	}

	return s.restockRepo.UpdateStatus(ctx, orderID, enum.RestockStatusCanceled)
}
