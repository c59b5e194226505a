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

// SaleService handles checkout and sale history operations
type SaleService struct {
	saleRepo     repository.SaleRepository
	saleItemRepo repository.SaleItemRepository
	productRepo  repository.ProductRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	saleItemRepo repository.SaleItemRepository,
	productRepo repository.ProductRepository,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		saleItemRepo: saleItemRepo,
		productRepo:  productRepo,
	}
}

// SaleItemInput represents one line in a checkout request
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CheckoutInput represents the checkout request
type CheckoutInput struct {
	StaffID       uuid.UUID
	PaymentMethod enum.PaymentMethod
	CustomerName  *string
	Paid          float64
	Items         []SaleItemInput
}

// Checkout creates a sale with its line items, decrementing stock atomically
func (s *SaleService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.Sale, error) {
	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Invalid payment method: %s", input.PaymentMethod))
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A sale requires at least one item")
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

	// Validate all products exist and calculate the total in kobo
	var total int64
	var totalItems int
	saleItems := make([]entity.SaleItem, 0, len(input.Items))
	stockDecrements := make(map[uuid.UUID]int)

	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Invalid quantity for %s", product.Name))
		}

		itemTotal := product.SellingPrice * int64(item.Quantity)
		total += itemTotal
		totalItems += item.Quantity

		saleItems = append(saleItems, entity.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.SellingPrice,
			Subtotal:  itemTotal,
		})

		stockDecrements[product.ID] += item.Quantity
	}

	paidKobo := int64(input.Paid * 100)
	if paidKobo < total {
		return nil, apperror.NewBadRequestError("Amount paid is less than the sale total")
	}

	// Atomically decrement stock - this is race-condition safe.
	// If any product has insufficient stock, the entire operation fails.
	failedIDs, err := s.productRepo.AtomicDecrementBatch(ctx, stockDecrements)
	if err != nil {
		return nil, err
	}

	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			if product, exists := productMap[id]; exists {
				failedNames = append(failedNames, product.Name)
			}
		}
		return nil, apperror.NewAppError(400, fmt.Sprintf("Insufficient stock for: %v", failedNames))
	}

	now := time.Now()
	sale := &entity.Sale{
		StaffID:       input.StaffID,
		ReceiptNo:     utils.GenerateReceiptNo(now),
		SoldAt:        now,
		Status:        enum.SaleStatusCompleted,
		PaymentMethod: input.PaymentMethod,
		CustomerName:  input.CustomerName,
		TotalItems:    totalItems,
		Total:         total,
		Paid:          paidKobo,
		Change:        paidKobo - total,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		// Stock was already decremented - restore it
		_ = s.productRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	for i := range saleItems {
		saleItems[i].SaleID = sale.ID
	}

	if err := s.saleItemRepo.CreateBatch(ctx, saleItems); err != nil {
		// Restore stock on failure
		_ = s.productRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	return s.saleRepo.GetWithItems(ctx, sale.ID)
}

// GetSale retrieves a sale with its line items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// GetSaleByReceiptNo retrieves a sale by its receipt number
func (s *SaleService) GetSaleByReceiptNo(ctx context.Context, receiptNo string) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByReceiptNo(ctx, receiptNo)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return s.saleRepo.GetWithItems(ctx, sale.ID)
}

// ListSales lists sales with filtering
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// ListSalesWithCursor lists sales with cursor-based pagination
func (s *SaleService) ListSalesWithCursor(ctx context.Context, params *repository.SaleCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Sale], error) {
	sales, err := s.saleRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(sales, params.Cursor.Limit,
		func(sa entity.Sale) string { return sa.ID.String() },
		func(sa entity.Sale) time.Time { return sa.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// VoidSale voids a completed sale and restores stock
func (s *SaleService) VoidSale(ctx context.Context, staffID, saleID uuid.UUID, isAdmin bool) error {
	sale, err := s.saleRepo.GetWithItems(ctx, saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}

	if !isAdmin && sale.StaffID != staffID {
		return apperror.ErrForbidden
	}

	if sale.Status == enum.SaleStatusVoided {
		return apperror.NewAppError(400, "Sale is already voided")
	}

	// Build increment map for stock restoration
	stockIncrements := make(map[uuid.UUID]int)
	for _, item := range sale.Items {
		stockIncrements[item.ProductID] += item.Quantity
	}

	// Atomically restore stock
	if err := s.productRepo.AtomicIncrementBatch(ctx, stockIncrements); err != nil {
		return err
	}

	return s.saleRepo.UpdateStatus(ctx, saleID, enum.SaleStatusVoided)
}
