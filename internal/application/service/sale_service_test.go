package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/entity"
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/enum"
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/repository"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductRepo struct {
	repository.ProductRepository
	products      map[uuid.UUID]entity.Product
	insufficient  []uuid.UUID
	decrements    map[uuid.UUID]int
	increments    map[uuid.UUID]int
	decrementErr  error
	incrementErr  error
}

func (s *stubProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) AtomicDecrementBatch(_ context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	if s.decrementErr != nil {
		return nil, s.decrementErr
	}
	if len(s.insufficient) > 0 {
		return s.insufficient, nil
	}
	if s.decrements == nil {
		s.decrements = make(map[uuid.UUID]int)
	}
	for id, qty := range decrements {
		s.decrements[id] += qty
	}
	return nil, nil
}

func (s *stubProductRepo) AtomicIncrementBatch(_ context.Context, increments map[uuid.UUID]int) error {
	if s.incrementErr != nil {
		return s.incrementErr
	}
	if s.increments == nil {
		s.increments = make(map[uuid.UUID]int)
	}
	for id, qty := range increments {
		s.increments[id] += qty
	}
	return nil
}

type stubSaleRepo struct {
	repository.SaleRepository
	created       *entity.Sale
	createErr     error
	withItems     *entity.Sale
	updatedStatus *enum.SaleStatus
}

func (s *stubSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if s.createErr != nil {
		return s.createErr
	}
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	s.created = sale
	return nil
}

func (s *stubSaleRepo) GetWithItems(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	if s.withItems != nil {
		return s.withItems, nil
	}
	if s.created != nil && s.created.ID == id {
		return s.created, nil
	}
	return nil, nil
}

func (s *stubSaleRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status enum.SaleStatus) error {
	s.updatedStatus = &status
	return nil
}

type stubSaleItemRepo struct {
	repository.SaleItemRepository
	batches  [][]entity.SaleItem
	batchErr error
}

func (s *stubSaleItemRepo) CreateBatch(_ context.Context, items []entity.SaleItem) error {
	if s.batchErr != nil {
		return s.batchErr
	}
	s.batches = append(s.batches, items)
	return nil
}

func twoProducts() (*stubProductRepo, uuid.UUID, uuid.UUID) {
	paraID := uuid.New()
	amoxID := uuid.New()
	repo := &stubProductRepo{
		products: map[uuid.UUID]entity.Product{
			paraID: {ID: paraID, Name: "Paracetamol 500mg", SellingPrice: 50000, Quantity: 100},
			amoxID: {ID: amoxID, Name: "Amoxicillin 250mg", SellingPrice: 120000, Quantity: 40},
		},
	}
	return repo, paraID, amoxID
}

func TestCheckout_HappyPath(t *testing.T) {
	productRepo, paraID, amoxID := twoProducts()
	saleRepo := &stubSaleRepo{}
	itemRepo := &stubSaleItemRepo{}
	svc := NewSaleService(saleRepo, itemRepo, productRepo)

	staffID := uuid.New()
	sale, err := svc.Checkout(context.Background(), &CheckoutInput{
		StaffID:       staffID,
		PaymentMethod: enum.PaymentCash,
		Paid:          3500,
		Items: []SaleItemInput{
			{ProductID: paraID, Quantity: 2},
			{ProductID: amoxID, Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, sale)

	// 2 x 500.00 + 2 x 1200.00 = 3400.00 naira, stored as kobo
	assert.Equal(t, int64(340000), sale.Total)
	assert.Equal(t, int64(350000), sale.Paid)
	assert.Equal(t, int64(10000), sale.Change)
	assert.Equal(t, 4, sale.TotalItems)
	assert.Equal(t, staffID, sale.StaffID)
	assert.Equal(t, enum.SaleStatusCompleted, sale.Status)
	assert.NotEmpty(t, sale.ReceiptNo)

	assert.Equal(t, 2, productRepo.decrements[paraID])
	assert.Equal(t, 2, productRepo.decrements[amoxID])

	require.Len(t, itemRepo.batches, 1)
	items := itemRepo.batches[0]
	require.Len(t, items, 2)
	assert.Equal(t, sale.ID, items[0].SaleID)
	assert.Equal(t, int64(50000), items[0].UnitPrice)
	assert.Equal(t, int64(100000), items[0].Subtotal)
}

func TestCheckout_UnknownProduct(t *testing.T) {
	productRepo, paraID, _ := twoProducts()
	svc := NewSaleService(&stubSaleRepo{}, &stubSaleItemRepo{}, productRepo)

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		StaffID:       uuid.New(),
		PaymentMethod: enum.PaymentCard,
		Paid:          1000,
		Items: []SaleItemInput{
			{ProductID: paraID, Quantity: 1},
			{ProductID: uuid.New(), Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
	assert.Empty(t, productRepo.decrements, "stock must not move for an invalid cart")
}

func TestCheckout_InvalidPaymentMethod(t *testing.T) {
	productRepo, paraID, _ := twoProducts()
	svc := NewSaleService(&stubSaleRepo{}, &stubSaleItemRepo{}, productRepo)

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		StaffID:       uuid.New(),
		PaymentMethod: "crypto",
		Paid:          500,
		Items:         []SaleItemInput{{ProductID: paraID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCheckout_EmptyCart(t *testing.T) {
	productRepo, _, _ := twoProducts()
	svc := NewSaleService(&stubSaleRepo{}, &stubSaleItemRepo{}, productRepo)

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		StaffID:       uuid.New(),
		PaymentMethod: enum.PaymentCash,
		Paid:          500,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCheckout_PaidBelowTotal(t *testing.T) {
	productRepo, paraID, _ := twoProducts()
	svc := NewSaleService(&stubSaleRepo{}, &stubSaleItemRepo{}, productRepo)

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		StaffID:       uuid.New(),
		PaymentMethod: enum.PaymentCash,
		Paid:          499.99,
		Items:         []SaleItemInput{{ProductID: paraID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Empty(t, productRepo.decrements, "stock must not move when payment is short")
}

func TestCheckout_InsufficientStockNamesProduct(t *testing.T) {
	productRepo, paraID, amoxID := twoProducts()
	productRepo.insufficient = []uuid.UUID{amoxID}
	svc := NewSaleService(&stubSaleRepo{}, &stubSaleItemRepo{}, productRepo)

	// 1 x 500.00 + 50 x 1,200.00 = 60,500.00 naira; paid covers it so the
	// failure has to come from the stock decrement, not the payment check
	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		StaffID:       uuid.New(),
		PaymentMethod: enum.PaymentTransfer,
		Paid:          61000,
		Items: []SaleItemInput{
			{ProductID: paraID, Quantity: 1},
			{ProductID: amoxID, Quantity: 50},
		},
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "Amoxicillin 250mg")
}

func TestCheckout_SaleCreateFailureRestoresStock(t *testing.T) {
	productRepo, paraID, _ := twoProducts()
	saleRepo := &stubSaleRepo{createErr: errors.New("connection reset")}
	svc := NewSaleService(saleRepo, &stubSaleItemRepo{}, productRepo)

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		StaffID:       uuid.New(),
		PaymentMethod: enum.PaymentCash,
		Paid:          1000,
		Items:         []SaleItemInput{{ProductID: paraID, Quantity: 2}},
	})
	require.Error(t, err)
	assert.Equal(t, 2, productRepo.decrements[paraID])
	assert.Equal(t, 2, productRepo.increments[paraID], "decremented stock must be restored")
}

func TestCheckout_ItemBatchFailureRestoresStock(t *testing.T) {
	productRepo, paraID, _ := twoProducts()
	itemRepo := &stubSaleItemRepo{batchErr: errors.New("constraint violation")}
	svc := NewSaleService(&stubSaleRepo{}, itemRepo, productRepo)

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		StaffID:       uuid.New(),
		PaymentMethod: enum.PaymentCash,
		Paid:          1000,
		Items:         []SaleItemInput{{ProductID: paraID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 1, productRepo.increments[paraID], "decremented stock must be restored")
}

func voidableSale(staffID uuid.UUID, productID uuid.UUID) *entity.Sale {
	return &entity.Sale{
		ID:      uuid.New(),
		StaffID: staffID,
		Status:  enum.SaleStatusCompleted,
		Items: []entity.SaleItem{
			{ProductID: productID, Quantity: 3},
		},
	}
}

func TestVoidSale_OwnerRestoresStock(t *testing.T) {
	productRepo, paraID, _ := twoProducts()
	staffID := uuid.New()
	sale := voidableSale(staffID, paraID)
	saleRepo := &stubSaleRepo{withItems: sale}
	svc := NewSaleService(saleRepo, &stubSaleItemRepo{}, productRepo)

	err := svc.VoidSale(context.Background(), staffID, sale.ID, false)
	require.NoError(t, err)

	assert.Equal(t, 3, productRepo.increments[paraID])
	require.NotNil(t, saleRepo.updatedStatus)
	assert.Equal(t, enum.SaleStatusVoided, *saleRepo.updatedStatus)
}

func TestVoidSale_NonOwnerForbidden(t *testing.T) {
	productRepo, paraID, _ := twoProducts()
	sale := voidableSale(uuid.New(), paraID)
	saleRepo := &stubSaleRepo{withItems: sale}
	svc := NewSaleService(saleRepo, &stubSaleItemRepo{}, productRepo)

	err := svc.VoidSale(context.Background(), uuid.New(), sale.ID, false)
	require.ErrorIs(t, err, apperror.ErrForbidden)
	assert.Empty(t, productRepo.increments)
	assert.Nil(t, saleRepo.updatedStatus)
}

func TestVoidSale_AdminOverridesOwnership(t *testing.T) {
	productRepo, paraID, _ := twoProducts()
	sale := voidableSale(uuid.New(), paraID)
	saleRepo := &stubSaleRepo{withItems: sale}
	svc := NewSaleService(saleRepo, &stubSaleItemRepo{}, productRepo)

	err := svc.VoidSale(context.Background(), uuid.New(), sale.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 3, productRepo.increments[paraID])
}

func TestVoidSale_AlreadyVoided(t *testing.T) {
	productRepo, paraID, _ := twoProducts()
	staffID := uuid.New()
	sale := voidableSale(staffID, paraID)
	sale.Status = enum.SaleStatusVoided
	saleRepo := &stubSaleRepo{withItems: sale}
	svc := NewSaleService(saleRepo, &stubSaleItemRepo{}, productRepo)

	err := svc.VoidSale(context.Background(), staffID, sale.ID, false)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Empty(t, productRepo.increments)
}

func TestVoidSale_NotFound(t *testing.T) {
	productRepo, _, _ := twoProducts()
	svc := NewSaleService(&stubSaleRepo{}, &stubSaleItemRepo{}, productRepo)

	err := svc.VoidSale(context.Background(), uuid.New(), uuid.New(), false)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
