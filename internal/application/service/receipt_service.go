package service

import (
	"context"
	"fmt"

	"github.com/Ajoe62/Pharmjam-sub001/internal/config"
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/entity"
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/repository"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/apperror"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/printer"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReceiptService handles receipt formatting and thermal printing.
type ReceiptService struct {
	printer     printer.Printer
	saleRepo    repository.SaleRepository
	pharmacy    config.PharmacyConfig
	printerType string
	log         *zap.Logger
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(
	p printer.Printer,
	saleRepo repository.SaleRepository,
	pharmacy config.PharmacyConfig,
	printerType string,
	log *zap.Logger,
) *ReceiptService {
	return &ReceiptService{
		printer:     p,
		saleRepo:    saleRepo,
		pharmacy:    pharmacy,
		printerType: printerType,
		log:         log,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetPrinterStatus returns printer connection status.
func (s *ReceiptService) GetPrinterStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when the printer is disabled.
func (s *ReceiptService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			PharmacyName: "PRINTER TEST",
			Address:      "Test Address",
			Phone:        "+234 000 000 0000",
		},
		ReceiptNo: "TEST-001",
		Date:      "Test Date",
		Cashier:   "System",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		Total: 20.00,
		Paid:  20.00,
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// BuildReceipt composes a printable receipt from a sale without printing it.
func (s *ReceiptService) BuildReceipt(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return s.buildFromSale(sale), nil
}

// PrintSaleReceipt fetches a sale (with items) and prints its receipt.
func (s *ReceiptService) PrintSaleReceipt(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	receipt := s.buildFromSale(sale)

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		s.log.Error("printer error", zap.String("sale_id", saleID.String()), zap.Error(err))
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

func (s *ReceiptService) buildFromSale(sale *entity.Sale) *entity.Receipt {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			PharmacyName: s.pharmacy.Name,
			Address:      s.pharmacy.Address,
			Phone:        s.pharmacy.Phone,
			Email:        s.pharmacy.Email,
		},
		ReceiptNo:     sale.ReceiptNo,
		Date:          sale.SoldAt.Format("2006-01-02 15:04"),
		PaymentMethod: sale.PaymentMethod.Label(),
		Total:         float64(sale.Total) / 100,
		Paid:          float64(sale.Paid) / 100,
		Change:        float64(sale.Change) / 100,
	}

	if sale.Staff.DisplayName != "" {
		receipt.Cashier = sale.Staff.DisplayName
	}
	if sale.CustomerName != nil {
		receipt.Customer = *sale.CustomerName
	}

	for _, it := range sale.Items {
		item := entity.ReceiptItem{
			Quantity:  it.Quantity,
			UnitPrice: float64(it.UnitPrice) / 100,
			Total:     float64(it.Subtotal) / 100,
		}
		if it.Product.Name != "" {
			item.Name = it.Product.Name
		} else {
			item.Name = "Product"
		}
		receipt.Items = append(receipt.Items, item)
	}

	return receipt
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	t := printer.NewTicket(32) // 58mm paper = 32 chars

	// Header
	t.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.PharmacyName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		t.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		t.Text(r.Header.Phone)
	}
	if r.Header.Email != "" {
		t.Text(r.Header.Email)
	}

	t.SetAlign(printer.AlignLeft).
		Separator('-')

	// Receipt info
	t.KeyValue("Receipt:", r.ReceiptNo).
		KeyValue("Date:", r.Date)

	if r.Cashier != "" {
		t.KeyValue("Cashier:", r.Cashier)
	}
	if r.Customer != "" {
		t.KeyValue("Customer:", r.Customer)
	}
	if r.PaymentMethod != "" {
		t.KeyValue("Payment:", r.PaymentMethod)
	}

	t.Separator('-')

	// Items
	for _, item := range r.Items {
		t.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			t.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	t.Separator('-')

	// Totals
	t.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("NGN %.2f", r.Total)).
		SetBold(false)

	if r.Paid > 0 {
		t.KeyValue("Paid:", fmt.Sprintf("%.2f", r.Paid))
	}
	if r.Change > 0 {
		t.KeyValue("Change:", fmt.Sprintf("%.2f", r.Change))
	}

	t.Separator('-')

	// Footer
	t.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for your patronage!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	t.FeedLines(3).
		PartialCut()

	return t.Bytes()
}
