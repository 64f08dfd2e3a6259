package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/config"
	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/internal/domain/repository"
	"github.com/kapehan/pos-api/pkg/apperror"
	"github.com/kapehan/pos-api/pkg/metrics"
	"github.com/kapehan/pos-api/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer      printer.Printer
	checkoutRepo repository.CheckoutRepository
	store        config.StoreConfig
	printerType  string
	charWidth    int
	metrics      *metrics.ServerMetrics
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	checkoutRepo repository.CheckoutRepository,
	store config.StoreConfig,
	printerType string,
	charWidth int,
	m *metrics.ServerMetrics,
) *PrinterService {
	if charWidth <= 0 {
		charWidth = 32 // 58mm paper
	}
	return &PrinterService{
		printer:      p,
		checkoutRepo: checkoutRepo,
		store:        store,
		printerType:  printerType,
		charWidth:    charWidth,
		metrics:      m,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "PRINTER TEST",
			Address:   "Test Address",
			Phone:     "+63 900 000 0000",
		},
		ReceiptNo: 0,
		Date:      "Test Date",
		Cashier:   "System",
		OrderType: "dinein",
		Payment:   "cash",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		SubTotal: 20.00,
		Total:    20.00,
		Tendered: 20.00,
	}

	data := s.FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintCheckoutReceipt fetches a checkout (with items) and prints its receipt.
func (s *PrinterService) PrintCheckoutReceipt(ctx context.Context, checkoutID uuid.UUID) (*entity.Receipt, error) {
	checkout, err := s.checkoutRepo.GetWithItems(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	if checkout == nil {
		return nil, apperror.NewNotFoundError("Checkout")
	}

	receipt := s.BuildReceipt(checkout)

	data := s.FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (checkout %s): %v", checkoutID, err)
		if s.metrics != nil {
			s.metrics.ReceiptPrintFails.Inc()
		}
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	if s.metrics != nil {
		s.metrics.ReceiptsPrinted.Inc()
	}

	return receipt, nil
}

// BuildReceipt composes the printable receipt from a checkout aggregate.
func (s *PrinterService) BuildReceipt(checkout *entity.Checkout) *entity.Receipt {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: s.store.Name,
			Address:   s.store.Address,
			Phone:     s.store.Phone,
			TaxID:     s.store.TaxID,
		},
		ReceiptNo:    checkout.ReceiptNo,
		Date:         checkout.CreatedAt.Format("2006-01-02 15:04"),
		OrderType:    checkout.OrderType.String(),
		Payment:      checkout.PaymentMethod.String(),
		SubTotal:     float64(checkout.SubTotal) / 100,
		Discount:     float64(checkout.SubTotal-checkout.Total) / 100,
		Total:        float64(checkout.Total) / 100,
		Tendered:     float64(checkout.Tendered) / 100,
		Change:       float64(checkout.Change) / 100,
		PointsEarned: checkout.PointsEarned,
		PointsSpent:  checkout.PointsSpent,
	}

	if checkout.User.ID != uuid.Nil {
		receipt.Cashier = checkout.User.FullName()
	}
	if checkout.CustomerName != nil {
		receipt.Customer = *checkout.CustomerName
	} else if checkout.Customer != nil {
		receipt.Customer = checkout.Customer.Name
	}
	if checkout.ReferenceID != nil {
		receipt.ReferenceID = *checkout.ReferenceID
	}

	for _, li := range checkout.Items {
		item := entity.ReceiptItem{
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: float64(li.UnitPrice) / 100,
			Total:     float64(li.SubTotal) / 100,
		}
		if li.Size != nil {
			item.Size = li.Size.String()
		}
		for _, a := range li.AddOns {
			item.AddOns = append(item.AddOns, entity.ReceiptAddOn{
				Name:  a.Name,
				Price: float64(a.Price) / 100,
			})
		}
		receipt.Items = append(receipt.Items, item)
	}

	return receipt
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func (s *PrinterService) FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.charWidth)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.TaxID != "" {
		doc.TextF("TIN: %s", r.Header.TaxID)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Receipt info
	doc.KeyValue("Receipt #:", fmt.Sprintf("%06d", r.ReceiptNo)).
		KeyValue("Date:", r.Date)

	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	doc.KeyValue("Order:", r.OrderType).
		KeyValue("Payment:", r.Payment)
	if r.ReferenceID != "" {
		doc.KeyValue("Ref:", r.ReferenceID)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		name := item.Name
		if item.Size != "" {
			name = fmt.Sprintf("%s %s", item.Name, item.Size)
		}
		doc.ItemLine(item.Quantity, name, fmt.Sprintf("P%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ P%.2f each", item.UnitPrice)
		}
		for _, a := range item.AddOns {
			doc.IndentLine(a.Name, fmt.Sprintf("P%.2f", a.Price))
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("P%.2f", r.SubTotal))
	if r.Discount > 0 {
		doc.KeyValue("Discount:", fmt.Sprintf("-P%.2f", r.Discount))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("P%.2f", r.Total)).
		SetBold(false)

	doc.KeyValue("Tendered:", fmt.Sprintf("P%.2f", r.Tendered)).
		KeyValue("Change:", fmt.Sprintf("P%.2f", r.Change))

	if r.PointsSpent > 0 || r.PointsEarned > 0 {
		doc.Separator('-')
		if r.PointsSpent > 0 {
			doc.KeyValue("Points used:", fmt.Sprintf("%d", r.PointsSpent))
		}
		if r.PointsEarned > 0 {
			doc.KeyValue("Points earned:", fmt.Sprintf("%d", r.PointsEarned))
		}
	}

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Salamat po! Come again.").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
