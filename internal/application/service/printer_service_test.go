package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/config"
	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/internal/domain/enum"
	"github.com/kapehan/pos-api/pkg/printer"
)

func newPrinterFixture(checkouts *fakeCheckoutRepo) *PrinterService {
	store := config.StoreConfig{
		Name:    "Kapehan sa Kanto",
		Address: "123 Mabini St, Quezon City",
		Phone:   "(02) 8123-4567",
		TaxID:   "123-456-789-000",
	}
	return NewPrinterService(printer.NewNullPrinter(), checkouts, store, "none", 32, nil)
}

func sampleCheckout() *entity.Checkout {
	size := enum.DrinkSize12oz
	name := "Maria Santos"
	ref := "GC-7231"
	return &entity.Checkout{
		ID:            uuid.New(),
		ReceiptNo:     42,
		UserID:        uuid.New(),
		User:          entity.User{ID: uuid.New(), FirstName: "Juan", LastName: "Dela Cruz"},
		CustomerName:  &name,
		Status:        enum.CheckoutStatusCompleted,
		OrderType:     enum.OrderTypeDineIn,
		PaymentMethod: enum.PaymentMethodGCash,
		SubTotal:      28000,
		Total:         25200,
		Tendered:      30000,
		Change:        4800,
		ReferenceID:   &ref,
		PointsEarned:  0,
		PointsSpent:   100,
		CreatedAt:     time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC),
		Items: []entity.CheckoutItem{
			{
				Name:      "Latte",
				Size:      &size,
				UnitPrice: 12000,
				Quantity:  2,
				SubTotal:  25200,
				AddOns: []entity.CheckoutItemAddOn{
					{Name: "Oat Milk", Price: 2000},
				},
			},
		},
	}
}

func TestBuildReceipt(t *testing.T) {
	svc := newPrinterFixture(newFakeCheckoutRepo())
	receipt := svc.BuildReceipt(sampleCheckout())

	if receipt.Header.StoreName != "Kapehan sa Kanto" {
		t.Errorf("StoreName = %q", receipt.Header.StoreName)
	}
	if receipt.ReceiptNo != 42 {
		t.Errorf("ReceiptNo = %d, want 42", receipt.ReceiptNo)
	}
	if receipt.Cashier != "Juan Dela Cruz" {
		t.Errorf("Cashier = %q, want Juan Dela Cruz", receipt.Cashier)
	}
	if receipt.Customer != "Maria Santos" {
		t.Errorf("Customer = %q, want snapshotted name", receipt.Customer)
	}
	if receipt.SubTotal != 280 || receipt.Total != 252 {
		t.Errorf("SubTotal/Total = %.2f/%.2f, want 280.00/252.00", receipt.SubTotal, receipt.Total)
	}
	// Discount is derived from the subtotal/total gap
	if receipt.Discount != 28 {
		t.Errorf("Discount = %.2f, want 28.00", receipt.Discount)
	}
	if receipt.PointsSpent != 100 {
		t.Errorf("PointsSpent = %d, want 100", receipt.PointsSpent)
	}
	if len(receipt.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(receipt.Items))
	}
	item := receipt.Items[0]
	if item.Size != "12oz" || item.Quantity != 2 || item.Total != 252 {
		t.Errorf("item = %+v", item)
	}
	if len(item.AddOns) != 1 || item.AddOns[0].Name != "Oat Milk" {
		t.Errorf("add-ons = %+v", item.AddOns)
	}
}

func TestFormatReceipt(t *testing.T) {
	svc := newPrinterFixture(newFakeCheckoutRepo())
	receipt := svc.BuildReceipt(sampleCheckout())

	out := string(svc.FormatReceipt(receipt))

	for _, want := range []string{
		"Kapehan sa Kanto",
		"TIN: 123-456-789-000",
		"000042", // zero-padded receipt number
		"2x Latte 12oz",
		"@ P120.00 each",
		"+ Oat Milk",
		"P20.00",
		"GC-7231",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("formatted receipt missing %q", want)
		}
	}
}

func TestPrintCheckoutReceipt(t *testing.T) {
	checkouts := newFakeCheckoutRepo()
	checkout := sampleCheckout()
	checkouts.Create(context.Background(), checkout)

	svc := newPrinterFixture(checkouts)

	receipt, err := svc.PrintCheckoutReceipt(context.Background(), checkout.ID)
	if err != nil {
		t.Fatalf("PrintCheckoutReceipt: %v", err)
	}
	if receipt.ReceiptNo != 42 {
		t.Errorf("ReceiptNo = %d, want 42", receipt.ReceiptNo)
	}

	if _, err := svc.PrintCheckoutReceipt(context.Background(), uuid.New()); err == nil {
		t.Error("expected not found for unknown checkout")
	}
}

func TestGetStatus(t *testing.T) {
	svc := newPrinterFixture(newFakeCheckoutRepo())
	status := svc.GetStatus()

	if status.Configured {
		t.Error("null printer should report not configured")
	}
	if status.Connected {
		t.Error("null printer should report not connected")
	}
	if status.Type != "none" {
		t.Errorf("Type = %q, want none", status.Type)
	}
}
