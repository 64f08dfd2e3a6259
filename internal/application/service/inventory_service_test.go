package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/pkg/email"
)

func newInventoryService(alertEmail string, ingredients ...*entity.Ingredient) (*InventoryService, *fakeIngredientRepo) {
	repo := newFakeIngredientRepo(ingredients...)
	return NewInventoryService(repo, email.NewEmailService(email.EmailConfig{}), alertEmail), repo
}

func TestCreateIngredient(t *testing.T) {
	svc, _ := newInventoryService("")
	ctx := context.Background()

	ingredient, err := svc.CreateIngredient(ctx, &CreateIngredientInput{
		Name:              "Espresso Beans",
		Quantity:          2.5,
		Unit:              "kg",
		Price:             850,
		LowStockThreshold: 0.5,
	})
	if err != nil {
		t.Fatalf("CreateIngredient: %v", err)
	}
	if ingredient.Quantity != 2500 {
		t.Errorf("Quantity = %d, want 2500 thousandths", ingredient.Quantity)
	}
	if ingredient.Price != 85000 {
		t.Errorf("Price = %d, want 85000 cents", ingredient.Price)
	}
	if ingredient.LowStockThreshold != 500 {
		t.Errorf("LowStockThreshold = %d, want 500 thousandths", ingredient.LowStockThreshold)
	}

	// Duplicate names collide case-insensitively
	_, err = svc.CreateIngredient(ctx, &CreateIngredientInput{Name: "espresso beans", Unit: "kg"})
	if code := appErrCode(t, err); code != http.StatusConflict {
		t.Errorf("code = %d, want 409", code)
	}
}

func TestUpdateIngredient_NeverTouchesStock(t *testing.T) {
	beans := &entity.Ingredient{Name: "Espresso Beans", Quantity: 2500, Unit: "kg"}
	svc, repo := newInventoryService("", beans)

	price := 900.0
	updated, err := svc.UpdateIngredient(context.Background(), beans.ID, &UpdateIngredientInput{
		Price: &price,
	})
	if err != nil {
		t.Fatalf("UpdateIngredient: %v", err)
	}
	if updated.Price != 90000 {
		t.Errorf("Price = %d, want 90000 cents", updated.Price)
	}
	if got := repo.quantity(beans.ID); got != 2500 {
		t.Errorf("Quantity = %d, want untouched 2500", got)
	}
}

func TestAdjustStock(t *testing.T) {
	beans := &entity.Ingredient{Name: "Espresso Beans", Quantity: 2500, Unit: "kg"}
	svc, repo := newInventoryService("", beans)
	ctx := context.Background()

	updated, err := svc.AdjustStock(ctx, beans.ID, 1.5)
	if err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}
	if updated.Quantity != 4000 {
		t.Errorf("Quantity = %d, want 4000 thousandths", updated.Quantity)
	}

	updated, err = svc.AdjustStock(ctx, beans.ID, -3.0)
	if err != nil {
		t.Fatalf("AdjustStock down: %v", err)
	}
	if updated.Quantity != 1000 {
		t.Errorf("Quantity = %d, want 1000 thousandths", updated.Quantity)
	}

	// Corrections can never take stock below zero
	_, err = svc.AdjustStock(ctx, beans.ID, -1.5)
	if code := appErrCode(t, err); code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
	if got := repo.quantity(beans.ID); got != 1000 {
		t.Errorf("Quantity = %d, want unchanged 1000", got)
	}
}

func TestGetLowStock(t *testing.T) {
	low := &entity.Ingredient{Name: "Fresh Milk", Quantity: 400, LowStockThreshold: 500, Unit: "l"}
	fine := &entity.Ingredient{Name: "Sugar", Quantity: 9000, LowStockThreshold: 1000, Unit: "kg"}
	unwatched := &entity.Ingredient{Name: "Napkins", Quantity: 0, LowStockThreshold: 0, Unit: "pc"}
	svc, _ := newInventoryService("", low, fine, unwatched)

	items, err := svc.GetLowStock(context.Background())
	if err != nil {
		t.Fatalf("GetLowStock: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Fresh Milk" {
		t.Errorf("low stock = %+v, want only Fresh Milk", items)
	}
}

func TestSendLowStockAlert(t *testing.T) {
	t.Run("no recipient configured", func(t *testing.T) {
		low := &entity.Ingredient{Name: "Fresh Milk", Quantity: 400, LowStockThreshold: 500, Unit: "l"}
		svc, _ := newInventoryService("", low)

		_, err := svc.SendLowStockAlert(context.Background())
		if code := appErrCode(t, err); code != http.StatusBadRequest {
			t.Errorf("code = %d, want 400", code)
		}
	})

	t.Run("nothing low is a no-op", func(t *testing.T) {
		fine := &entity.Ingredient{Name: "Sugar", Quantity: 9000, LowStockThreshold: 1000, Unit: "kg"}
		svc, _ := newInventoryService("alerts@kapehan.ph", fine)

		sent, err := svc.SendLowStockAlert(context.Background())
		if err != nil {
			t.Fatalf("SendLowStockAlert: %v", err)
		}
		if sent != 0 {
			t.Errorf("sent = %d, want 0", sent)
		}
	})
}
