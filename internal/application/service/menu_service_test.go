package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/internal/domain/enum"
)

func float64Ptr(v float64) *float64 { return &v }

type menuFixture struct {
	svc         *MenuService
	menuItems   *fakeMenuItemRepo
	addOns      *fakeAddOnRepo
	ingredients *fakeIngredientRepo

	espresso *entity.Ingredient
	oatMilk  *entity.AddOn
}

func newMenuFixture(t *testing.T) *menuFixture {
	t.Helper()

	f := &menuFixture{}
	f.espresso = &entity.Ingredient{ID: uuid.New(), Name: "Espresso Beans", Quantity: 500_000, Unit: "g"}
	f.oatMilk = &entity.AddOn{ID: uuid.New(), Name: "Oat Milk", Price: 2000, Active: true}

	f.menuItems = newFakeMenuItemRepo()
	f.addOns = newFakeAddOnRepo(f.oatMilk)
	f.ingredients = newFakeIngredientRepo(f.espresso)
	f.svc = NewMenuService(f.menuItems, f.addOns, f.ingredients)
	return f
}

func TestCreateMenuItem_Drink(t *testing.T) {
	f := newMenuFixture(t)

	item, err := f.svc.CreateMenuItem(context.Background(), &CreateMenuItemInput{
		Name:      "Spanish Latte",
		Category:  enum.MenuCategoryDrinks,
		PriceOz12: float64Ptr(135),
		PriceOz16: float64Ptr(155),
		Recipe: []RecipeEntryInput{
			{IngredientID: f.espresso.ID, QtyPerUnit: 18, QtyOz16: float64Ptr(24)},
		},
		AddOnIDs: []uuid.UUID{f.oatMilk.ID},
	})
	if err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}

	if item.Slug != "spanish-latte" {
		t.Errorf("Slug = %q, want spanish-latte", item.Slug)
	}
	if item.PriceOz12 == nil || *item.PriceOz12 != 13500 {
		t.Errorf("PriceOz12 = %v, want 13500 cents", item.PriceOz12)
	}
	if item.Price != nil {
		t.Errorf("flat Price set on a drink: %v", item.Price)
	}
	if !item.Available {
		t.Error("new item should default to available")
	}
	if len(item.Recipe) != 1 {
		t.Fatalf("len(Recipe) = %d, want 1", len(item.Recipe))
	}
	if item.Recipe[0].QtyPerUnit != 18_000 {
		t.Errorf("QtyPerUnit = %d, want 18000 thousandths", item.Recipe[0].QtyPerUnit)
	}
	if item.Recipe[0].QtyOz16 == nil || *item.Recipe[0].QtyOz16 != 24_000 {
		t.Errorf("QtyOz16 = %v, want 24000 thousandths", item.Recipe[0].QtyOz16)
	}
	if len(item.AllowedAddOns) != 1 {
		t.Errorf("len(AllowedAddOns) = %d, want 1", len(item.AllowedAddOns))
	}
	// The recipe's ingredients are declared implicitly
	if len(item.Ingredients) != 1 || item.Ingredients[0].ID != f.espresso.ID {
		t.Errorf("Ingredients = %v, want the recipe's espresso", item.Ingredients)
	}
}

func TestCreateMenuItem_DeclaredIngredientsWithoutRecipe(t *testing.T) {
	f := newMenuFixture(t)

	item, err := f.svc.CreateMenuItem(context.Background(), &CreateMenuItemInput{
		Name:          "Affogato Cup",
		Category:      enum.MenuCategorySnacks,
		Price:         float64Ptr(110),
		IngredientIDs: []uuid.UUID{f.espresso.ID},
	})
	if err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}
	if len(item.Recipe) != 0 {
		t.Errorf("len(Recipe) = %d, want 0", len(item.Recipe))
	}
	if len(item.Ingredients) != 1 || item.Ingredients[0].ID != f.espresso.ID {
		t.Errorf("Ingredients = %v, want the declared espresso", item.Ingredients)
	}

	_, err = f.svc.CreateMenuItem(context.Background(), &CreateMenuItemInput{
		Name:          "Mystery Cup",
		Category:      enum.MenuCategorySnacks,
		Price:         float64Ptr(90),
		IngredientIDs: []uuid.UUID{uuid.New()},
	})
	if code := appErrCode(t, err); code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", code)
	}
}

func TestCreateMenuItem_PricingShape(t *testing.T) {
	f := newMenuFixture(t)

	tests := []struct {
		name  string
		input *CreateMenuItemInput
	}{
		{
			name: "drink missing a size price",
			input: &CreateMenuItemInput{
				Name:      "Americano",
				Category:  enum.MenuCategoryDrinks,
				PriceOz12: float64Ptr(95),
			},
		},
		{
			name: "snack missing flat price",
			input: &CreateMenuItemInput{
				Name:     "Banana Bread",
				Category: enum.MenuCategorySnacks,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateMenuItem(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected pricing shape error")
			}
			if code := appErrCode(t, err); code != http.StatusBadRequest {
				t.Errorf("code = %d, want 400", code)
			}
		})
	}
}

func TestCreateMenuItem_DuplicateName(t *testing.T) {
	f := newMenuFixture(t)

	input := &CreateMenuItemInput{
		Name:     "Tuna Sandwich",
		Category: enum.MenuCategoryMeals,
		Price:    float64Ptr(180),
	}
	if _, err := f.svc.CreateMenuItem(context.Background(), input); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := f.svc.CreateMenuItem(context.Background(), input)
	if code := appErrCode(t, err); code != http.StatusConflict {
		t.Errorf("code = %d, want 409", code)
	}
}

func TestCreateMenuItem_UnknownIngredient(t *testing.T) {
	f := newMenuFixture(t)

	_, err := f.svc.CreateMenuItem(context.Background(), &CreateMenuItemInput{
		Name:      "Mystery Brew",
		Category:  enum.MenuCategoryDrinks,
		PriceOz12: float64Ptr(100),
		PriceOz16: float64Ptr(120),
		Recipe:    []RecipeEntryInput{{IngredientID: uuid.New(), QtyPerUnit: 10}},
	})
	if code := appErrCode(t, err); code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", code)
	}
}

func TestUpdateMenuItem(t *testing.T) {
	f := newMenuFixture(t)

	item, err := f.svc.CreateMenuItem(context.Background(), &CreateMenuItemInput{
		Name:     "Tuna Sandwich",
		Category: enum.MenuCategoryMeals,
		Price:    float64Ptr(180),
		AddOnIDs: []uuid.UUID{f.oatMilk.ID},
	})
	if err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}

	name := "Tuna Melt"
	price := 195.0
	updated, err := f.svc.UpdateMenuItem(context.Background(), item.ID, &UpdateMenuItemInput{
		Name:  &name,
		Price: &price,
		// AddOnIDs nil leaves the allowed set unchanged
	})
	if err != nil {
		t.Fatalf("UpdateMenuItem: %v", err)
	}
	if updated.Name != "Tuna Melt" || updated.Slug != "tuna-melt" {
		t.Errorf("Name/Slug = %q/%q, want Tuna Melt/tuna-melt", updated.Name, updated.Slug)
	}
	if updated.Price == nil || *updated.Price != 19500 {
		t.Errorf("Price = %v, want 19500 cents", updated.Price)
	}
	if len(updated.AllowedAddOns) != 1 {
		t.Errorf("AllowedAddOns changed when input was nil: %d", len(updated.AllowedAddOns))
	}

	// Empty slice clears the allowed set
	cleared, err := f.svc.UpdateMenuItem(context.Background(), item.ID, &UpdateMenuItemInput{
		AddOnIDs: []uuid.UUID{},
	})
	if err != nil {
		t.Fatalf("UpdateMenuItem clear: %v", err)
	}
	if len(cleared.AllowedAddOns) != 0 {
		t.Errorf("AllowedAddOns = %d, want cleared", len(cleared.AllowedAddOns))
	}
}

func TestReplaceRecipe(t *testing.T) {
	f := newMenuFixture(t)

	item, err := f.svc.CreateMenuItem(context.Background(), &CreateMenuItemInput{
		Name:      "Americano",
		Category:  enum.MenuCategoryDrinks,
		PriceOz12: float64Ptr(95),
		PriceOz16: float64Ptr(110),
	})
	if err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}

	updated, err := f.svc.ReplaceRecipe(context.Background(), item.ID, []RecipeEntryInput{
		{IngredientID: f.espresso.ID, QtyPerUnit: 20},
	})
	if err != nil {
		t.Fatalf("ReplaceRecipe: %v", err)
	}
	if len(updated.Recipe) != 1 {
		t.Fatalf("len(Recipe) = %d, want 1", len(updated.Recipe))
	}
	if updated.Recipe[0].MenuItemID != item.ID {
		t.Errorf("MenuItemID = %s, want %s", updated.Recipe[0].MenuItemID, item.ID)
	}
	if updated.Recipe[0].QtyPerUnit != 20_000 {
		t.Errorf("QtyPerUnit = %d, want 20000", updated.Recipe[0].QtyPerUnit)
	}
	// The declared set follows the new recipe
	if len(updated.Ingredients) != 1 || updated.Ingredients[0].ID != f.espresso.ID {
		t.Errorf("Ingredients = %v, want extended to cover espresso", updated.Ingredients)
	}
}

func TestSetAvailability_NotFound(t *testing.T) {
	f := newMenuFixture(t)

	err := f.svc.SetAvailability(context.Background(), uuid.New(), false)
	if code := appErrCode(t, err); code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", code)
	}
}

func TestAddOnLifecycle(t *testing.T) {
	f := newMenuFixture(t)
	ctx := context.Background()

	addon, err := f.svc.CreateAddOn(ctx, &CreateAddOnInput{
		Name:     "Extra Shot",
		Price:    25,
		Category: enum.MenuCategoryDrinks,
	})
	if err != nil {
		t.Fatalf("CreateAddOn: %v", err)
	}
	if addon.Price != 2500 {
		t.Errorf("Price = %d, want 2500 cents", addon.Price)
	}
	if !addon.Active {
		t.Error("new add-on should default to active")
	}

	active := false
	updated, err := f.svc.UpdateAddOn(ctx, addon.ID, &UpdateAddOnInput{Active: &active})
	if err != nil {
		t.Fatalf("UpdateAddOn: %v", err)
	}
	if updated.Active {
		t.Error("Active should be false after update")
	}

	if err := f.svc.DeleteAddOn(ctx, addon.ID); err != nil {
		t.Fatalf("DeleteAddOn: %v", err)
	}
	if _, err := f.svc.GetAddOn(ctx, addon.ID); err == nil {
		t.Error("expected not found after delete")
	}
}
