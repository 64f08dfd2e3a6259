package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/config"
	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/internal/domain/enum"
	"github.com/kapehan/pos-api/pkg/apperror"
)

func int64Ptr(v int64) *int64                  { return &v }
func sizePtr(s enum.DrinkSize) *enum.DrinkSize { return &s }

type checkoutFixture struct {
	svc         *CheckoutService
	checkouts   *fakeCheckoutRepo
	menuItems   *fakeMenuItemRepo
	addOns      *fakeAddOnRepo
	ingredients *fakeIngredientRepo
	customers   *fakeCustomerRepo
	counter     *fakeCounterRepo

	espresso *entity.Ingredient
	milk     *entity.Ingredient
	latte    *entity.MenuItem
	cookie   *entity.MenuItem
	oatMilk  *entity.AddOn
	customer *entity.Customer
	userID   uuid.UUID
}

// newCheckoutFixture builds a small catalog: a latte priced 120.00 for
// 12oz and 140.00 for 16oz consuming espresso and milk, a flat-priced
// cookie with no recipe, and an oat milk add-on at 20.00.
func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{userID: uuid.New()}

	f.espresso = &entity.Ingredient{
		ID:       uuid.New(),
		Name:     "Espresso Beans",
		Quantity: 1_000_000, // 1000 g
		Unit:     "g",
	}
	f.milk = &entity.Ingredient{
		ID:       uuid.New(),
		Name:     "Fresh Milk",
		Quantity: 5_000_000, // 5000 ml
		Unit:     "ml",
	}

	f.oatMilk = &entity.AddOn{
		ID:     uuid.New(),
		Name:   "Oat Milk",
		Price:  2000,
		Active: true,
	}

	f.latte = &entity.MenuItem{
		ID:        uuid.New(),
		Name:      "Latte",
		Slug:      "latte",
		Category:  enum.MenuCategoryDrinks,
		PriceOz12: int64Ptr(12000),
		PriceOz16: int64Ptr(14000),
		Available: true,
		Recipe: []entity.RecipeEntry{
			{IngredientID: f.espresso.ID, QtyPerUnit: 18_000},
			{IngredientID: f.milk.ID, QtyPerUnit: 150_000, QtyOz12: int64Ptr(200_000), QtyOz16: int64Ptr(300_000)},
		},
	}
	f.cookie = &entity.MenuItem{
		ID:        uuid.New(),
		Name:      "Chocolate Cookie",
		Slug:      "chocolate-cookie",
		Category:  enum.MenuCategorySnacks,
		Price:     int64Ptr(6500),
		Available: true,
	}

	f.customer = &entity.Customer{
		ID:   uuid.New(),
		Name: "Maria Santos",
	}

	f.checkouts = newFakeCheckoutRepo()
	f.menuItems = newFakeMenuItemRepo(f.latte, f.cookie)
	f.addOns = newFakeAddOnRepo(f.oatMilk)
	f.ingredients = newFakeIngredientRepo(f.espresso, f.milk)
	f.customers = newFakeCustomerRepo(f.customer)
	f.counter = newFakeCounterRepo()

	tx := &fakeTxManager{stores: []snapshotter{f.ingredients, f.customers, f.counter, f.checkouts}}

	f.svc = NewCheckoutService(
		f.checkouts,
		f.menuItems,
		f.addOns,
		f.ingredients,
		f.customers,
		f.counter,
		tx,
		config.LoyaltyConfig{RedeemThreshold: 100, EarnDivisor: 1000},
		nil,
	)
	return f
}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func TestCreateCheckout_PricesCartAndCommits(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	checkout, err := f.svc.CreateCheckout(ctx, &CreateCheckoutInput{
		UserID:        f.userID,
		CustomerID:    &f.customer.ID,
		OrderType:     enum.OrderTypeDineIn,
		PaymentMethod: enum.PaymentMethodCash,
		Tendered:      300,
		Items: []CheckoutItemInput{
			{MenuItemID: f.latte.ID, Quantity: 2, Size: sizePtr(enum.DrinkSize12oz), AddOnIDs: []uuid.UUID{f.oatMilk.ID}},
		},
	})
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}

	// 2 x (120.00 + 20.00 oat milk) = 280.00
	if checkout.SubTotal != 28000 {
		t.Errorf("SubTotal = %d, want 28000", checkout.SubTotal)
	}
	if checkout.Total != 28000 {
		t.Errorf("Total = %d, want 28000", checkout.Total)
	}
	if checkout.Change != 2000 {
		t.Errorf("Change = %d, want 2000", checkout.Change)
	}
	if checkout.Status != enum.CheckoutStatusCompleted {
		t.Errorf("Status = %s, want completed", checkout.Status)
	}
	if checkout.ReceiptNo != 1 {
		t.Errorf("ReceiptNo = %d, want 1", checkout.ReceiptNo)
	}
	if checkout.PointsEarned != 28 {
		t.Errorf("PointsEarned = %d, want 28", checkout.PointsEarned)
	}
	if checkout.CustomerName == nil || *checkout.CustomerName != "Maria Santos" {
		t.Errorf("CustomerName not snapshotted: %v", checkout.CustomerName)
	}
	if len(checkout.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(checkout.Items))
	}
	line := checkout.Items[0]
	if line.Name != "Latte" || line.UnitPrice != 12000 || line.SubTotal != 28000 {
		t.Errorf("line snapshot = %q/%d/%d, want Latte/12000/28000", line.Name, line.UnitPrice, line.SubTotal)
	}
	if len(line.AddOns) != 1 || line.AddOns[0].Price != 2000 {
		t.Errorf("add-on snapshot missing: %+v", line.AddOns)
	}

	// Recipe consumption: 2 x 18g espresso, 2 x 200ml milk (12oz override)
	if got := f.ingredients.quantity(f.espresso.ID); got != 1_000_000-36_000 {
		t.Errorf("espresso stock = %d, want %d", got, 1_000_000-36_000)
	}
	if got := f.ingredients.quantity(f.milk.ID); got != 5_000_000-400_000 {
		t.Errorf("milk stock = %d, want %d", got, 5_000_000-400_000)
	}

	// Points accrue on the post-discount total
	if got := f.customers.points(f.customer.ID); got != 28 {
		t.Errorf("customer points = %d, want 28", got)
	}
}

func TestCreateCheckout_SizeOverrideOnRecipe(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		OrderType:     enum.OrderTypeTakeout,
		PaymentMethod: enum.PaymentMethodCash,
		Tendered:      140,
		Items: []CheckoutItemInput{
			{MenuItemID: f.latte.ID, Quantity: 1, Size: sizePtr(enum.DrinkSize16oz)},
		},
	})
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}

	// 16oz consumes the per-size milk override, not the flat quantity
	if got := f.ingredients.quantity(f.milk.ID); got != 5_000_000-300_000 {
		t.Errorf("milk stock = %d, want %d", got, 5_000_000-300_000)
	}
}

func TestCreateCheckout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		PaymentMethod: enum.PaymentMethodCash,
	})
	if !errors.Is(err, apperror.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCreateCheckout_RejectsBadLines(t *testing.T) {
	f := newCheckoutFixture(t)
	f.cookie.Available = false

	inactive := &entity.AddOn{ID: uuid.New(), Name: "Discontinued Syrup", Price: 1500, Active: false}
	f.addOns.Create(context.Background(), inactive)

	tests := []struct {
		name     string
		items    []CheckoutItemInput
		wantCode int
	}{
		{
			name:     "unknown menu item",
			items:    []CheckoutItemInput{{MenuItemID: uuid.New(), Quantity: 1}},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "unavailable item",
			items:    []CheckoutItemInput{{MenuItemID: f.cookie.ID, Quantity: 1}},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "drink without size",
			items:    []CheckoutItemInput{{MenuItemID: f.latte.ID, Quantity: 1}},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown add-on",
			items: []CheckoutItemInput{
				{MenuItemID: f.latte.ID, Quantity: 1, Size: sizePtr(enum.DrinkSize12oz), AddOnIDs: []uuid.UUID{uuid.New()}},
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "inactive add-on",
			items: []CheckoutItemInput{
				{MenuItemID: f.latte.ID, Quantity: 1, Size: sizePtr(enum.DrinkSize12oz), AddOnIDs: []uuid.UUID{inactive.ID}},
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
				UserID:        f.userID,
				PaymentMethod: enum.PaymentMethodCash,
				Items:         tt.items,
			})
			if err == nil {
				t.Fatal("expected error")
			}
			if code := appErrCode(t, err); code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
		})
	}

	// A rejected cart never consumes stock or a receipt number
	if got := f.ingredients.quantity(f.espresso.ID); got != 1_000_000 {
		t.Errorf("espresso stock = %d, want untouched 1000000", got)
	}
	if f.checkouts.count() != 0 {
		t.Errorf("checkout count = %d, want 0", f.checkouts.count())
	}
}

func TestCreateCheckout_AddOnNotOffered(t *testing.T) {
	f := newCheckoutFixture(t)

	pearls := &entity.AddOn{ID: uuid.New(), Name: "Pearls", Price: 1500, Active: true}
	f.addOns.Create(context.Background(), pearls)
	// Latte explicitly allows only oat milk
	f.latte.AllowedAddOns = []entity.AddOn{*f.oatMilk}

	_, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		PaymentMethod: enum.PaymentMethodCash,
		Items: []CheckoutItemInput{
			{MenuItemID: f.latte.ID, Quantity: 1, Size: sizePtr(enum.DrinkSize12oz), AddOnIDs: []uuid.UUID{pearls.ID}},
		},
	})
	if err == nil {
		t.Fatal("expected error for add-on outside the allowed set")
	}
	if code := appErrCode(t, err); code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
}

func TestCreateCheckout_QuantityClampsToOne(t *testing.T) {
	f := newCheckoutFixture(t)

	checkout, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		PaymentMethod: enum.PaymentMethodCash,
		Tendered:      65,
		Items:         []CheckoutItemInput{{MenuItemID: f.cookie.ID, Quantity: 0}},
	})
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}
	if checkout.Items[0].Quantity != 1 {
		t.Errorf("Quantity = %d, want clamped to 1", checkout.Items[0].Quantity)
	}
	if checkout.Total != 6500 {
		t.Errorf("Total = %d, want 6500", checkout.Total)
	}
}

func TestCreateCheckout_EmptyRecipeFallsBackToDeclaredIngredients(t *testing.T) {
	f := newCheckoutFixture(t)
	f.latte.Recipe = nil
	f.latte.Ingredients = []entity.Ingredient{*f.espresso, *f.milk}

	_, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		PaymentMethod: enum.PaymentMethodCash,
		Tendered:      240,
		Items: []CheckoutItemInput{
			{MenuItemID: f.latte.ID, Quantity: 2, Size: sizePtr(enum.DrinkSize12oz)},
		},
	})
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}

	// 1.000 of each declared ingredient per item unit
	if got := f.ingredients.quantity(f.espresso.ID); got != 1_000_000-2*entity.QtyScale {
		t.Errorf("espresso stock = %d, want %d", got, 1_000_000-2*entity.QtyScale)
	}
	if got := f.ingredients.quantity(f.milk.ID); got != 5_000_000-2*entity.QtyScale {
		t.Errorf("milk stock = %d, want %d", got, 5_000_000-2*entity.QtyScale)
	}
}

func TestCreateCheckout_NoRecipeNoIngredientsConsumesNothing(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		PaymentMethod: enum.PaymentMethodCash,
		Tendered:      65,
		Items:         []CheckoutItemInput{{MenuItemID: f.cookie.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}
	if got := f.ingredients.quantity(f.espresso.ID); got != 1_000_000 {
		t.Errorf("espresso stock = %d, want untouched", got)
	}
	if got := f.ingredients.quantity(f.milk.ID); got != 5_000_000 {
		t.Errorf("milk stock = %d, want untouched", got)
	}
}

func TestCreateCheckout_InsufficientStockRollsBack(t *testing.T) {
	f := newCheckoutFixture(t)
	f.milk.Quantity = 100_000 // only 100 ml left, a 12oz latte needs 200

	_, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		PaymentMethod: enum.PaymentMethodCash,
		Tendered:      120,
		Items: []CheckoutItemInput{
			{MenuItemID: f.latte.ID, Quantity: 1, Size: sizePtr(enum.DrinkSize12oz)},
		},
	})
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}
	if code := appErrCode(t, err); code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}

	// Everything rolls back: espresso decrement, receipt number, checkout row
	if got := f.ingredients.quantity(f.espresso.ID); got != 1_000_000 {
		t.Errorf("espresso stock = %d, want rolled back to 1000000", got)
	}
	if f.checkouts.count() != 0 {
		t.Errorf("checkout count = %d, want 0", f.checkouts.count())
	}

	// The released receipt number is reused by the next checkout
	checkout, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		PaymentMethod: enum.PaymentMethodCash,
		Tendered:      65,
		Items:         []CheckoutItemInput{{MenuItemID: f.cookie.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateCheckout after rollback: %v", err)
	}
	if checkout.ReceiptNo != 1 {
		t.Errorf("ReceiptNo = %d, want gap-free 1", checkout.ReceiptNo)
	}
}

func TestCreateCheckout_ReceiptNumbersAreSequential(t *testing.T) {
	f := newCheckoutFixture(t)

	for want := int64(1); want <= 3; want++ {
		checkout, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
			UserID:        f.userID,
			PaymentMethod: enum.PaymentMethodCash,
			Tendered:      65,
			Items:         []CheckoutItemInput{{MenuItemID: f.cookie.ID, Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("CreateCheckout #%d: %v", want, err)
		}
		if checkout.ReceiptNo != want {
			t.Errorf("ReceiptNo = %d, want %d", checkout.ReceiptNo, want)
		}
	}
}

func TestCreateCheckout_RedeemsOneDrinkFree(t *testing.T) {
	f := newCheckoutFixture(t)
	f.customer.LoyaltyPoints = 150

	checkout, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		CustomerID:    &f.customer.ID,
		PaymentMethod: enum.PaymentMethodCash,
		Tendered:      0,
		RedeemPoints:  true,
		Items: []CheckoutItemInput{
			{MenuItemID: f.latte.ID, Quantity: 1, Size: sizePtr(enum.DrinkSize12oz)},
		},
	})
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}

	// The sole drink is free: the discount equals its unit price
	if checkout.Items[0].LineDiscount != 12000 {
		t.Errorf("LineDiscount = %d, want 12000", checkout.Items[0].LineDiscount)
	}
	if checkout.SubTotal != 12000 {
		t.Errorf("SubTotal = %d, want pre-discount 12000", checkout.SubTotal)
	}
	if checkout.Total != 0 {
		t.Errorf("Total = %d, want 0", checkout.Total)
	}
	if checkout.PointsSpent != 100 {
		t.Errorf("PointsSpent = %d, want 100", checkout.PointsSpent)
	}
	if checkout.PointsEarned != 0 {
		t.Errorf("PointsEarned = %d, want 0 on a redeeming receipt", checkout.PointsEarned)
	}
	if got := f.customers.points(f.customer.ID); got != 50 {
		t.Errorf("customer points = %d, want 50", got)
	}
}

func TestCreateCheckout_RedemptionSpreadsAcrossQuantity(t *testing.T) {
	f := newCheckoutFixture(t)
	f.customer.LoyaltyPoints = 150

	checkout, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		CustomerID:    &f.customer.ID,
		PaymentMethod: enum.PaymentMethodCash,
		Tendered:      300,
		RedeemPoints:  true,
		Items: []CheckoutItemInput{
			{MenuItemID: f.latte.ID, Quantity: 2, Size: sizePtr(enum.DrinkSize12oz), AddOnIDs: []uuid.UUID{f.oatMilk.ID}},
		},
	})
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}

	// One unit's base price (120.00) spread over two units
	if checkout.Items[0].LineDiscount != 6000 {
		t.Errorf("LineDiscount = %d, want 6000 per unit", checkout.Items[0].LineDiscount)
	}
	if checkout.SubTotal != 28000 {
		t.Errorf("SubTotal = %d, want pre-discount 28000", checkout.SubTotal)
	}
	if checkout.Total != 16000 {
		t.Errorf("Total = %d, want 16000", checkout.Total)
	}
	if checkout.Items[0].SubTotal != 16000 {
		t.Errorf("line SubTotal = %d, want discounted 16000", checkout.Items[0].SubTotal)
	}
	if checkout.PointsSpent != 100 {
		t.Errorf("PointsSpent = %d, want 100", checkout.PointsSpent)
	}
	if got := f.customers.points(f.customer.ID); got != 50 {
		t.Errorf("customer points = %d, want 50", got)
	}
}

func TestCreateCheckout_IneligibleRedemptionIsSkipped(t *testing.T) {
	latteLine := CheckoutItemInput{MenuItemID: uuid.Nil, Quantity: 1, Size: sizePtr(enum.DrinkSize12oz)}

	tests := []struct {
		name   string
		points int
		items  func(f *checkoutFixture) []CheckoutItemInput
	}{
		{
			name:   "below the point threshold",
			points: 40,
			items: func(f *checkoutFixture) []CheckoutItemInput {
				l := latteLine
				l.MenuItemID = f.latte.ID
				return []CheckoutItemInput{l}
			},
		},
		{
			name:   "sole line is not a drink",
			points: 150,
			items: func(f *checkoutFixture) []CheckoutItemInput {
				return []CheckoutItemInput{{MenuItemID: f.cookie.ID, Quantity: 1}}
			},
		},
		{
			name:   "more than one line",
			points: 150,
			items: func(f *checkoutFixture) []CheckoutItemInput {
				l := latteLine
				l.MenuItemID = f.latte.ID
				return []CheckoutItemInput{l, {MenuItemID: f.cookie.ID, Quantity: 1}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture(t)
			f.customer.LoyaltyPoints = tt.points

			checkout, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
				UserID:        f.userID,
				CustomerID:    &f.customer.ID,
				PaymentMethod: enum.PaymentMethodCash,
				Tendered:      300,
				RedeemPoints:  true,
				Items:         tt.items(f),
			})
			if err != nil {
				t.Fatalf("CreateCheckout: %v", err)
			}
			if checkout.Total != checkout.SubTotal {
				t.Errorf("Total = %d, want undiscounted %d", checkout.Total, checkout.SubTotal)
			}
			if checkout.PointsSpent != 0 {
				t.Errorf("PointsSpent = %d, want 0", checkout.PointsSpent)
			}
			// A skipped redemption falls back to earning
			want := int(checkout.Total / 1000)
			if checkout.PointsEarned != want {
				t.Errorf("PointsEarned = %d, want %d", checkout.PointsEarned, want)
			}
			if got := f.customers.points(f.customer.ID); got != tt.points+want {
				t.Errorf("customer points = %d, want %d", got, tt.points+want)
			}
		})
	}
}

func TestCreateCheckout_ConcurrentSpendConflicts(t *testing.T) {
	f := newCheckoutFixture(t)
	f.customer.LoyaltyPoints = 120

	// Another terminal spends the points between the eligibility read
	// and the transactional debit.
	drained := false
	f.customers.beforeApply = func() {
		if !drained {
			drained = true
			f.customers.mu.Lock()
			f.customers.customers[f.customer.ID].LoyaltyPoints = 20
			f.customers.mu.Unlock()
		}
	}

	_, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		CustomerID:    &f.customer.ID,
		PaymentMethod: enum.PaymentMethodCash,
		Tendered:      300,
		RedeemPoints:  true,
		Items: []CheckoutItemInput{
			{MenuItemID: f.latte.ID, Quantity: 1, Size: sizePtr(enum.DrinkSize12oz)},
		},
	})
	if err == nil {
		t.Fatal("expected conflict when points vanish mid-transaction")
	}
	if code := appErrCode(t, err); code != http.StatusConflict {
		t.Errorf("code = %d, want 409", code)
	}

	// Stock decrement rolled back with the failed redemption
	if got := f.ingredients.quantity(f.espresso.ID); got != 1_000_000 {
		t.Errorf("espresso stock = %d, want rolled back", got)
	}
	if f.checkouts.count() != 0 {
		t.Errorf("checkout count = %d, want 0", f.checkouts.count())
	}
}

func TestCreateCheckout_UnknownCustomer(t *testing.T) {
	f := newCheckoutFixture(t)
	unknown := uuid.New()

	_, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		CustomerID:    &unknown,
		PaymentMethod: enum.PaymentMethodCash,
		Items:         []CheckoutItemInput{{MenuItemID: f.cookie.ID, Quantity: 1}},
	})
	if code := appErrCode(t, err); code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", code)
	}
}

func TestCreateCheckout_UnderpaidStaysPending(t *testing.T) {
	f := newCheckoutFixture(t)

	checkout, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		PaymentMethod: enum.PaymentMethodGCash,
		Tendered:      50,
		Items:         []CheckoutItemInput{{MenuItemID: f.cookie.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}
	if checkout.Status != enum.CheckoutStatusPending {
		t.Errorf("Status = %s, want pending", checkout.Status)
	}
	if checkout.Change != 0 {
		t.Errorf("Change = %d, want 0 on underpayment", checkout.Change)
	}
}

func TestCreateCheckout_NonCashOwesNoChange(t *testing.T) {
	f := newCheckoutFixture(t)

	checkout, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		PaymentMethod: enum.PaymentMethodGCash,
		Tendered:      100,
		Items:         []CheckoutItemInput{{MenuItemID: f.cookie.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}
	if checkout.Change != 0 {
		t.Errorf("Change = %d, want 0 for gcash", checkout.Change)
	}
	if checkout.Status != enum.CheckoutStatusCompleted {
		t.Errorf("Status = %s, want completed", checkout.Status)
	}
}

func TestCreateCheckout_ExplicitStatusWins(t *testing.T) {
	f := newCheckoutFixture(t)

	// Fully tendered, but the caller holds the receipt open
	status := enum.CheckoutStatusPending
	checkout, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		PaymentMethod: enum.PaymentMethodCash,
		Tendered:      65,
		Status:        &status,
		Items:         []CheckoutItemInput{{MenuItemID: f.cookie.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}
	if checkout.Status != enum.CheckoutStatusPending {
		t.Errorf("Status = %s, want the caller's pending", checkout.Status)
	}
}

func TestUpdatePayment_SettlesPendingCheckout(t *testing.T) {
	f := newCheckoutFixture(t)

	checkout, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		PaymentMethod: enum.PaymentMethodCash,
		Tendered:      0,
		Items:         []CheckoutItemInput{{MenuItemID: f.cookie.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}

	tendered := 100.0
	method := enum.PaymentMethodGCash
	ref := "GC-8841"
	updated, err := f.svc.UpdatePayment(context.Background(), checkout.ID, &UpdatePaymentInput{
		PaymentMethod: &method,
		Tendered:      &tendered,
		ReferenceID:   &ref,
	})
	if err != nil {
		t.Fatalf("UpdatePayment: %v", err)
	}
	if updated.Status != enum.CheckoutStatusCompleted {
		t.Errorf("Status = %s, want completed", updated.Status)
	}
	// Non-cash settlements never owe change back
	if updated.Tendered != 10000 || updated.Change != 0 {
		t.Errorf("Tendered/Change = %d/%d, want 10000/0", updated.Tendered, updated.Change)
	}
	if updated.ReferenceID == nil || *updated.ReferenceID != "GC-8841" {
		t.Errorf("ReferenceID = %v, want GC-8841", updated.ReferenceID)
	}
	// Totals are immutable
	if updated.Total != 6500 {
		t.Errorf("Total = %d, want unchanged 6500", updated.Total)
	}
}

func TestUpdatePayment_RejectsCompletedCheckout(t *testing.T) {
	f := newCheckoutFixture(t)

	checkout, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		PaymentMethod: enum.PaymentMethodCash,
		Tendered:      65,
		Items:         []CheckoutItemInput{{MenuItemID: f.cookie.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}

	tendered := 200.0
	_, err = f.svc.UpdatePayment(context.Background(), checkout.ID, &UpdatePaymentInput{Tendered: &tendered})
	if code := appErrCode(t, err); code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
}

func TestGetCheckoutByReceiptNo(t *testing.T) {
	f := newCheckoutFixture(t)

	created, err := f.svc.CreateCheckout(context.Background(), &CreateCheckoutInput{
		UserID:        f.userID,
		PaymentMethod: enum.PaymentMethodCash,
		Tendered:      65,
		Items:         []CheckoutItemInput{{MenuItemID: f.cookie.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}

	found, err := f.svc.GetCheckoutByReceiptNo(context.Background(), created.ReceiptNo)
	if err != nil {
		t.Fatalf("GetCheckoutByReceiptNo: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("found %s, want %s", found.ID, created.ID)
	}

	_, err = f.svc.GetCheckoutByReceiptNo(context.Background(), 9999)
	if code := appErrCode(t, err); code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", code)
	}
}
