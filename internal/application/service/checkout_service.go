package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/config"
	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/internal/domain/enum"
	"github.com/kapehan/pos-api/internal/domain/repository"
	"github.com/kapehan/pos-api/pkg/apperror"
	"github.com/kapehan/pos-api/pkg/metrics"
	"github.com/kapehan/pos-api/pkg/pagination"
)

// CheckoutService runs the checkout pipeline: price the cart, reserve
// ingredient stock, settle loyalty points, number the receipt, and
// persist the whole thing as one transaction.
type CheckoutService struct {
	checkoutRepo   repository.CheckoutRepository
	menuItemRepo   repository.MenuItemRepository
	addOnRepo      repository.AddOnRepository
	ingredientRepo repository.IngredientRepository
	customerRepo   repository.CustomerRepository
	counterRepo    repository.CounterRepository
	tx             repository.TxManager
	loyalty        config.LoyaltyConfig
	metrics        *metrics.ServerMetrics
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	checkoutRepo repository.CheckoutRepository,
	menuItemRepo repository.MenuItemRepository,
	addOnRepo repository.AddOnRepository,
	ingredientRepo repository.IngredientRepository,
	customerRepo repository.CustomerRepository,
	counterRepo repository.CounterRepository,
	tx repository.TxManager,
	loyalty config.LoyaltyConfig,
	m *metrics.ServerMetrics,
) *CheckoutService {
	return &CheckoutService{
		checkoutRepo:   checkoutRepo,
		menuItemRepo:   menuItemRepo,
		addOnRepo:      addOnRepo,
		ingredientRepo: ingredientRepo,
		customerRepo:   customerRepo,
		counterRepo:    counterRepo,
		tx:             tx,
		loyalty:        loyalty,
		metrics:        m,
	}
}

// CheckoutItemInput represents one cart line
type CheckoutItemInput struct {
	MenuItemID uuid.UUID
	Quantity   int
	Size       *enum.DrinkSize
	AddOnIDs   []uuid.UUID
}

// CreateCheckoutInput represents the create checkout input
type CreateCheckoutInput struct {
	UserID        uuid.UUID
	CustomerID    *uuid.UUID
	OrderType     enum.OrderType
	PaymentMethod enum.PaymentMethod
	Tendered      float64
	ReferenceID   *string
	Status        *enum.CheckoutStatus
	RedeemPoints  bool
	Items         []CheckoutItemInput
}

// CreateCheckout prices the cart and commits the checkout. Stock
// decrements, the loyalty delta, the receipt number and the checkout
// row all land in one transaction; any failure rolls back everything.
func (s *CheckoutService) CreateCheckout(ctx context.Context, input *CreateCheckoutInput) (*entity.Checkout, error) {
	if len(input.Items) == 0 {
		return nil, apperror.ErrEmptyCart
	}

	// Validate customer if provided
	var customer *entity.Customer
	if input.CustomerID != nil {
		var err error
		customer, err = s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	// Batch fetch all menu items in one query (prevents N+1)
	itemIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		itemIDs[i] = item.MenuItemID
	}
	menuItems, err := s.menuItemRepo.GetByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	menuMap := make(map[uuid.UUID]*entity.MenuItem, len(menuItems))
	for i := range menuItems {
		menuMap[menuItems[i].ID] = &menuItems[i]
	}

	// Batch fetch all referenced add-ons
	addOnIDSet := make(map[uuid.UUID]struct{})
	for _, item := range input.Items {
		for _, id := range item.AddOnIDs {
			addOnIDSet[id] = struct{}{}
		}
	}
	addOnIDs := make([]uuid.UUID, 0, len(addOnIDSet))
	for id := range addOnIDSet {
		addOnIDs = append(addOnIDs, id)
	}
	addOns, err := s.addOnRepo.GetByIDs(ctx, addOnIDs)
	if err != nil {
		return nil, err
	}
	addOnMap := make(map[uuid.UUID]*entity.AddOn, len(addOns))
	for i := range addOns {
		addOnMap[addOns[i].ID] = &addOns[i]
	}

	// Price every line and accumulate ingredient requirements
	var subTotal int64
	checkoutItems := make([]entity.CheckoutItem, 0, len(input.Items))
	requirements := make(map[uuid.UUID]int64) // ingredient -> thousandths

	for _, line := range input.Items {
		item, exists := menuMap[line.MenuItemID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Menu item %s", line.MenuItemID))
		}
		if !item.Available {
			return nil, apperror.NewInvalidLineItemError(item.Name, "item is not available")
		}

		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}

		// Drinks need a size; size on anything else is ignored
		size := enum.DrinkSize("")
		var sizeSnapshot *enum.DrinkSize
		if item.Category.IsDrink() {
			if line.Size == nil {
				return nil, apperror.NewInvalidLineItemError(item.Name, "drink requires a size")
			}
			size = *line.Size
			sizeSnapshot = line.Size
		}

		unitPrice, ok := item.UnitPrice(size)
		if !ok {
			return nil, apperror.NewInvalidLineItemError(item.Name, "no price for the requested size")
		}

		// Resolve and validate add-ons
		var addOnTotal int64
		lineAddOns := make([]entity.CheckoutItemAddOn, 0, len(line.AddOnIDs))
		for _, id := range line.AddOnIDs {
			addon, exists := addOnMap[id]
			if !exists {
				return nil, apperror.NewInvalidAddOnError(item.Name, "unknown add-on")
			}
			if !addon.Active {
				return nil, apperror.NewInvalidAddOnError(item.Name, fmt.Sprintf("add-on %q is inactive", addon.Name))
			}
			if !item.AllowsAddOn(addon.ID) {
				return nil, apperror.NewInvalidAddOnError(item.Name, fmt.Sprintf("add-on %q is not offered for this item", addon.Name))
			}
			addOnTotal += addon.Price
			lineAddOns = append(lineAddOns, entity.CheckoutItemAddOn{
				AddOnID: addon.ID,
				Name:    addon.Name,
				Price:   addon.Price,
			})
		}

		perUnit := unitPrice + addOnTotal
		lineSubTotal := perUnit * int64(qty)
		subTotal += lineSubTotal

		checkoutItems = append(checkoutItems, entity.CheckoutItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			UnitPrice:  unitPrice,
			Size:       sizeSnapshot,
			Quantity:   qty,
			SubTotal:   lineSubTotal,
			AddOns:     lineAddOns,
		})

		// Recipe requirements, merged across lines
		for ingredientID, perUnitReq := range lineRequirements(item, size) {
			requirements[ingredientID] += perUnitReq * int64(qty)
		}
	}

	// Loyalty redemption: one drink free. An ineligible request is
	// skipped, not rejected.
	redeemed := s.redemptionEligible(input.RedeemPoints, customer, checkoutItems, menuMap)

	var totalDiscount int64
	if redeemed {
		line := &checkoutItems[0]
		perUnit := line.UnitPrice
		for _, a := range line.AddOns {
			perUnit += a.Price
		}
		// One unit's base price, spread evenly across the line and
		// capped at the per-unit charge.
		perUnitDiscount := line.UnitPrice / int64(line.Quantity)
		if perUnitDiscount > perUnit {
			perUnitDiscount = perUnit
		}
		line.LineDiscount = perUnitDiscount
		lineSubTotal := (perUnit - perUnitDiscount) * int64(line.Quantity)
		if lineSubTotal < 0 {
			lineSubTotal = 0
		}
		totalDiscount = line.SubTotal - lineSubTotal
		line.SubTotal = lineSubTotal
	}

	total := subTotal - totalDiscount

	// Points accrue on the post-discount total, never on a receipt that
	// already redeemed points.
	pointsEarned := 0
	pointsSpent := 0
	if customer != nil {
		if redeemed {
			pointsSpent = s.loyalty.RedeemThreshold
		} else if s.loyalty.EarnDivisor > 0 {
			pointsEarned = int(total / s.loyalty.EarnDivisor)
		}
	}

	tenderedCents := int64(input.Tendered * 100)
	change := changeFor(input.PaymentMethod, tenderedCents, total)

	// Counter sales may arrive with an explicit status; otherwise full
	// tender auto-completes the checkout.
	status := enum.CheckoutStatusPending
	if input.Status != nil {
		status = *input.Status
	} else if tenderedCents >= total {
		status = enum.CheckoutStatusCompleted
	}

	checkout := &entity.Checkout{
		UserID:        input.UserID,
		CustomerID:    input.CustomerID,
		Status:        status,
		OrderType:     input.OrderType,
		PaymentMethod: input.PaymentMethod,
		SubTotal:      subTotal,
		Total:         total,
		Tendered:      tenderedCents,
		Change:        change,
		ReferenceID:   input.ReferenceID,
		PointsEarned:  pointsEarned,
		PointsSpent:   pointsSpent,
		Items:         checkoutItems,
	}
	if customer != nil {
		checkout.CustomerName = &customer.Name
		checkout.CustomerEmail = customer.Email
	}

	// Decrement ingredients in a stable order so concurrent checkouts
	// never deadlock on each other.
	ingredientIDs := make([]uuid.UUID, 0, len(requirements))
	for id := range requirements {
		ingredientIDs = append(ingredientIDs, id)
	}
	sort.Slice(ingredientIDs, func(i, j int) bool {
		return ingredientIDs[i].String() < ingredientIDs[j].String()
	})

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		for _, id := range ingredientIDs {
			needed := requirements[id]
			ok, err := s.ingredientRepo.AtomicDecrementQuantity(ctx, id, needed)
			if err != nil {
				return err
			}
			if !ok {
				name, available := s.describeShortfall(ctx, id)
				if s.metrics != nil {
					s.metrics.StockShortfalls.WithLabelValues(name).Inc()
				}
				return apperror.NewInsufficientStockError(name, needed, available)
			}
		}

		if redeemed {
			ok, err := s.customerRepo.ApplyPointsDelta(ctx, *input.CustomerID, -pointsSpent)
			if err != nil {
				return err
			}
			if !ok {
				// Points were spent by a concurrent checkout since the
				// eligibility read; the whole unit rolls back.
				return apperror.NewConflictError("Customer no longer has enough points to redeem")
			}
		} else if pointsEarned > 0 {
			if _, err := s.customerRepo.ApplyPointsDelta(ctx, *input.CustomerID, pointsEarned); err != nil {
				return err
			}
		}

		receiptNo, err := s.counterRepo.Next(ctx, entity.CounterReceiptNo)
		if err != nil {
			return err
		}
		checkout.ReceiptNo = receiptNo

		return s.checkoutRepo.Create(ctx, checkout)
	})
	if err != nil {
		if s.metrics != nil {
			s.metrics.CheckoutsTotal.WithLabelValues("rejected").Inc()
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.CheckoutsTotal.WithLabelValues("committed").Inc()
		s.metrics.CheckoutRevenue.Add(float64(total))
		if redeemed {
			s.metrics.LoyaltyRedeemed.Inc()
		}
	}

	return s.checkoutRepo.GetWithItems(ctx, checkout.ID)
}

// lineRequirements resolves one line's per-unit ingredient
// requirements in thousandths. An item with no recipe rows falls back
// to one unit of each declared ingredient per item unit; the fallback
// usually means the recipe was never entered, so it is logged as a
// data-quality warning.
func lineRequirements(item *entity.MenuItem, size enum.DrinkSize) map[uuid.UUID]int64 {
	if len(item.Recipe) == 0 {
		if len(item.Ingredients) > 0 {
			log.Printf("Warning: menu item %q has no recipe; consuming 1 unit of each declared ingredient", item.Name)
		}
		reqs := make(map[uuid.UUID]int64, len(item.Ingredients))
		for i := range item.Ingredients {
			reqs[item.Ingredients[i].ID] = entity.QtyScale
		}
		return reqs
	}

	reqs := make(map[uuid.UUID]int64, len(item.Recipe))
	for i := range item.Recipe {
		req := item.Recipe[i].PerUnit(size)
		if req <= 0 {
			continue
		}
		reqs[item.Recipe[i].IngredientID] += req
	}
	return reqs
}

// redemptionEligible reports whether the free-drink perk applies:
// requested, a customer with enough points, and a cart of exactly one
// drinks-category line.
func (s *CheckoutService) redemptionEligible(
	requested bool,
	customer *entity.Customer,
	items []entity.CheckoutItem,
	menu map[uuid.UUID]*entity.MenuItem,
) bool {
	if !requested || customer == nil || customer.LoyaltyPoints < s.loyalty.RedeemThreshold {
		return false
	}
	if len(items) != 1 {
		return false
	}
	item, ok := menu[items[0].MenuItemID]
	return ok && item.Category.IsDrink()
}

// changeFor computes the change owed. Only cash produces change; a
// non-cash overpayment is a recording error, not money owed back.
func changeFor(method enum.PaymentMethod, tendered, total int64) int64 {
	if method != enum.PaymentMethodCash {
		return 0
	}
	if tendered <= total {
		return 0
	}
	return tendered - total
}

// describeShortfall reads the failed ingredient for the error message.
// Best effort: a read failure falls back to the raw ID.
func (s *CheckoutService) describeShortfall(ctx context.Context, id uuid.UUID) (string, int64) {
	ingredient, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil || ingredient == nil {
		return id.String(), 0
	}
	return ingredient.Name, ingredient.Quantity
}

// UpdatePaymentInput updates settlement details on a pending checkout
type UpdatePaymentInput struct {
	PaymentMethod *enum.PaymentMethod
	Tendered      *float64
	ReferenceID   *string
}

// UpdatePayment settles or re-settles a pending checkout. Cart
// contents, totals and points are immutable once committed; only the
// payment fields and derived change move.
func (s *CheckoutService) UpdatePayment(ctx context.Context, id uuid.UUID, input *UpdatePaymentInput) (*entity.Checkout, error) {
	checkout, err := s.checkoutRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if checkout == nil {
		return nil, apperror.NewNotFoundError("Checkout")
	}
	if checkout.Status == enum.CheckoutStatusCompleted {
		return nil, apperror.NewBadRequestError("Checkout is already completed")
	}

	if input.PaymentMethod != nil {
		checkout.PaymentMethod = *input.PaymentMethod
	}
	if input.Tendered != nil {
		checkout.Tendered = int64(*input.Tendered * 100)
	}
	if input.ReferenceID != nil {
		checkout.ReferenceID = input.ReferenceID
	}

	checkout.Change = changeFor(checkout.PaymentMethod, checkout.Tendered, checkout.Total)
	if checkout.Tendered >= checkout.Total {
		checkout.Status = enum.CheckoutStatusCompleted
	}

	if err := s.checkoutRepo.Update(ctx, checkout); err != nil {
		return nil, err
	}
	return checkout, nil
}

// GetCheckout retrieves a checkout by ID
func (s *CheckoutService) GetCheckout(ctx context.Context, id uuid.UUID) (*entity.Checkout, error) {
	checkout, err := s.checkoutRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if checkout == nil {
		return nil, apperror.NewNotFoundError("Checkout")
	}
	return checkout, nil
}

// GetCheckoutByReceiptNo retrieves a checkout by its receipt number
func (s *CheckoutService) GetCheckoutByReceiptNo(ctx context.Context, receiptNo int64) (*entity.Checkout, error) {
	checkout, err := s.checkoutRepo.GetByReceiptNo(ctx, receiptNo)
	if err != nil {
		return nil, err
	}
	if checkout == nil {
		return nil, apperror.NewNotFoundError("Checkout")
	}
	return checkout, nil
}

// ListCheckouts lists checkouts with filtering
func (s *CheckoutService) ListCheckouts(ctx context.Context, params *repository.CheckoutFilterParams) (*pagination.PaginatedResult[entity.Checkout], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	checkouts, total, err := s.checkoutRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(checkouts, pag), nil
}
