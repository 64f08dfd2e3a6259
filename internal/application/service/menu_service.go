package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/internal/domain/enum"
	"github.com/kapehan/pos-api/internal/domain/repository"
	"github.com/kapehan/pos-api/pkg/apperror"
	"github.com/kapehan/pos-api/pkg/pagination"
	"github.com/kapehan/pos-api/pkg/utils"
)

// MenuService handles menu item and add-on catalog operations
type MenuService struct {
	menuItemRepo   repository.MenuItemRepository
	addOnRepo      repository.AddOnRepository
	ingredientRepo repository.IngredientRepository
}

// NewMenuService creates a new menu service
func NewMenuService(
	menuItemRepo repository.MenuItemRepository,
	addOnRepo repository.AddOnRepository,
	ingredientRepo repository.IngredientRepository,
) *MenuService {
	return &MenuService{
		menuItemRepo:   menuItemRepo,
		addOnRepo:      addOnRepo,
		ingredientRepo: ingredientRepo,
	}
}

// RecipeEntryInput represents one ingredient requirement on a menu item
type RecipeEntryInput struct {
	IngredientID uuid.UUID
	QtyPerUnit   float64
	QtyOz12      *float64
	QtyOz16      *float64
}

// CreateMenuItemInput represents the create menu item input.
// Drinks carry PriceOz12/PriceOz16; everything else carries Price.
type CreateMenuItemInput struct {
	Name          string
	Category      enum.MenuCategory
	Price         *float64
	PriceOz12     *float64
	PriceOz16     *float64
	Available     *bool
	Recipe        []RecipeEntryInput
	IngredientIDs []uuid.UUID // declared set; defaults to the recipe's ingredients
	AddOnIDs      []uuid.UUID
}

// CreateMenuItem creates a new menu item with its recipe
func (s *MenuService) CreateMenuItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error) {
	if err := validatePricingShape(input.Category, input.Price, input.PriceOz12, input.PriceOz16); err != nil {
		return nil, err
	}

	slug := utils.Slugify(input.Name)
	existing, err := s.menuItemRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Menu item with this name already exists")
	}

	item := &entity.MenuItem{
		Name:      input.Name,
		Slug:      slug,
		Category:  input.Category,
		Available: true,
	}
	if input.Available != nil {
		item.Available = *input.Available
	}
	setPrices(item, input.Price, input.PriceOz12, input.PriceOz16)

	recipe, err := s.buildRecipe(ctx, input.Recipe)
	if err != nil {
		return nil, err
	}
	item.Recipe = recipe

	ingredients, err := s.resolveDeclaredIngredients(ctx, input.IngredientIDs, recipe)
	if err != nil {
		return nil, err
	}
	item.Ingredients = ingredients

	if len(input.AddOnIDs) > 0 {
		addons, err := s.resolveAddOns(ctx, input.AddOnIDs)
		if err != nil {
			return nil, err
		}
		item.AllowedAddOns = addons
	}

	if err := s.menuItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return s.menuItemRepo.GetByID(ctx, item.ID)
}

// UpdateMenuItemInput represents the update menu item input
type UpdateMenuItemInput struct {
	Name          *string
	Category      *enum.MenuCategory
	Price         *float64
	PriceOz12     *float64
	PriceOz16     *float64
	Available     *bool
	IngredientIDs []uuid.UUID // nil means leave unchanged
	AddOnIDs      []uuid.UUID // nil means leave unchanged, empty slice clears
}

// UpdateMenuItem updates an existing menu item
func (s *MenuService) UpdateMenuItem(ctx context.Context, id uuid.UUID, input *UpdateMenuItemInput) (*entity.MenuItem, error) {
	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if input.Name != nil && *input.Name != item.Name {
		item.Name = *input.Name
		item.Slug = utils.Slugify(*input.Name)
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Price != nil || input.PriceOz12 != nil || input.PriceOz16 != nil {
		setPrices(item, input.Price, input.PriceOz12, input.PriceOz16)
	}
	if input.Available != nil {
		item.Available = *input.Available
	}
	if input.IngredientIDs != nil {
		ingredients, err := s.resolveDeclaredIngredients(ctx, input.IngredientIDs, item.Recipe)
		if err != nil {
			return nil, err
		}
		item.Ingredients = ingredients
	}
	if input.AddOnIDs != nil {
		addons, err := s.resolveAddOns(ctx, input.AddOnIDs)
		if err != nil {
			return nil, err
		}
		item.AllowedAddOns = addons
	}

	if err := s.menuItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return s.menuItemRepo.GetByID(ctx, id)
}

// ReplaceRecipe replaces a menu item's full ingredient recipe
func (s *MenuService) ReplaceRecipe(ctx context.Context, id uuid.UUID, entries []RecipeEntryInput) (*entity.MenuItem, error) {
	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	recipe, err := s.buildRecipe(ctx, entries)
	if err != nil {
		return nil, err
	}
	for i := range recipe {
		recipe[i].MenuItemID = id
	}

	// The declared set must keep covering the recipe
	declaredIDs := make([]uuid.UUID, len(item.Ingredients))
	for i := range item.Ingredients {
		declaredIDs[i] = item.Ingredients[i].ID
	}
	ingredients, err := s.resolveDeclaredIngredients(ctx, declaredIDs, recipe)
	if err != nil {
		return nil, err
	}
	item.Ingredients = ingredients
	if err := s.menuItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err := s.menuItemRepo.ReplaceRecipe(ctx, id, recipe); err != nil {
		return nil, err
	}

	return s.menuItemRepo.GetByID(ctx, id)
}

// SetAvailability flags a menu item as sellable or sold out
func (s *MenuService) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuItemRepo.SetAvailability(ctx, id, available)
}

// GetMenuItem retrieves a menu item by ID with its recipe
func (s *MenuService) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// GetMenuItemBySlug retrieves a menu item by slug
func (s *MenuService) GetMenuItemBySlug(ctx context.Context, slug string) (*entity.MenuItem, error) {
	item, err := s.menuItemRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// ListMenuItems lists menu items with filtering
func (s *MenuService) ListMenuItems(ctx context.Context, params *repository.MenuItemFilterParams) (*pagination.PaginatedResult[entity.MenuItem], error) {
	items, total, err := s.menuItemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// DeleteMenuItem soft-deletes a menu item
func (s *MenuService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuItemRepo.Delete(ctx, id)
}

// CreateAddOnInput represents the create add-on input
type CreateAddOnInput struct {
	Name     string
	Price    float64
	Category enum.MenuCategory
}

// CreateAddOn creates a new add-on
func (s *MenuService) CreateAddOn(ctx context.Context, input *CreateAddOnInput) (*entity.AddOn, error) {
	addon := &entity.AddOn{
		Name:     input.Name,
		Price:    int64(input.Price * 100),
		Active:   true,
		Category: input.Category,
	}
	if err := s.addOnRepo.Create(ctx, addon); err != nil {
		return nil, err
	}
	return addon, nil
}

// UpdateAddOnInput represents the update add-on input
type UpdateAddOnInput struct {
	Name     *string
	Price    *float64
	Active   *bool
	Category *enum.MenuCategory
}

// UpdateAddOn updates an existing add-on
func (s *MenuService) UpdateAddOn(ctx context.Context, id uuid.UUID, input *UpdateAddOnInput) (*entity.AddOn, error) {
	addon, err := s.addOnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if addon == nil {
		return nil, apperror.NewNotFoundError("Add-on")
	}

	if input.Name != nil {
		addon.Name = *input.Name
	}
	if input.Price != nil {
		addon.Price = int64(*input.Price * 100)
	}
	if input.Active != nil {
		addon.Active = *input.Active
	}
	if input.Category != nil {
		addon.Category = *input.Category
	}

	if err := s.addOnRepo.Update(ctx, addon); err != nil {
		return nil, err
	}
	return addon, nil
}

// GetAddOn retrieves an add-on by ID
func (s *MenuService) GetAddOn(ctx context.Context, id uuid.UUID) (*entity.AddOn, error) {
	addon, err := s.addOnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if addon == nil {
		return nil, apperror.NewNotFoundError("Add-on")
	}
	return addon, nil
}

// ListAddOns lists add-ons with filtering
func (s *MenuService) ListAddOns(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) (*pagination.PaginatedResult[entity.AddOn], error) {
	addons, total, err := s.addOnRepo.List(ctx, params, search, activeOnly)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(addons, pag), nil
}

// DeleteAddOn soft-deletes an add-on
func (s *MenuService) DeleteAddOn(ctx context.Context, id uuid.UUID) error {
	addon, err := s.addOnRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if addon == nil {
		return apperror.NewNotFoundError("Add-on")
	}
	return s.addOnRepo.Delete(ctx, id)
}

// buildRecipe validates recipe inputs against the ingredient ledger
// and converts decimal quantities to thousandths.
// resolveDeclaredIngredients resolves the item's declared ingredient
// set, always extended to cover the recipe's ingredients. An item with
// declared ingredients but no recipe rows consumes one unit of each
// per item sold.
func (s *MenuService) resolveDeclaredIngredients(ctx context.Context, ids []uuid.UUID, recipe []entity.RecipeEntry) ([]entity.Ingredient, error) {
	set := make(map[uuid.UUID]bool, len(ids)+len(recipe))
	for _, id := range ids {
		set[id] = true
	}
	for i := range recipe {
		set[recipe[i].IngredientID] = true
	}
	if len(set) == 0 {
		return nil, nil
	}

	lookup := make([]uuid.UUID, 0, len(set))
	for id := range set {
		lookup = append(lookup, id)
	}
	ingredients, err := s.ingredientRepo.GetByIDs(ctx, lookup)
	if err != nil {
		return nil, err
	}
	if len(ingredients) != len(lookup) {
		return nil, apperror.NewNotFoundError("Ingredient")
	}
	return ingredients, nil
}

func (s *MenuService) buildRecipe(ctx context.Context, entries []RecipeEntryInput) ([]entity.RecipeEntry, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	ingredientIDs := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		ingredientIDs[i] = e.IngredientID
	}

	ingredients, err := s.ingredientRepo.GetByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, err
	}
	known := make(map[uuid.UUID]bool, len(ingredients))
	for _, ing := range ingredients {
		known[ing.ID] = true
	}

	recipe := make([]entity.RecipeEntry, 0, len(entries))
	for i, e := range entries {
		if !known[e.IngredientID] {
			return nil, apperror.NewNotFoundError("Ingredient")
		}
		entry := entity.RecipeEntry{
			IngredientID: e.IngredientID,
			QtyPerUnit:   entity.QtyFromDecimal(e.QtyPerUnit),
			Position:     i,
		}
		if e.QtyOz12 != nil {
			q := entity.QtyFromDecimal(*e.QtyOz12)
			entry.QtyOz12 = &q
		}
		if e.QtyOz16 != nil {
			q := entity.QtyFromDecimal(*e.QtyOz16)
			entry.QtyOz16 = &q
		}
		recipe = append(recipe, entry)
	}
	return recipe, nil
}

func (s *MenuService) resolveAddOns(ctx context.Context, ids []uuid.UUID) ([]entity.AddOn, error) {
	if len(ids) == 0 {
		return []entity.AddOn{}, nil
	}
	addons, err := s.addOnRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(addons) != len(ids) {
		return nil, apperror.NewNotFoundError("Add-on")
	}
	return addons, nil
}

// validatePricingShape enforces that drinks carry per-size prices and
// everything else carries a flat price.
func validatePricingShape(category enum.MenuCategory, price, priceOz12, priceOz16 *float64) error {
	if category.IsDrink() {
		if priceOz12 == nil || priceOz16 == nil {
			return apperror.NewBadRequestError("Drinks require both 12oz and 16oz prices")
		}
		return nil
	}
	if price == nil {
		return apperror.NewBadRequestError("Non-drink items require a flat price")
	}
	return nil
}

func setPrices(item *entity.MenuItem, price, priceOz12, priceOz16 *float64) {
	if item.Category.IsDrink() {
		item.Price = nil
		if priceOz12 != nil {
			p := int64(*priceOz12 * 100)
			item.PriceOz12 = &p
		}
		if priceOz16 != nil {
			p := int64(*priceOz16 * 100)
			item.PriceOz16 = &p
		}
		return
	}
	item.PriceOz12 = nil
	item.PriceOz16 = nil
	if price != nil {
		p := int64(*price * 100)
		item.Price = &p
	}
}
