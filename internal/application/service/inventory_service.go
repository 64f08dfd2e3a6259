package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/internal/domain/repository"
	"github.com/kapehan/pos-api/pkg/apperror"
	"github.com/kapehan/pos-api/pkg/email"
	"github.com/kapehan/pos-api/pkg/pagination"
)

// InventoryService handles ingredient stock operations
type InventoryService struct {
	ingredientRepo repository.IngredientRepository
	emailService   *email.EmailService
	alertEmail     string
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	ingredientRepo repository.IngredientRepository,
	emailService *email.EmailService,
	alertEmail string,
) *InventoryService {
	return &InventoryService{
		ingredientRepo: ingredientRepo,
		emailService:   emailService,
		alertEmail:     alertEmail,
	}
}

// CreateIngredientInput represents the create ingredient input.
// Quantities are decimals; the service converts them to thousandths.
type CreateIngredientInput struct {
	Name              string
	Quantity          float64
	Unit              string
	Price             float64
	LowStockThreshold float64
}

// CreateIngredient creates a new ingredient
func (s *InventoryService) CreateIngredient(ctx context.Context, input *CreateIngredientInput) (*entity.Ingredient, error) {
	existing, err := s.ingredientRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Ingredient with this name already exists")
	}

	ingredient := &entity.Ingredient{
		Name:              input.Name,
		Quantity:          entity.QtyFromDecimal(input.Quantity),
		Unit:              input.Unit,
		Price:             int64(input.Price * 100),
		LowStockThreshold: entity.QtyFromDecimal(input.LowStockThreshold),
	}
	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

// UpdateIngredientInput represents the update ingredient input
type UpdateIngredientInput struct {
	Name              *string
	Unit              *string
	Price             *float64
	LowStockThreshold *float64
}

// UpdateIngredient updates ingredient metadata. Stock levels change
// only through restocks and checkouts, never through this path.
func (s *InventoryService) UpdateIngredient(ctx context.Context, id uuid.UUID, input *UpdateIngredientInput) (*entity.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, apperror.NewNotFoundError("Ingredient")
	}

	if input.Name != nil {
		ingredient.Name = *input.Name
	}
	if input.Unit != nil {
		ingredient.Unit = *input.Unit
	}
	if input.Price != nil {
		ingredient.Price = int64(*input.Price * 100)
	}
	if input.LowStockThreshold != nil {
		ingredient.LowStockThreshold = entity.QtyFromDecimal(*input.LowStockThreshold)
	}

	if err := s.ingredientRepo.Update(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

// AdjustStock applies a manual signed stock correction (spillage, stock
// takes). Negative adjustments use the same conditional decrement as
// checkouts, so stock can never be corrected below zero.
func (s *InventoryService) AdjustStock(ctx context.Context, id uuid.UUID, delta float64) (*entity.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, apperror.NewNotFoundError("Ingredient")
	}

	amount := entity.QtyFromDecimal(delta)
	switch {
	case amount > 0:
		if err := s.ingredientRepo.AtomicIncrementBatch(ctx, map[uuid.UUID]int64{id: amount}); err != nil {
			return nil, err
		}
	case amount < 0:
		ok, err := s.ingredientRepo.AtomicDecrementQuantity(ctx, id, -amount)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperror.NewInsufficientStockError(ingredient.Name, -amount, ingredient.Quantity)
		}
	}

	return s.ingredientRepo.GetByID(ctx, id)
}

// GetIngredient retrieves an ingredient by ID
func (s *InventoryService) GetIngredient(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, apperror.NewNotFoundError("Ingredient")
	}
	return ingredient, nil
}

// ListIngredients lists ingredients with filtering
func (s *InventoryService) ListIngredients(ctx context.Context, params *repository.IngredientFilterParams) (*pagination.PaginatedResult[entity.Ingredient], error) {
	ingredients, total, err := s.ingredientRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(ingredients, pag), nil
}

// DeleteIngredient soft-deletes an ingredient
func (s *InventoryService) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	ingredient, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ingredient == nil {
		return apperror.NewNotFoundError("Ingredient")
	}
	return s.ingredientRepo.Delete(ctx, id)
}

// GetLowStock returns ingredients at or below their low-stock threshold
func (s *InventoryService) GetLowStock(ctx context.Context) ([]entity.Ingredient, error) {
	return s.ingredientRepo.GetLowStock(ctx)
}

// SendLowStockAlert emails the configured recipient the current
// low-stock list. No-op when nothing is low or no recipient is set.
func (s *InventoryService) SendLowStockAlert(ctx context.Context) (int, error) {
	if s.alertEmail == "" {
		return 0, apperror.NewBadRequestError("No alert email configured")
	}

	low, err := s.ingredientRepo.GetLowStock(ctx)
	if err != nil {
		return 0, err
	}
	if len(low) == 0 {
		return 0, nil
	}

	items := make([]email.LowStockItem, len(low))
	for i, ing := range low {
		items[i] = email.LowStockItem{
			Name:      ing.Name,
			Quantity:  entity.QtyToDecimal(ing.Quantity),
			Threshold: entity.QtyToDecimal(ing.LowStockThreshold),
			Unit:      ing.Unit,
		}
	}

	if err := s.emailService.SendLowStockAlert(s.alertEmail, items); err != nil {
		log.Printf("Failed to send low stock alert: %v", err)
		return 0, err
	}
	return len(items), nil
}
