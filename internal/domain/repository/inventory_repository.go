package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/pkg/pagination"
)

// IngredientRepository defines the interface for ingredient stock operations
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *entity.Ingredient) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error)
	// GetByIDs retrieves multiple ingredients by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Ingredient, error)
	GetByName(ctx context.Context, name string) (*entity.Ingredient, error)
	Update(ctx context.Context, ingredient *entity.Ingredient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *IngredientFilterParams) ([]entity.Ingredient, int64, error)
	GetLowStock(ctx context.Context) ([]entity.Ingredient, error)
	// AtomicDecrementQuantity atomically decrements stock only if sufficient.
	// Amount is in thousandths of a unit. Returns (true, nil) if successful,
	// (false, nil) if insufficient stock, (false, err) on error.
	AtomicDecrementQuantity(ctx context.Context, id uuid.UUID, amount int64) (bool, error)
	// AtomicIncrementBatch atomically increments stock for multiple ingredients
	// (restock deliveries, cancellation compensation).
	AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int64) error
}

// IngredientFilterParams contains filtering parameters for ingredient queries
type IngredientFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	LowStock   bool
	SortBy     string
	SortOrder  string
}
