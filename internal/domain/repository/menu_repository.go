package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/internal/domain/enum"
	"github.com/kapehan/pos-api/pkg/pagination"
)

// MenuItemRepository defines the interface for menu item data operations
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	// GetByIDs retrieves multiple menu items by their IDs in a single query (prevents N+1).
	// Recipes and allowed add-ons are preloaded.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error)
	GetBySlug(ctx context.Context, slug string) (*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *MenuItemFilterParams) ([]entity.MenuItem, int64, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	ReplaceRecipe(ctx context.Context, id uuid.UUID, recipe []entity.RecipeEntry) error
}

// MenuItemFilterParams contains filtering parameters for menu item queries
type MenuItemFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	Category      *enum.MenuCategory
	AvailableOnly bool
	SortBy        string
	SortOrder     string
}

// AddOnRepository defines the interface for add-on data operations
type AddOnRepository interface {
	Create(ctx context.Context, addon *entity.AddOn) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AddOn, error)
	// GetByIDs retrieves multiple add-ons by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.AddOn, error)
	Update(ctx context.Context, addon *entity.AddOn) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.AddOn, int64, error)
}
