package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/domain/entity"
	domainRepo "github.com/kapehan/pos-api/internal/domain/repository"
	"github.com/kapehan/pos-api/pkg/pagination"
	"gorm.io/gorm"
)

type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db *gorm.DB) domainRepo.MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return dbFromContext(ctx, r.db).Create(item).Error
}

func (r *menuItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := dbFromContext(ctx, r.db).
		Preload("Recipe").Preload("Recipe.Ingredient").Preload("Ingredients").Preload("AllowedAddOns").
		First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

// GetByIDs retrieves multiple menu items by their IDs in a single query
func (r *menuItemRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error) {
	if len(ids) == 0 {
		return []entity.MenuItem{}, nil
	}
	var items []entity.MenuItem
	err := dbFromContext(ctx, r.db).
		Preload("Recipe").Preload("Ingredients").Preload("AllowedAddOns").
		Where("id IN ?", ids).
		Find(&items).Error
	return items, err
}

func (r *menuItemRepository) GetBySlug(ctx context.Context, slug string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := dbFromContext(ctx, r.db).
		Preload("Recipe").Preload("Recipe.Ingredient").Preload("Ingredients").Preload("AllowedAddOns").
		First(&item, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	return dbFromContext(ctx, r.db).Save(item).Error
}

func (r *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).Delete(&entity.MenuItem{}, "id = ?", id).Error
}

func (r *menuItemRepository) List(ctx context.Context, params *domainRepo.MenuItemFilterParams) ([]entity.MenuItem, int64, error) {
	var items []entity.MenuItem
	var total int64

	query := dbFromContext(ctx, r.db).Model(&entity.MenuItem{})

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}

	if params.AvailableOnly {
		query = query.Where("available = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "name"
	sortOrder := "ASC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "DESC" || params.SortOrder == "desc" {
		sortOrder = "DESC"
	}

	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Recipe").Preload("Ingredients").Preload("AllowedAddOns").
		Order(sortBy + " " + sortOrder).
		Find(&items).Error

	return items, total, err
}

func (r *menuItemRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	return dbFromContext(ctx, r.db).Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("available", available).Error
}

// ReplaceRecipe swaps the item's recipe for a new set of entries in one
// transaction.
func (r *menuItemRepository) ReplaceRecipe(ctx context.Context, id uuid.UUID, recipe []entity.RecipeEntry) error {
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", id).Delete(&entity.RecipeEntry{}).Error; err != nil {
			return err
		}
		for i := range recipe {
			recipe[i].MenuItemID = id
		}
		if len(recipe) == 0 {
			return nil
		}
		return tx.Create(&recipe).Error
	})
}

type addOnRepository struct {
	db *gorm.DB
}

// NewAddOnRepository creates a new add-on repository
func NewAddOnRepository(db *gorm.DB) domainRepo.AddOnRepository {
	return &addOnRepository{db: db}
}

func (r *addOnRepository) Create(ctx context.Context, addon *entity.AddOn) error {
	return dbFromContext(ctx, r.db).Create(addon).Error
}

func (r *addOnRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AddOn, error) {
	var addon entity.AddOn
	err := dbFromContext(ctx, r.db).First(&addon, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &addon, err
}

// GetByIDs retrieves multiple add-ons by their IDs in a single query
func (r *addOnRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.AddOn, error) {
	if len(ids) == 0 {
		return []entity.AddOn{}, nil
	}
	var addons []entity.AddOn
	err := dbFromContext(ctx, r.db).Where("id IN ?", ids).Find(&addons).Error
	return addons, err
}

func (r *addOnRepository) Update(ctx context.Context, addon *entity.AddOn) error {
	return dbFromContext(ctx, r.db).Save(addon).Error
}

func (r *addOnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).Delete(&entity.AddOn{}, "id = ?", id).Error
}

func (r *addOnRepository) List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.AddOn, int64, error) {
	var addons []entity.AddOn
	var total int64

	query := dbFromContext(ctx, r.db).Model(&entity.AddOn{})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if activeOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&addons).Error

	return addons, total, err
}
