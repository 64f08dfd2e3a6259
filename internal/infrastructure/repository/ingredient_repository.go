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

type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) domainRepo.IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	return dbFromContext(ctx, r.db).Create(ingredient).Error
}

func (r *ingredientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	var ingredient entity.Ingredient
	err := dbFromContext(ctx, r.db).First(&ingredient, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ingredient, err
}

// GetByIDs retrieves multiple ingredients by their IDs in a single query
func (r *ingredientRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Ingredient, error) {
	if len(ids) == 0 {
		return []entity.Ingredient{}, nil
	}
	var ingredients []entity.Ingredient
	err := dbFromContext(ctx, r.db).Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) GetByName(ctx context.Context, name string) (*entity.Ingredient, error) {
	var ingredient entity.Ingredient
	err := dbFromContext(ctx, r.db).First(&ingredient, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ingredient, err
}

func (r *ingredientRepository) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	return dbFromContext(ctx, r.db).Save(ingredient).Error
}

func (r *ingredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).Delete(&entity.Ingredient{}, "id = ?", id).Error
}

func (r *ingredientRepository) List(ctx context.Context, params *domainRepo.IngredientFilterParams) ([]entity.Ingredient, int64, error) {
	var ingredients []entity.Ingredient
	var total int64

	query := dbFromContext(ctx, r.db).Model(&entity.Ingredient{})

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	if params.LowStock {
		query = query.Where("quantity <= low_stock_threshold")
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
		Order(sortBy + " " + sortOrder).
		Find(&ingredients).Error

	return ingredients, total, err
}

func (r *ingredientRepository) GetLowStock(ctx context.Context) ([]entity.Ingredient, error) {
	var ingredients []entity.Ingredient
	err := dbFromContext(ctx, r.db).
		Where("quantity <= low_stock_threshold").
		Find(&ingredients).Error
	return ingredients, err
}

// AtomicDecrementQuantity atomically decrements stock only if sufficient quantity exists.
// Uses: UPDATE ingredients SET quantity = quantity - amount WHERE id = ? AND quantity >= amount
func (r *ingredientRepository) AtomicDecrementQuantity(ctx context.Context, id uuid.UUID, amount int64) (bool, error) {
	result := dbFromContext(ctx, r.db).Model(&entity.Ingredient{}).
		Where("id = ? AND quantity >= ?", id, amount).
		Update("quantity", gorm.Expr("quantity - ?", amount))

	if result.Error != nil {
		return false, result.Error
	}

	// If no rows were affected, insufficient stock
	return result.RowsAffected > 0, nil
}

// AtomicIncrementBatch atomically increments stock for multiple ingredients.
func (r *ingredientRepository) AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int64) error {
	if len(increments) == 0 {
		return nil
	}

	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		for id, amount := range increments {
			if err := tx.Model(&entity.Ingredient{}).
				Where("id = ?", id).
				Update("quantity", gorm.Expr("quantity + ?", amount)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
