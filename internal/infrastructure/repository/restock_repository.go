package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/internal/domain/enum"
	domainRepo "github.com/kapehan/pos-api/internal/domain/repository"
	"github.com/kapehan/pos-api/pkg/pagination"
	"gorm.io/gorm"
)

type restockRepository struct {
	db *gorm.DB
}

// NewRestockRepository creates a new restock repository
func NewRestockRepository(db *gorm.DB) domainRepo.RestockRepository {
	return &restockRepository{db: db}
}

func (r *restockRepository) Create(ctx context.Context, restock *entity.Restock) error {
	return dbFromContext(ctx, r.db).Create(restock).Error
}

func (r *restockRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Restock, error) {
	var restock entity.Restock
	err := dbFromContext(ctx, r.db).First(&restock, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &restock, err
}

func (r *restockRepository) GetByRestockNo(ctx context.Context, restockNo string) (*entity.Restock, error) {
	var restock entity.Restock
	err := dbFromContext(ctx, r.db).First(&restock, "restock_no = ?", restockNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &restock, err
}

func (r *restockRepository) Update(ctx context.Context, restock *entity.Restock) error {
	return dbFromContext(ctx, r.db).Save(restock).Error
}

func (r *restockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).Delete(&entity.Restock{}, "id = ?", id).Error
}

func (r *restockRepository) List(ctx context.Context, params *domainRepo.RestockFilterParams) ([]entity.Restock, int64, error) {
	var restocks []entity.Restock
	var total int64

	query := dbFromContext(ctx, r.db).Model(&entity.Restock{})

	if params.Search != "" {
		query = query.Where("restock_no ILIKE ?", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.SupplierID != nil {
		query = query.Where("supplier_id = ?", *params.SupplierID)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Supplier").Preload("Details").
		Order(sortBy + " " + sortOrder).
		Find(&restocks).Error

	return restocks, total, err
}

func (r *restockRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Restock, error) {
	var restock entity.Restock
	err := dbFromContext(ctx, r.db).
		Preload("Supplier").Preload("Details").Preload("Details.Ingredient").
		First(&restock, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &restock, err
}

func (r *restockRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.RestockStatus, updatedBy uuid.UUID) error {
	return dbFromContext(ctx, r.db).Model(&entity.Restock{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": updatedBy,
		}).Error
}

func (r *restockRepository) GetPending(ctx context.Context, params *pagination.PaginationParams) ([]entity.Restock, int64, error) {
	var restocks []entity.Restock
	var total int64

	pending := enum.RestockStatusPending
	query := dbFromContext(ctx, r.db).Model(&entity.Restock{}).
		Where("status = ?", pending)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Supplier").Preload("Details").
		Order("created_at ASC").
		Find(&restocks).Error

	return restocks, total, err
}

type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *gorm.DB) domainRepo.SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	return dbFromContext(ctx, r.db).Create(supplier).Error
}

func (r *supplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := dbFromContext(ctx, r.db).First(&supplier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &supplier, err
}

func (r *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	return dbFromContext(ctx, r.db).Save(supplier).Error
}

func (r *supplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).Delete(&entity.Supplier{}, "id = ?", id).Error
}

func (r *supplierRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	var suppliers []entity.Supplier
	var total int64

	query := dbFromContext(ctx, r.db).Model(&entity.Supplier{})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
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
		Find(&suppliers).Error

	return suppliers, total, err
}
