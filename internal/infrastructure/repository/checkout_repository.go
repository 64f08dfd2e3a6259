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

type checkoutRepository struct {
	db *gorm.DB
}

// NewCheckoutRepository creates a new checkout repository
func NewCheckoutRepository(db *gorm.DB) domainRepo.CheckoutRepository {
	return &checkoutRepository{db: db}
}

func (r *checkoutRepository) Create(ctx context.Context, checkout *entity.Checkout) error {
	return dbFromContext(ctx, r.db).Create(checkout).Error
}

func (r *checkoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Checkout, error) {
	var checkout entity.Checkout
	err := dbFromContext(ctx, r.db).First(&checkout, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &checkout, err
}

func (r *checkoutRepository) GetByReceiptNo(ctx context.Context, receiptNo int64) (*entity.Checkout, error) {
	var checkout entity.Checkout
	err := dbFromContext(ctx, r.db).
		Preload("Items").Preload("Items.AddOns").
		First(&checkout, "receipt_no = ?", receiptNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &checkout, err
}

func (r *checkoutRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Checkout, error) {
	var checkout entity.Checkout
	err := dbFromContext(ctx, r.db).
		Preload("Items").Preload("Items.AddOns").Preload("Customer").
		First(&checkout, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &checkout, err
}

func (r *checkoutRepository) Update(ctx context.Context, checkout *entity.Checkout) error {
	return dbFromContext(ctx, r.db).Save(checkout).Error
}

func (r *checkoutRepository) List(ctx context.Context, params *domainRepo.CheckoutFilterParams) ([]entity.Checkout, int64, error) {
	var checkouts []entity.Checkout
	var total int64

	query := dbFromContext(ctx, r.db).Model(&entity.Checkout{})

	if params.Search != "" {
		query = query.Where("customer_name ILIKE ? OR reference_id ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.PaymentMethod != nil {
		query = query.Where("payment_method = ?", *params.PaymentMethod)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
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
		Preload("Items").Preload("Items.AddOns").
		Order(sortBy + " " + sortOrder).
		Find(&checkouts).Error

	return checkouts, total, err
}
