package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/internal/domain/enum"
	"github.com/kapehan/pos-api/pkg/pagination"
)

// CheckoutRepository defines the interface for checkout data operations
type CheckoutRepository interface {
	Create(ctx context.Context, checkout *entity.Checkout) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Checkout, error)
	GetByReceiptNo(ctx context.Context, receiptNo int64) (*entity.Checkout, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Checkout, error)
	Update(ctx context.Context, checkout *entity.Checkout) error
	List(ctx context.Context, params *CheckoutFilterParams) ([]entity.Checkout, int64, error)
}

// CheckoutFilterParams contains filtering parameters for checkout queries
type CheckoutFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	Status        *enum.CheckoutStatus
	PaymentMethod *enum.PaymentMethod
	CustomerID    *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	SortBy        string
	SortOrder     string
}
