package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/internal/domain/enum"
	"github.com/kapehan/pos-api/pkg/pagination"
)

// RestockRepository defines the interface for restock data operations
type RestockRepository interface {
	Create(ctx context.Context, restock *entity.Restock) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Restock, error)
	GetByRestockNo(ctx context.Context, restockNo string) (*entity.Restock, error)
	Update(ctx context.Context, restock *entity.Restock) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *RestockFilterParams) ([]entity.Restock, int64, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Restock, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.RestockStatus, updatedBy uuid.UUID) error
	GetPending(ctx context.Context, params *pagination.PaginationParams) ([]entity.Restock, int64, error)
}

// RestockFilterParams contains filtering parameters for restock queries
type RestockFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.RestockStatus
	SupplierID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// SupplierRepository defines the interface for supplier data operations
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error)
}
