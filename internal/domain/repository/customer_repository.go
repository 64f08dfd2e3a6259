package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	// ApplyPointsDelta atomically adjusts a customer's loyalty balance.
	// A negative delta only applies when the balance stays non-negative;
	// returns (false, nil) when the customer has too few points.
	ApplyPointsDelta(ctx context.Context, id uuid.UUID, delta int) (bool, error)
}
