package repository

import (
	"context"
	"fmt"

	domainRepo "github.com/kapehan/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new counter repository
func NewCounterRepository(db *gorm.DB) domainRepo.CounterRepository {
	return &counterRepository{db: db}
}

// Next bumps the named counter and returns the new value. The UPDATE
// takes a row lock, so concurrent callers inside transactions serialize
// on the counter and no two commits see the same number. Called inside
// the checkout transaction, a rollback releases the number with it.
func (r *counterRepository) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := dbFromContext(ctx, r.db).
		Raw("UPDATE counters SET value = value + 1 WHERE name = ? RETURNING value", name).
		Scan(&value).Error
	if err != nil {
		return 0, err
	}
	if value == 0 {
		// The counter row was never seeded
		return 0, fmt.Errorf("counter %q not found", name)
	}
	return value, nil
}
