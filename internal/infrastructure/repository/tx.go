package repository

import (
	"context"

	domainRepo "github.com/kapehan/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type txKey struct{}

type gormTxManager struct {
	db *gorm.DB
}

// NewGormTxManager creates a TxManager backed by GORM transactions.
func NewGormTxManager(db *gorm.DB) domainRepo.TxManager {
	return &gormTxManager{db: db}
}

// Do opens a transaction and stashes the handle in the context. Repositories
// constructed from the same *gorm.DB pick it up via dbFromContext, so every
// call made inside fn shares one transaction and commits or rolls back as a
// unit.
func (m *gormTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFromContext returns the transaction handle carried by ctx, or the
// fallback connection when no transaction is open.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
