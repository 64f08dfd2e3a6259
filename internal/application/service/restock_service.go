package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/internal/domain/enum"
	"github.com/kapehan/pos-api/internal/domain/repository"
	"github.com/kapehan/pos-api/pkg/apperror"
	"github.com/kapehan/pos-api/pkg/pagination"
	"github.com/kapehan/pos-api/pkg/utils"
)

// RestockService handles ingredient restock operations. Stock is
// credited only when a pending restock is approved.
type RestockService struct {
	restockRepo    repository.RestockRepository
	ingredientRepo repository.IngredientRepository
	supplierRepo   repository.SupplierRepository
	tx             repository.TxManager
}

// NewRestockService creates a new restock service
func NewRestockService(
	restockRepo repository.RestockRepository,
	ingredientRepo repository.IngredientRepository,
	supplierRepo repository.SupplierRepository,
	tx repository.TxManager,
) *RestockService {
	return &RestockService{
		restockRepo:    restockRepo,
		ingredientRepo: ingredientRepo,
		supplierRepo:   supplierRepo,
		tx:             tx,
	}
}

// RestockItemInput represents one ingredient line in a restock
type RestockItemInput struct {
	IngredientID uuid.UUID
	Quantity     float64
	UnitCost     float64
}

// CreateRestockInput represents the create restock input
type CreateRestockInput struct {
	UserID     uuid.UUID
	SupplierID *uuid.UUID
	Date       *time.Time
	Items      []RestockItemInput
}

// CreateRestock records a pending ingredient delivery
func (s *RestockService) CreateRestock(ctx context.Context, input *CreateRestockInput) (*entity.Restock, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Restock must have at least one item")
	}

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	// Batch fetch all ingredients in one query (prevents N+1)
	ingredientIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		ingredientIDs[i] = item.IngredientID
	}

	ingredients, err := s.ingredientRepo.GetByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, err
	}
	known := make(map[uuid.UUID]bool, len(ingredients))
	for _, ing := range ingredients {
		known[ing.ID] = true
	}

	var totalCost int64
	details := make([]entity.RestockDetail, 0, len(input.Items))
	for _, item := range input.Items {
		if !known[item.IngredientID] {
			return nil, apperror.NewNotFoundError("Ingredient")
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Restock quantity must be positive")
		}

		qty := entity.QtyFromDecimal(item.Quantity)
		unitCostCents := int64(item.UnitCost * 100)
		lineTotal := unitCostCents * qty / entity.QtyScale
		totalCost += lineTotal

		details = append(details, entity.RestockDetail{
			IngredientID: item.IngredientID,
			Quantity:     qty,
			UnitCost:     unitCostCents,
			Total:        lineTotal,
		})
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	restock := &entity.Restock{
		UserID:     input.UserID,
		SupplierID: input.SupplierID,
		Date:       date,
		RestockNo:  utils.GenerateRestockNo(),
		Status:     enum.RestockStatusPending,
		TotalCost:  totalCost,
		Details:    details,
	}

	if err := s.restockRepo.Create(ctx, restock); err != nil {
		return nil, err
	}

	return s.restockRepo.GetWithDetails(ctx, restock.ID)
}

// GetRestock retrieves a restock with its detail lines
func (s *RestockService) GetRestock(ctx context.Context, id uuid.UUID) (*entity.Restock, error) {
	restock, err := s.restockRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if restock == nil {
		return nil, apperror.NewNotFoundError("Restock")
	}
	return restock, nil
}

// ListRestocks lists restocks with filtering
func (s *RestockService) ListRestocks(ctx context.Context, params *repository.RestockFilterParams) (*pagination.PaginatedResult[entity.Restock], error) {
	restocks, total, err := s.restockRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(restocks, pag), nil
}

// GetPendingRestocks returns restocks awaiting approval
func (s *RestockService) GetPendingRestocks(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Restock], error) {
	restocks, total, err := s.restockRepo.GetPending(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(restocks, pag), nil
}

// ApproveRestock credits the delivered quantities to stock and marks
// the restock approved. Both happen in one transaction.
func (s *RestockService) ApproveRestock(ctx context.Context, userID, restockID uuid.UUID) (*entity.Restock, error) {
	restock, err := s.restockRepo.GetWithDetails(ctx, restockID)
	if err != nil {
		return nil, err
	}
	if restock == nil {
		return nil, apperror.NewNotFoundError("Restock")
	}
	if restock.Status != enum.RestockStatusPending {
		return nil, apperror.NewAppError(400, "Only pending restocks can be approved")
	}

	increments := make(map[uuid.UUID]int64, len(restock.Details))
	for _, d := range restock.Details {
		increments[d.IngredientID] += d.Quantity
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.ingredientRepo.AtomicIncrementBatch(ctx, increments); err != nil {
			return err
		}
		return s.restockRepo.UpdateStatus(ctx, restockID, enum.RestockStatusApproved, userID)
	})
	if err != nil {
		return nil, err
	}

	return s.restockRepo.GetWithDetails(ctx, restockID)
}

// CancelRestock cancels a restock. Cancelling an approved restock
// reverses the stock credit; the reversal fails with a conflict if
// the stock was already consumed.
func (s *RestockService) CancelRestock(ctx context.Context, userID, restockID uuid.UUID) (*entity.Restock, error) {
	restock, err := s.restockRepo.GetWithDetails(ctx, restockID)
	if err != nil {
		return nil, err
	}
	if restock == nil {
		return nil, apperror.NewNotFoundError("Restock")
	}
	if restock.Status == enum.RestockStatusCancelled {
		return nil, apperror.NewAppError(400, "Restock is already cancelled")
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if restock.Status == enum.RestockStatusApproved {
			for _, d := range restock.Details {
				ok, err := s.ingredientRepo.AtomicDecrementQuantity(ctx, d.IngredientID, d.Quantity)
				if err != nil {
					return err
				}
				if !ok {
					return apperror.NewConflictError("Cannot cancel: restocked stock already consumed")
				}
			}
		}
		return s.restockRepo.UpdateStatus(ctx, restockID, enum.RestockStatusCancelled, userID)
	})
	if err != nil {
		return nil, err
	}

	return s.restockRepo.GetWithDetails(ctx, restockID)
}

// DeleteRestock deletes a pending restock
func (s *RestockService) DeleteRestock(ctx context.Context, id uuid.UUID) error {
	restock, err := s.restockRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if restock == nil {
		return apperror.NewNotFoundError("Restock")
	}
	if restock.Status == enum.RestockStatusApproved {
		return apperror.NewAppError(400, "Cannot delete an approved restock")
	}
	return s.restockRepo.Delete(ctx, id)
}

// CreateSupplierInput represents the create supplier input
type CreateSupplierInput struct {
	Name    string
	Email   *string
	Phone   *string
	Address *string
}

// CreateSupplier creates a new supplier
func (s *RestockService) CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// UpdateSupplierInput represents the update supplier input
type UpdateSupplierInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// UpdateSupplier updates an existing supplier
func (s *RestockService) UpdateSupplier(ctx context.Context, id uuid.UUID, input *UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.Email != nil {
		supplier.Email = input.Email
	}
	if input.Phone != nil {
		supplier.Phone = input.Phone
	}
	if input.Address != nil {
		supplier.Address = input.Address
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *RestockService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// ListSuppliers lists suppliers with search
func (s *RestockService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Supplier], error) {
	suppliers, total, err := s.supplierRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(suppliers, pag), nil
}

// DeleteSupplier soft-deletes a supplier
func (s *RestockService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}
	return s.supplierRepo.Delete(ctx, id)
}
