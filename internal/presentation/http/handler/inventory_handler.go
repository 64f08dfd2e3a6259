package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/application/service"
	"github.com/kapehan/pos-api/internal/domain/repository"
	"github.com/kapehan/pos-api/internal/presentation/http/dto/request"
	"github.com/kapehan/pos-api/internal/presentation/http/dto/response"
	"github.com/kapehan/pos-api/pkg/pagination"
)

// InventoryHandler handles ingredient stock HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Create handles ingredient creation
func (h *InventoryHandler) Create(c *gin.Context) {
	var req request.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ingredient, err := h.inventoryService.CreateIngredient(c.Request.Context(), &service.CreateIngredientInput{
		Name:              req.Name,
		Quantity:          req.Quantity,
		Unit:              req.Unit,
		Price:             req.Price,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ingredient created successfully", ingredient)
}

// Update handles ingredient metadata updates
func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ingredient ID")
		return
	}

	var req request.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ingredient, err := h.inventoryService.UpdateIngredient(c.Request.Context(), id, &service.UpdateIngredientInput{
		Name:              req.Name,
		Unit:              req.Unit,
		Price:             req.Price,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ingredient updated successfully", ingredient)
}

// AdjustStock handles a manual signed stock correction
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ingredient ID")
		return
	}

	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ingredient, err := h.inventoryService.AdjustStock(c.Request.Context(), id, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjusted successfully", ingredient)
}

// Get handles retrieving an ingredient by ID
func (h *InventoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ingredient ID")
		return
	}

	ingredient, err := h.inventoryService.GetIngredient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ingredient retrieved successfully", ingredient)
}

// List handles listing ingredients with filters
func (h *InventoryHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.IngredientFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:    c.Query("search"),
		LowStock:  c.Query("low_stock") == "true",
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	result, err := h.inventoryService.ListIngredients(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Ingredients retrieved successfully", result)
}

// Delete handles ingredient deletion
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ingredient ID")
		return
	}

	if err := h.inventoryService.DeleteIngredient(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ingredient deleted successfully", nil)
}

// GetLowStock handles listing ingredients at or below their threshold
func (h *InventoryHandler) GetLowStock(c *gin.Context) {
	ingredients, err := h.inventoryService.GetLowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock ingredients retrieved successfully", ingredients)
}

// SendLowStockAlert handles emailing the low-stock report
func (h *InventoryHandler) SendLowStockAlert(c *gin.Context) {
	count, err := h.inventoryService.SendLowStockAlert(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if count == 0 {
		response.OK(c, "No ingredients are low on stock", nil)
		return
	}

	response.OK(c, "Low stock alert sent", gin.H{"items": count})
}
