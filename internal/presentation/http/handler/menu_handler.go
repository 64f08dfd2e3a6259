package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/application/service"
	"github.com/kapehan/pos-api/internal/domain/enum"
	"github.com/kapehan/pos-api/internal/domain/repository"
	"github.com/kapehan/pos-api/internal/presentation/http/dto/request"
	"github.com/kapehan/pos-api/internal/presentation/http/dto/response"
	"github.com/kapehan/pos-api/pkg/pagination"
)

// MenuHandler handles menu item and add-on HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// Create handles menu item creation
func (h *MenuHandler) Create(c *gin.Context) {
	var req request.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	category, ok := enum.ParseMenuCategory(req.Category)
	if !ok {
		response.BadRequest(c, "Invalid category")
		return
	}

	input := &service.CreateMenuItemInput{
		Name:          req.Name,
		Category:      category,
		Price:         req.Price,
		PriceOz12:     req.PriceOz12,
		PriceOz16:     req.PriceOz16,
		Available:     req.Available,
		Recipe:        toRecipeInputs(req.Recipe),
		IngredientIDs: req.IngredientIDs,
		AddOnIDs:      req.AddOnIDs,
	}

	item, err := h.menuService.CreateMenuItem(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created successfully", item)
}

// Update handles menu item updates
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req request.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.UpdateMenuItemInput{
		Name:          req.Name,
		Price:         req.Price,
		PriceOz12:     req.PriceOz12,
		PriceOz16:     req.PriceOz16,
		Available:     req.Available,
		IngredientIDs: req.IngredientIDs,
		AddOnIDs:      req.AddOnIDs,
	}
	if req.Category != nil {
		category, ok := enum.ParseMenuCategory(*req.Category)
		if !ok {
			response.BadRequest(c, "Invalid category")
			return
		}
		input.Category = &category
	}

	item, err := h.menuService.UpdateMenuItem(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated successfully", item)
}

// ReplaceRecipe handles full recipe replacement
func (h *MenuHandler) ReplaceRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req request.ReplaceRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.menuService.ReplaceRecipe(c.Request.Context(), id, toRecipeInputs(req.Recipe))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recipe updated successfully", item)
}

// SetAvailability handles toggling a menu item's availability
func (h *MenuHandler) SetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req request.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.menuService.SetAvailability(c.Request.Context(), id, *req.Available); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Availability updated successfully", nil)
}

// Get handles retrieving a menu item by ID
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	item, err := h.menuService.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item retrieved successfully", item)
}

// GetBySlug handles retrieving a menu item by slug
func (h *MenuHandler) GetBySlug(c *gin.Context) {
	item, err := h.menuService.GetMenuItemBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item retrieved successfully", item)
}

// List handles listing menu items with filters
func (h *MenuHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.MenuItemFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:        c.Query("search"),
		AvailableOnly: c.Query("available_only") == "true",
		SortBy:        c.Query("sort_by"),
		SortOrder:     c.Query("sort_order"),
	}

	if categoryStr := c.Query("category"); categoryStr != "" {
		if category, ok := enum.ParseMenuCategory(categoryStr); ok {
			params.Category = &category
		}
	}

	result, err := h.menuService.ListMenuItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Menu items retrieved successfully", result)
}

// Delete handles menu item deletion
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.DeleteMenuItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item deleted successfully", nil)
}

// CreateAddOn handles add-on creation
func (h *MenuHandler) CreateAddOn(c *gin.Context) {
	var req request.CreateAddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.CreateAddOnInput{
		Name:  req.Name,
		Price: req.Price,
	}
	if req.Category != "" {
		if category, ok := enum.ParseMenuCategory(req.Category); ok {
			input.Category = category
		}
	}

	addon, err := h.menuService.CreateAddOn(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Add-on created successfully", addon)
}

// UpdateAddOn handles add-on updates
func (h *MenuHandler) UpdateAddOn(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid add-on ID")
		return
	}

	var req request.UpdateAddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.UpdateAddOnInput{
		Name:   req.Name,
		Price:  req.Price,
		Active: req.Active,
	}
	if req.Category != nil {
		category, ok := enum.ParseMenuCategory(*req.Category)
		if !ok {
			response.BadRequest(c, "Invalid category")
			return
		}
		input.Category = &category
	}

	addon, err := h.menuService.UpdateAddOn(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Add-on updated successfully", addon)
}

// GetAddOn handles retrieving an add-on by ID
func (h *MenuHandler) GetAddOn(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid add-on ID")
		return
	}

	addon, err := h.menuService.GetAddOn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Add-on retrieved successfully", addon)
}

// ListAddOns handles listing add-ons
func (h *MenuHandler) ListAddOns(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	activeOnly := c.Query("active_only") == "true"

	result, err := h.menuService.ListAddOns(c.Request.Context(), params, c.Query("search"), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Add-ons retrieved successfully", result)
}

// DeleteAddOn handles add-on deletion
func (h *MenuHandler) DeleteAddOn(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid add-on ID")
		return
	}

	if err := h.menuService.DeleteAddOn(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Add-on deleted successfully", nil)
}

func toRecipeInputs(entries []request.RecipeEntryRequest) []service.RecipeEntryInput {
	inputs := make([]service.RecipeEntryInput, 0, len(entries))
	for _, e := range entries {
		inputs = append(inputs, service.RecipeEntryInput{
			IngredientID: e.IngredientID,
			QtyPerUnit:   e.QtyPerUnit,
			QtyOz12:      e.QtyOz12,
			QtyOz16:      e.QtyOz16,
		})
	}
	return inputs
}
