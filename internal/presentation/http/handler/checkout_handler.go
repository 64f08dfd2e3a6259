package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/application/service"
	"github.com/kapehan/pos-api/internal/domain/enum"
	"github.com/kapehan/pos-api/internal/domain/repository"
	"github.com/kapehan/pos-api/internal/presentation/http/dto/request"
	"github.com/kapehan/pos-api/internal/presentation/http/dto/response"
	"github.com/kapehan/pos-api/pkg/pagination"
)

// CheckoutHandler handles checkout-related HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Create handles checkout creation
func (h *CheckoutHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	paymentMethod, ok := enum.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		response.BadRequest(c, "Invalid payment method")
		return
	}

	orderType := enum.OrderTypeDineIn
	if req.OrderType != "" {
		orderType, ok = enum.ParseOrderType(req.OrderType)
		if !ok {
			response.BadRequest(c, "Invalid order type")
			return
		}
	}

	var status *enum.CheckoutStatus
	if req.Status != "" {
		parsed, ok := enum.ParseCheckoutStatus(req.Status)
		if !ok {
			response.BadRequest(c, "Invalid status")
			return
		}
		status = &parsed
	}

	items := make([]service.CheckoutItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		in := service.CheckoutItemInput{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			AddOnIDs:   item.AddOnIDs,
		}
		if item.Size != nil {
			size, ok := enum.ParseDrinkSize(*item.Size)
			if !ok {
				response.BadRequest(c, "Invalid drink size")
				return
			}
			in.Size = &size
		}
		items = append(items, in)
	}

	input := &service.CreateCheckoutInput{
		UserID:        *userID,
		CustomerID:    req.CustomerID,
		OrderType:     orderType,
		PaymentMethod: paymentMethod,
		Tendered:      req.Tendered,
		ReferenceID:   req.ReferenceID,
		Status:        status,
		RedeemPoints:  req.RedeemPoints,
		Items:         items,
	}

	checkout, err := h.checkoutService.CreateCheckout(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Checkout created successfully", checkout)
}

// UpdatePayment handles payment settlement on a pending checkout
func (h *CheckoutHandler) UpdatePayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid checkout ID")
		return
	}

	var req request.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.UpdatePaymentInput{
		Tendered:    req.Tendered,
		ReferenceID: req.ReferenceID,
	}
	if req.PaymentMethod != nil {
		method, ok := enum.ParsePaymentMethod(*req.PaymentMethod)
		if !ok {
			response.BadRequest(c, "Invalid payment method")
			return
		}
		input.PaymentMethod = &method
	}

	checkout, err := h.checkoutService.UpdatePayment(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment updated successfully", checkout)
}

// Get handles retrieving a checkout by ID
func (h *CheckoutHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid checkout ID")
		return
	}

	checkout, err := h.checkoutService.GetCheckout(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout retrieved successfully", checkout)
}

// GetByReceiptNo handles retrieving a checkout by receipt number
func (h *CheckoutHandler) GetByReceiptNo(c *gin.Context) {
	receiptNo, err := strconv.ParseInt(c.Param("receipt_no"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid receipt number")
		return
	}

	checkout, err := h.checkoutService.GetCheckoutByReceiptNo(c.Request.Context(), receiptNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout retrieved successfully", checkout)
}

// List handles listing checkouts with filters
func (h *CheckoutHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.CheckoutFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		if status, ok := enum.ParseCheckoutStatus(statusStr); ok {
			params.Status = &status
		}
	}

	if methodStr := c.Query("payment_method"); methodStr != "" {
		if method, ok := enum.ParsePaymentMethod(methodStr); ok {
			params.PaymentMethod = &method
		}
	}

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			params.CustomerID = &customerID
		}
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &startDate
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &endDate
		}
	}

	result, err := h.checkoutService.ListCheckouts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Checkouts retrieved successfully", result)
}
