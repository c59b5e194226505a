package handler

import (
	"strconv"
	"time"

	"github.com/Ajoe62/Pharmjam-sub001/internal/application/service"
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/enum"
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/repository"
	"github.com/Ajoe62/Pharmjam-sub001/internal/presentation/http/dto/request"
	"github.com/Ajoe62/Pharmjam-sub001/internal/presentation/http/dto/response"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InventoryHandler handles stock monitoring and restock HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// GetLowStock handles getting products at or below their reorder level
func (h *InventoryHandler) GetLowStock(c *gin.Context) {
	products, err := h.inventoryService.GetLowStockProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved successfully", products)
}

// GetExpiring handles getting products expiring within a number of days
func (h *InventoryHandler) GetExpiring(c *gin.Context) {
	days := 0
	if d := c.Query("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed < 0 {
			response.BadRequest(c, "Invalid days parameter")
			return
		}
		days = parsed
	}

	products, err := h.inventoryService.GetExpiringProducts(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expiring products retrieved successfully", products)
}

// CreateRestock handles creating a restock order
func (h *InventoryHandler) CreateRestock(c *gin.Context) {
	staffID := GetStaffID(c)
	if staffID == nil {
		response.Unauthorized(c, "Staff not authenticated")
		return
	}

	var req request.CreateRestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.RestockItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		productID, err := uuid.Parse(it.ProductID)
		if err != nil {
			response.BadRequest(c, "Invalid product ID: "+it.ProductID)
			return
		}
		items = append(items, service.RestockItemInput{
			ProductID:   productID,
			Quantity:    it.Quantity,
			UnitCost:    it.UnitCost,
			BatchNumber: it.BatchNumber,
			ExpiryDate:  it.ExpiryDate,
		})
	}

	order, err := h.inventoryService.CreateRestockOrder(c.Request.Context(), &service.CreateRestockInput{
		StaffID:      *staffID,
		SupplierName: req.SupplierName,
		ExpectedAt:   req.ExpectedAt,
		Items:        items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Restock order created successfully", order)
}

// ListRestocks handles listing restock orders
func (h *InventoryHandler) ListRestocks(c *gin.Context) {
	var filter request.RestockFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.RestockFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.Status != nil {
		s := enum.RestockStatus(*filter.Status)
		params.Status = &s
	}
	if filter.StartDate != "" {
		if t, err := time.Parse("2006-01-02", filter.StartDate); err == nil {
			params.StartDate = &t
		}
	}
	if filter.EndDate != "" {
		if t, err := time.Parse("2006-01-02", filter.EndDate); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond)
			params.EndDate = &end
		}
	}

	result, err := h.inventoryService.ListRestockOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Restock orders retrieved successfully", result)
}

// GetRestock handles getting a single restock order
func (h *InventoryHandler) GetRestock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid restock order ID")
		return
	}

	order, err := h.inventoryService.GetRestockOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Restock order retrieved successfully", order)
}

// ReceiveRestock handles marking a restock order as received, adding its stock
func (h *InventoryHandler) ReceiveRestock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid restock order ID")
		return
	}

	if err := h.inventoryService.ReceiveRestockOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Restock order received successfully", nil)
}

// CancelRestock handles canceling a pending restock order
func (h *InventoryHandler) CancelRestock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid restock order ID")
		return
	}

	if err := h.inventoryService.CancelRestockOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Restock order canceled successfully", nil)
}
