package handler

import (
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

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Checkout handles creating a sale
func (h *SaleHandler) Checkout(c *gin.Context) {
	staffID := GetStaffID(c)
	if staffID == nil {
		response.Unauthorized(c, "Staff not authenticated")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.SaleItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		productID, err := uuid.Parse(it.ProductID)
		if err != nil {
			response.BadRequest(c, "Invalid product ID: "+it.ProductID)
			return
		}
		items = append(items, service.SaleItemInput{
			ProductID: productID,
			Quantity:  it.Quantity,
		})
	}

	sale, err := h.saleService.Checkout(c.Request.Context(), &service.CheckoutInput{
		StaffID:       *staffID,
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		CustomerName:  req.CustomerName,
		Paid:          req.Paid,
		Items:         items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale completed successfully", sale)
}

// List handles listing sales (supports both page-based and cursor-based pagination)
func (h *SaleHandler) List(c *gin.Context) {
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c)
		return
	}

	var filter request.SaleFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}
	applySaleFilters(&filter, params, nil)

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// listWithCursor handles listing sales with cursor-based pagination
func (h *SaleHandler) listWithCursor(c *gin.Context) {
	var filter request.SaleFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	limit := 15
	if filter.Limit > 0 {
		limit = filter.Limit
	}

	params := &repository.SaleCursorFilterParams{
		Cursor: &pagination.CursorParams{
			Cursor:    c.Query("cursor"),
			Direction: pagination.CursorDirection(c.DefaultQuery("direction", "next")),
			Limit:     limit,
		},
		Search: filter.Search,
	}
	applySaleFilters(&filter, nil, params)

	result, err := h.saleService.ListSalesWithCursor(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Sales retrieved successfully", result)
}

// applySaleFilters copies the optional filter fields onto whichever params struct is in use
func applySaleFilters(filter *request.SaleFilterRequest, page *repository.SaleFilterParams, cursor *repository.SaleCursorFilterParams) {
	var status *enum.SaleStatus
	if filter.Status != nil {
		s := enum.SaleStatus(*filter.Status)
		status = &s
	}

	var staffID *uuid.UUID
	if filter.StaffID != "" {
		if id, err := uuid.Parse(filter.StaffID); err == nil {
			staffID = &id
		}
	}

	var method *enum.PaymentMethod
	if filter.PaymentMethod != "" {
		m := enum.PaymentMethod(filter.PaymentMethod)
		method = &m
	}

	var startDate, endDate *time.Time
	if filter.StartDate != "" {
		if t, err := time.Parse("2006-01-02", filter.StartDate); err == nil {
			startDate = &t
		}
	}
	if filter.EndDate != "" {
		if t, err := time.Parse("2006-01-02", filter.EndDate); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond)
			endDate = &end
		}
	}

	if page != nil {
		page.Status = status
		page.StaffID = staffID
		page.PaymentMethod = method
		page.StartDate = startDate
		page.EndDate = endDate
	}
	if cursor != nil {
		cursor.Status = status
		cursor.StaffID = staffID
		cursor.PaymentMethod = method
		cursor.StartDate = startDate
		cursor.EndDate = endDate
	}
}

// Get handles getting a single sale by ID
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// GetByReceiptNo handles looking up a sale by its receipt number
func (h *SaleHandler) GetByReceiptNo(c *gin.Context) {
	receiptNo := c.Param("receiptNo")
	if receiptNo == "" {
		response.BadRequest(c, "Receipt number is required")
		return
	}

	sale, err := h.saleService.GetSaleByReceiptNo(c.Request.Context(), receiptNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// Void handles voiding a sale and restoring its stock
func (h *SaleHandler) Void(c *gin.Context) {
	staffID := GetStaffID(c)
	if staffID == nil {
		response.Unauthorized(c, "Staff not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.saleService.VoidSale(c.Request.Context(), *staffID, id, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale voided successfully", nil)
}
