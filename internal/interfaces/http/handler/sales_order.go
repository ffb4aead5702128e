package handler

import (
	"github.com/Olpagroup25/insa/internal/application/trade"
	"github.com/gin-gonic/gin"
)

// SalesOrderHandler handles sales order HTTP requests
type SalesOrderHandler struct {
	BaseHandler
	orderService *trade.SalesOrderService
}

// NewSalesOrderHandler creates a new sales order handler
func NewSalesOrderHandler(orderService *trade.SalesOrderService) *SalesOrderHandler {
	return &SalesOrderHandler{orderService: orderService}
}

// Create godoc
// @ID           createSalesOrder
// @Summary      Create sales order
// @Description  Create a draft order for a customer
// @Tags         sales-orders
// @Accept       json
// @Produce      json
// @Param        request body trade.CreateSalesOrderRequest true "Order"
// @Success      201 {object} APIResponse[trade.SalesOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sales-orders [post]
func (h *SalesOrderHandler) Create(c *gin.Context) {
	var req trade.CreateSalesOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// GetByID godoc
// @ID           getSalesOrderById
// @Summary      Get sales order
// @Tags         sales-orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} APIResponse[trade.SalesOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sales-orders/{id} [get]
func (h *SalesOrderHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// List godoc
// @ID           listSalesOrders
// @Summary      List sales orders
// @Tags         sales-orders
// @Produce      json
// @Param        search query string false "Order number"
// @Param        status query string false "Status" Enums(draft, confirmed, cancelled)
// @Param        customer_id query string false "Customer" format(uuid)
// @Param        carrier_id query string false "Carrier" format(uuid)
// @Param        page query int false "Page" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]trade.SalesOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sales-orders [get]
func (h *SalesOrderHandler) List(c *gin.Context) {
	var filter trade.SalesOrderListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	orders, total, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, orders, total, filter.Page, filter.PageSize)
}

// SelectCarrier godoc
// @ID           selectSalesOrderCarrier
// @Summary      Select delivery method
// @Description  Choose the carrier of a draft order. A pickup point carrier ships to its pickup partner.
// @Tags         sales-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Param        request body trade.SelectCarrierRequest true "Carrier"
// @Success      200 {object} APIResponse[trade.SalesOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sales-orders/{id}/carrier [put]
func (h *SalesOrderHandler) SelectCarrier(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req trade.SelectCarrierRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.orderService.SelectCarrier(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Confirm godoc
// @ID           confirmSalesOrder
// @Summary      Confirm sales order
// @Description  Confirm a draft order and create its outgoing picking
// @Tags         sales-orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} APIResponse[trade.SalesOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sales-orders/{id}/confirm [post]
func (h *SalesOrderHandler) Confirm(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.Confirm(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Cancel godoc
// @ID           cancelSalesOrder
// @Summary      Cancel sales order
// @Tags         sales-orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} APIResponse[trade.SalesOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sales-orders/{id}/cancel [post]
func (h *SalesOrderHandler) Cancel(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}
