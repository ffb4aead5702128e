package handler

import (
	"github.com/Olpagroup25/insa/internal/application/delivery"
	"github.com/gin-gonic/gin"
)

// CarrierHandler handles delivery carrier HTTP requests
type CarrierHandler struct {
	BaseHandler
	carrierService *delivery.CarrierService
}

// NewCarrierHandler creates a new carrier handler
func NewCarrierHandler(carrierService *delivery.CarrierService) *CarrierHandler {
	return &CarrierHandler{carrierService: carrierService}
}

// Create godoc
// @ID           createCarrier
// @Summary      Create carrier
// @Description  Create a delivery method. Setting pickup_partner_id makes it a pickup point.
// @Tags         carriers
// @Accept       json
// @Produce      json
// @Param        request body delivery.CreateCarrierRequest true "Carrier"
// @Success      201 {object} APIResponse[delivery.CarrierResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /carriers [post]
func (h *CarrierHandler) Create(c *gin.Context) {
	var req delivery.CreateCarrierRequest
	if !h.BindJSON(c, &req) {
		return
	}

	carrier, err := h.carrierService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, carrier)
}

// GetByID godoc
// @ID           getCarrierById
// @Summary      Get carrier
// @Tags         carriers
// @Produce      json
// @Param        id path string true "Carrier ID" format(uuid)
// @Success      200 {object} APIResponse[delivery.CarrierResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /carriers/{id} [get]
func (h *CarrierHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid carrier ID format")
		return
	}

	carrier, err := h.carrierService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, carrier)
}

// List godoc
// @ID           listCarriers
// @Summary      List carriers
// @Tags         carriers
// @Produce      json
// @Param        search query string false "Name"
// @Param        pickup_only query bool false "Only pickup points"
// @Param        page query int false "Page" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]delivery.CarrierResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /carriers [get]
func (h *CarrierHandler) List(c *gin.Context) {
	var filter delivery.CarrierListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	carriers, total, err := h.carrierService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, carriers, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateCarrier
// @Summary      Update carrier
// @Description  Rename a carrier or change its pickup hours
// @Tags         carriers
// @Accept       json
// @Produce      json
// @Param        id path string true "Carrier ID" format(uuid)
// @Param        request body delivery.UpdateCarrierRequest true "Changes"
// @Success      200 {object} APIResponse[delivery.CarrierResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /carriers/{id} [put]
func (h *CarrierHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid carrier ID format")
		return
	}

	var req delivery.UpdateCarrierRequest
	if !h.BindJSON(c, &req) {
		return
	}

	carrier, err := h.carrierService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, carrier)
}

// AssignPickupPartner godoc
// @ID           assignCarrierPickupPartner
// @Summary      Assign pickup partner
// @Description  Link the carrier to a pickup point partner. Pickings of the carrier follow the change.
// @Tags         carriers
// @Accept       json
// @Produce      json
// @Param        id path string true "Carrier ID" format(uuid)
// @Param        request body delivery.AssignPickupPartnerRequest true "Partner"
// @Success      200 {object} APIResponse[delivery.CarrierResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /carriers/{id}/pickup-partner [put]
func (h *CarrierHandler) AssignPickupPartner(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid carrier ID format")
		return
	}

	var req delivery.AssignPickupPartnerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	carrier, err := h.carrierService.AssignPickupPartner(c.Request.Context(), id, req.PartnerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, carrier)
}

// ClearPickupPartner godoc
// @ID           clearCarrierPickupPartner
// @Summary      Clear pickup partner
// @Description  Turn the carrier back into a regular delivery method
// @Tags         carriers
// @Produce      json
// @Param        id path string true "Carrier ID" format(uuid)
// @Success      200 {object} APIResponse[delivery.CarrierResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /carriers/{id}/pickup-partner [delete]
func (h *CarrierHandler) ClearPickupPartner(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid carrier ID format")
		return
	}

	carrier, err := h.carrierService.ClearPickupPartner(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, carrier)
}
