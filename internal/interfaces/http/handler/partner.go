package handler

import (
	"github.com/Olpagroup25/insa/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// PartnerHandler handles partner (contact) HTTP requests
type PartnerHandler struct {
	BaseHandler
	partnerService *partner.PartnerService
}

// NewPartnerHandler creates a new partner handler
func NewPartnerHandler(partnerService *partner.PartnerService) *PartnerHandler {
	return &PartnerHandler{partnerService: partnerService}
}

// Create godoc
// @ID           createPartner
// @Summary      Create partner
// @Description  Create a contact. Pickup points are partners linked from a carrier.
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        request body partner.CreatePartnerRequest true "Partner"
// @Success      201 {object} APIResponse[partner.PartnerResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /partners [post]
func (h *PartnerHandler) Create(c *gin.Context) {
	var req partner.CreatePartnerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.partnerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, p)
}

// GetByID godoc
// @ID           getPartnerById
// @Summary      Get partner
// @Tags         partners
// @Produce      json
// @Param        id path string true "Partner ID" format(uuid)
// @Success      200 {object} APIResponse[partner.PartnerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /partners/{id} [get]
func (h *PartnerHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid partner ID format")
		return
	}

	p, err := h.partnerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, p)
}

// List godoc
// @ID           listPartners
// @Summary      List partners
// @Tags         partners
// @Produce      json
// @Param        search query string false "Name, email or phone"
// @Param        city query string false "City"
// @Param        page query int false "Page" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]partner.PartnerResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /partners [get]
func (h *PartnerHandler) List(c *gin.Context) {
	var filter partner.PartnerListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	partners, total, err := h.partnerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, partners, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updatePartner
// @Summary      Update partner
// @Description  Update the fields present in the body
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        id path string true "Partner ID" format(uuid)
// @Param        request body partner.UpdatePartnerRequest true "Changes"
// @Success      200 {object} APIResponse[partner.PartnerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /partners/{id} [put]
func (h *PartnerHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid partner ID format")
		return
	}

	var req partner.UpdatePartnerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.partnerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, p)
}
