package handler

import (
	"context"

	"github.com/Olpagroup25/insa/internal/application/inventory"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PickingHandler exposes warehouse operations on outgoing pickings
type PickingHandler struct {
	BaseHandler
	pickingService *inventory.PickingService
}

// NewPickingHandler creates a new picking handler
func NewPickingHandler(pickingService *inventory.PickingService) *PickingHandler {
	return &PickingHandler{pickingService: pickingService}
}

// GetByID godoc
// @ID           getPickingById
// @Summary      Get picking
// @Tags         pickings
// @Produce      json
// @Param        id path string true "Picking ID" format(uuid)
// @Success      200 {object} APIResponse[inventory.PickingResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /pickings/{id} [get]
func (h *PickingHandler) GetByID(c *gin.Context) {
	h.run(c, h.pickingService.GetByID)
}

// Validate godoc
// @ID           validatePicking
// @Summary      Validate picking
// @Description  Mark a ready picking as done
// @Tags         pickings
// @Produce      json
// @Param        id path string true "Picking ID" format(uuid)
// @Success      200 {object} APIResponse[inventory.PickingResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /pickings/{id}/validate [post]
func (h *PickingHandler) Validate(c *gin.Context) {
	h.run(c, h.pickingService.Validate)
}

// Cancel godoc
// @ID           cancelPicking
// @Summary      Cancel picking
// @Tags         pickings
// @Produce      json
// @Param        id path string true "Picking ID" format(uuid)
// @Success      200 {object} APIResponse[inventory.PickingResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /pickings/{id}/cancel [post]
func (h *PickingHandler) Cancel(c *gin.Context) {
	h.run(c, h.pickingService.Cancel)
}

func (h *PickingHandler) run(c *gin.Context, op func(ctx context.Context, id uuid.UUID) (*inventory.PickingResponse, error)) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid picking ID format")
		return
	}

	picking, err := op(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, picking)
}
