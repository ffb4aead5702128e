package handler

import (
	"errors"
	"net/http"

	"github.com/Olpagroup25/insa/internal/application/delivery"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PickupPointResponse is the checkout popup payload. Error alone is set when the
// carrier is unknown or not a pickup point.
type PickupPointResponse struct {
	Error bool `json:"error"`
	*delivery.PickupPointInfo
}

// PickupPointHandler serves the public pickup point lookup used by the checkout
type PickupPointHandler struct {
	BaseHandler
	pickupPointService *delivery.PickupPointService
}

// NewPickupPointHandler creates a new pickup point handler
func NewPickupPointHandler(pickupPointService *delivery.PickupPointService) *PickupPointHandler {
	return &PickupPointHandler{pickupPointService: pickupPointService}
}

// Info godoc
// @ID           getPickupPointInfo
// @Summary      Pickup point info
// @Description  Contact, address and hours of a carrier's pickup point. Answers {"error": true} for carriers that are not pickup points.
// @Tags         shop
// @Produce      json
// @Param        carrier_id path string true "Carrier ID" format(uuid)
// @Success      200 {object} PickupPointResponse
// @Failure      500 {object} ErrorResponse
// @Router       /shop/pickup_point_info/{carrier_id} [get]
// @Router       /shop/pickup_point_info/{carrier_id} [post]
func (h *PickupPointHandler) Info(c *gin.Context) {
	carrierID, err := uuid.Parse(c.Param("carrier_id"))
	if err != nil {
		c.JSON(http.StatusOK, PickupPointResponse{Error: true})
		return
	}

	info, err := h.pickupPointService.Info(c.Request.Context(), carrierID)
	if errors.Is(err, delivery.ErrNotPickupPoint) {
		c.JSON(http.StatusOK, PickupPointResponse{Error: true})
		return
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, PickupPointResponse{PickupPointInfo: info})
}
