package handler

import (
	"net/http"
	"strconv"

	"github.com/Olpagroup25/insa/internal/application/identity"
	"github.com/Olpagroup25/insa/internal/application/inventory"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/Olpagroup25/insa/internal/infrastructure/logger"
	"github.com/Olpagroup25/insa/internal/infrastructure/render"
	"github.com/Olpagroup25/insa/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PortalHandler serves the pickup point pages under /my.
// Pickings that are missing or routed to another pickup point redirect to the list.
type PortalHandler struct {
	pickupService *inventory.PickupService
	userService   *identity.UserService
}

// NewPortalHandler creates a new portal handler
func NewPortalHandler(pickupService *inventory.PickupService, userService *identity.UserService) *PortalHandler {
	return &PortalHandler{
		pickupService: pickupService,
		userService:   userService,
	}
}

// Home renders the portal landing page with the pickup counter
func (h *PortalHandler) Home(c *gin.Context) {
	partnerID, ok := h.partner(c)
	if !ok {
		return
	}

	count, err := h.pickupService.Count(c.Request.Context(), partnerID)
	if err != nil {
		renderError(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, render.PageHome, homePage{
		Layout:      layout(c, "Mi cuenta"),
		PickupCount: count,
	})
}

// List renders one page of the pickup point's shipments
func (h *PortalHandler) List(c *gin.Context) {
	partnerID, ok := h.partner(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		page = 1
	}

	result, err := h.pickupService.List(c.Request.Context(), inventory.PickupListInput{
		PartnerID: partnerID,
		Page:      page,
		SortBy:    c.Query("sortby"),
		FilterBy:  c.Query("filterby"),
	})
	if err != nil {
		renderError(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, render.PagePickupList, newPickupListPage(layout(c, "Retiros"), result))
}

// Detail renders one shipment
func (h *PortalHandler) Detail(c *gin.Context) {
	partnerID, ok := h.partner(c)
	if !ok {
		return
	}
	pickingID, ok := parseUUIDParam(c, "picking_id")
	if !ok {
		redirectToList(c)
		return
	}

	picking, err := h.pickupService.Get(c.Request.Context(), partnerID, pickingID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, render.PagePickupDetail, pickupDetailPage{
		Layout:        layout(c, picking.Name),
		Picking:       newPickingView(picking, h.username(c, picking.PickupConfirmedBy)),
		JustConfirmed: c.Query("confirmed") == "1",
		ConfirmURL:    pickupConfirmURL(picking.ID),
		BackURL:       PickupListPath,
	})
}

// Confirm records that the customer collected the shipment, then shows it again.
// Confirming twice keeps the first confirmation.
func (h *PortalHandler) Confirm(c *gin.Context) {
	partnerID, ok := h.partner(c)
	if !ok {
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, LoginPath)
		return
	}
	pickingID, ok := parseUUIDParam(c, "picking_id")
	if !ok {
		redirectToList(c)
		return
	}

	if _, err := h.pickupService.Confirm(c.Request.Context(), partnerID, pickingID, userID); err != nil {
		h.fail(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, pickupDetailURL(pickingID)+"?confirmed=1")
}

// partner returns the session's partner; a session without one is sent back to the login page
func (h *PortalHandler) partner(c *gin.Context) (uuid.UUID, bool) {
	partnerID, err := getPartnerID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, LoginPath)
		return uuid.Nil, false
	}
	return partnerID, true
}

func (h *PortalHandler) fail(c *gin.Context, err error) {
	if shared.IsNotFound(err) {
		redirectToList(c)
		return
	}
	renderError(c, http.StatusInternalServerError, err)
}

// username resolves who confirmed a pickup. Lookup failures show no name.
func (h *PortalHandler) username(c *gin.Context, userID *uuid.UUID) string {
	if userID == nil {
		return ""
	}
	user, err := h.userService.Get(c.Request.Context(), *userID)
	if err != nil {
		logger.FromContext(c.Request.Context()).Debug("Confirming user not resolved",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return ""
	}
	return user.Username
}

func redirectToList(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, PickupListPath)
}

func layout(c *gin.Context, title string) render.Layout {
	return render.Layout{
		Title:    title,
		Username: middleware.GetJWTUsername(c),
	}
}

// renderError logs err and renders the error page
func renderError(c *gin.Context, status int, err error) {
	logger.FromContext(c.Request.Context()).Error("Portal request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", status),
		zap.Error(err))
	c.HTML(status, render.PageError, errorPage{
		Layout: layout(c, "Error"),
		Status: status,
	})
}
