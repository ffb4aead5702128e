package handler

import (
	"github.com/Olpagroup25/insa/internal/application/identity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler manages login accounts
type UserHandler struct {
	BaseHandler
	userService *identity.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *identity.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create godoc
// @ID           createUser
// @Summary      Create user
// @Description  Create a login account bound to a partner. Portal users act for that partner's pickup point.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body CreateUserRequest true "User"
// @Success      201 {object} APIResponse[identity.UserInfo]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.Create(c.Request.Context(), identity.CreateUserInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		PartnerID: uuid.MustParse(req.PartnerID),
		Kind:      req.Kind,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, user)
}

// GetByID godoc
// @ID           getUserById
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Success      200 {object} APIResponse[identity.UserInfo]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// ListByPartner godoc
// @ID           listUsersByPartner
// @Summary      List a partner's users
// @Tags         users
// @Produce      json
// @Param        partner_id query string true "Partner ID" format(uuid)
// @Success      200 {object} APIResponse[[]identity.UserInfo]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) ListByPartner(c *gin.Context) {
	partnerID, err := uuid.Parse(c.Query("partner_id"))
	if err != nil {
		h.BadRequest(c, "partner_id query parameter must be a UUID")
		return
	}

	users, err := h.userService.ListByPartner(c.Request.Context(), partnerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, users)
}

// Deactivate godoc
// @ID           deactivateUser
// @Summary      Deactivate user
// @Description  Archive a user and revoke all of its sessions
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Success      200 {object} APIResponse[MessageData]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id}/deactivate [post]
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	if err := h.userService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, MessageData{Message: "User deactivated"})
}
