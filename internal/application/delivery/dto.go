package delivery

import (
	"time"

	"github.com/Olpagroup25/insa/internal/domain/delivery"
	"github.com/google/uuid"
)

// CreateCarrierRequest represents a request to create a carrier
type CreateCarrierRequest struct {
	Name            string     `json:"name" binding:"required,min=1,max=200"`
	PickupPartnerID *uuid.UUID `json:"pickup_partner_id"`
	PickupHours     string     `json:"pickup_hours" binding:"max=2000"`
}

// UpdateCarrierRequest represents a request to update a carrier
type UpdateCarrierRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	PickupHours *string `json:"pickup_hours" binding:"omitempty,max=2000"`
}

// AssignPickupPartnerRequest links a carrier to a pickup point partner
type AssignPickupPartnerRequest struct {
	PartnerID uuid.UUID `json:"partner_id" binding:"required"`
}

// CarrierListFilter represents filter options for listing carriers
type CarrierListFilter struct {
	Search     string `form:"search"`
	PickupOnly bool   `form:"pickup_only"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// CarrierResponse represents a carrier in API responses
type CarrierResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	IsPickupPoint   bool       `json:"is_pickup_point"`
	PickupPartnerID *uuid.UUID `json:"pickup_partner_id,omitempty"`
	PickupHours     string     `json:"pickup_hours,omitempty"`
	Active          bool       `json:"active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ToCarrierResponse converts a domain carrier to a response
func ToCarrierResponse(c *delivery.Carrier) CarrierResponse {
	return CarrierResponse{
		ID:              c.ID,
		Name:            c.Name,
		IsPickupPoint:   c.IsPickupPoint(),
		PickupPartnerID: c.PickupPartnerID,
		PickupHours:     c.PickupHours,
		Active:          c.Active,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// PickupPointInfo is the checkout popup summary of a carrier's pickup point.
// Missing text fields are empty strings and unknown coordinates are 0.
type PickupPointInfo struct {
	CarrierName     string  `json:"carrier_name"`
	PartnerName     string  `json:"partner_name"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	AddressLine1    string  `json:"address_line1"`
	AddressLine2    string  `json:"address_line2"`
	FullAddress     string  `json:"full_address"`
	PickupHours     string  `json:"pickup_hours"`
	PartnerImageURL string  `json:"partner_image_url"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	MapURL          string  `json:"map_url"`
}
