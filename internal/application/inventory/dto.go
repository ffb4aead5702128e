package inventory

import (
	"time"

	"github.com/Olpagroup25/insa/internal/domain/inventory"
	"github.com/google/uuid"
)

// Option is one entry of the portal searchbar (a sorting or a filter)
type Option struct {
	Key   string
	Label string
}

// PickupListInput selects one page of a pickup point's shipments.
// Unknown SortBy/FilterBy keys fall back to the defaults.
type PickupListInput struct {
	PartnerID uuid.UUID
	Page      int
	SortBy    string
	FilterBy  string
}

// PickupListResult is one rendered page of the shipment list
type PickupListResult struct {
	Items    []PickingResponse
	Pager    Pager
	SortBy   string
	FilterBy string
	Sortings []Option
	Filters  []Option
}

// PickupConfirmResult tells whether this call performed the confirmation
type PickupConfirmResult struct {
	Picking   PickingResponse
	Confirmed bool
}

// PickingResponse is the public view of a picking
type PickingResponse struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	State             string     `json:"state"`
	ScheduledDate     time.Time  `json:"scheduled_date"`
	PartnerID         *uuid.UUID `json:"partner_id,omitempty"`
	Origin            string     `json:"origin,omitempty"`
	CarrierID         *uuid.UUID `json:"carrier_id,omitempty"`
	PickupPartnerID   *uuid.UUID `json:"pickup_partner_id,omitempty"`
	PickupConfirmed   bool       `json:"pickup_confirmed"`
	PickupConfirmedAt *time.Time `json:"pickup_confirmed_date,omitempty"`
	PickupConfirmedBy *uuid.UUID `json:"pickup_confirmed_by,omitempty"`
	DoneAt            *time.Time `json:"done_at,omitempty"`
}

// ToPickingResponse converts a domain picking to its public view
func ToPickingResponse(p *inventory.Picking) PickingResponse {
	return PickingResponse{
		ID:                p.ID,
		Name:              p.Name,
		State:             string(p.State),
		ScheduledDate:     p.ScheduledDate,
		PartnerID:         p.PartnerID,
		Origin:            p.Origin,
		CarrierID:         p.CarrierID,
		PickupPartnerID:   p.PickupPartnerID,
		PickupConfirmed:   p.PickupConfirmed,
		PickupConfirmedAt: p.PickupConfirmedAt,
		PickupConfirmedBy: p.PickupConfirmedBy,
		DoneAt:            p.DoneAt,
	}
}

// ToPickingResponses converts a slice of pickings
func ToPickingResponses(pickings []inventory.Picking) []PickingResponse {
	out := make([]PickingResponse, len(pickings))
	for i := range pickings {
		out[i] = ToPickingResponse(&pickings[i])
	}
	return out
}
