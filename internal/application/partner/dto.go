package partner

import (
	"time"

	"github.com/Olpagroup25/insa/internal/domain/partner"
	"github.com/google/uuid"
)

// AddressInput is the postal address part of partner requests
type AddressInput struct {
	Street      string `json:"street" binding:"max=200"`
	Street2     string `json:"street2" binding:"max=200"`
	Zip         string `json:"zip" binding:"max=20"`
	City        string `json:"city" binding:"max=200"`
	StateName   string `json:"state_name" binding:"max=200"`
	CountryName string `json:"country_name" binding:"max=200"`
}

func (a AddressInput) toDomain() partner.Address {
	return partner.Address{
		Street:  a.Street,
		Street2: a.Street2,
		Zip:     a.Zip,
		City:    a.City,
		State:   a.StateName,
		Country: a.CountryName,
	}
}

// CreatePartnerRequest represents a request to create a partner
type CreatePartnerRequest struct {
	Name      string       `json:"name" binding:"required,min=1,max=200"`
	Address   AddressInput `json:"address"`
	Phone     string       `json:"phone" binding:"max=50"`
	Mobile    string       `json:"mobile" binding:"max=50"`
	Email     string       `json:"email" binding:"omitempty,email,max=200"`
	Latitude  float64      `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64      `json:"longitude" binding:"min=-180,max=180"`
}

// UpdatePartnerRequest represents a request to update a partner.
// Nil fields are left unchanged.
type UpdatePartnerRequest struct {
	Name      *string       `json:"name" binding:"omitempty,min=1,max=200"`
	Address   *AddressInput `json:"address"`
	Phone     *string       `json:"phone" binding:"omitempty,max=50"`
	Mobile    *string       `json:"mobile" binding:"omitempty,max=50"`
	Email     *string       `json:"email" binding:"omitempty,max=200"`
	Latitude  *float64      `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64      `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

// PartnerListFilter represents filter options for listing partners
type PartnerListFilter struct {
	Search   string `form:"search"`
	City     string `form:"city"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// PartnerResponse represents a partner in API responses
type PartnerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Street      string    `json:"street,omitempty"`
	Street2     string    `json:"street2,omitempty"`
	Zip         string    `json:"zip,omitempty"`
	City        string    `json:"city,omitempty"`
	StateName   string    `json:"state_name,omitempty"`
	CountryName string    `json:"country_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Mobile      string    `json:"mobile,omitempty"`
	Email       string    `json:"email,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToPartnerResponse converts a domain partner to a response
func ToPartnerResponse(p *partner.Partner) PartnerResponse {
	return PartnerResponse{
		ID:          p.ID,
		Name:        p.Name,
		Street:      p.Address.Street,
		Street2:     p.Address.Street2,
		Zip:         p.Address.Zip,
		City:        p.Address.City,
		StateName:   p.Address.State,
		CountryName: p.Address.Country,
		Phone:       p.Phone,
		Mobile:      p.Mobile,
		Email:       p.Email,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
