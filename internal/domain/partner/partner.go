package partner

import (
	"regexp"
	"strings"

	"github.com/Olpagroup25/insa/internal/domain/shared"
)

// Partner is a contact: a customer, a company or an external pickup-point business.
// It is the aggregate root for contact data.
type Partner struct {
	shared.BaseAggregateRoot
	Name      string
	Address   Address
	Phone     string
	Mobile    string
	Email     string
	Latitude  float64
	Longitude float64
	Active    bool
}

// NewPartner creates a new active partner
func NewPartner(name string) (*Partner, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	p := &Partner{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Active:            true,
	}
	p.AddDomainEvent(NewPartnerCreatedEvent(p))

	return p, nil
}

// Rename changes the partner's display name
func (p *Partner) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}

	p.Name = name
	p.Touch()
	p.AddDomainEvent(NewPartnerUpdatedEvent(p))

	return nil
}

// SetAddress replaces the postal address
func (p *Partner) SetAddress(addr Address) error {
	for _, part := range []string{addr.Street, addr.Street2, addr.City, addr.State, addr.Country} {
		if len(part) > 200 {
			return shared.NewDomainError("INVALID_ADDRESS", "Address fields cannot exceed 200 characters")
		}
	}
	if len(addr.Zip) > 20 {
		return shared.NewDomainError("INVALID_ADDRESS", "Zip cannot exceed 20 characters")
	}

	p.Address = Address{
		Street:  strings.TrimSpace(addr.Street),
		Street2: strings.TrimSpace(addr.Street2),
		Zip:     strings.TrimSpace(addr.Zip),
		City:    strings.TrimSpace(addr.City),
		State:   strings.TrimSpace(addr.State),
		Country: strings.TrimSpace(addr.Country),
	}
	p.Touch()

	return nil
}

// SetContact sets phone, mobile and email
func (p *Partner) SetContact(phone, mobile, email string) error {
	if err := validatePhone(phone); err != nil {
		return err
	}
	if err := validatePhone(mobile); err != nil {
		return err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	p.Phone = strings.TrimSpace(phone)
	p.Mobile = strings.TrimSpace(mobile)
	p.Email = email
	p.Touch()

	return nil
}

// SetCoordinates sets the geolocation. Zero means unknown.
func (p *Partner) SetCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return shared.NewDomainError("INVALID_COORDINATES", "Latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return shared.NewDomainError("INVALID_COORDINATES", "Longitude must be between -180 and 180")
	}

	p.Latitude = lat
	p.Longitude = lng
	p.Touch()

	return nil
}

// Archive deactivates the partner
func (p *Partner) Archive() {
	p.Active = false
	p.Touch()
}

// ContactPhone returns the landline, falling back to the mobile number
func (p *Partner) ContactPhone() string {
	if p.Phone != "" {
		return p.Phone
	}
	return p.Mobile
}

// HasCoordinates returns true if both latitude and longitude are known
func (p *Partner) HasCoordinates() bool {
	return p.Latitude != 0 && p.Longitude != 0
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Partner name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Partner name cannot exceed 200 characters")
	}
	return nil
}

var phonePattern = regexp.MustCompile(`^[0-9+()\-. ]*$`)

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	if !phonePattern.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Phone contains invalid characters")
	}
	return nil
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
