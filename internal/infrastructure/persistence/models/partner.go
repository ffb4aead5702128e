package models

import (
	"github.com/Olpagroup25/insa/internal/domain/partner"
)

// PartnerModel is the persistence model for the Partner aggregate.
type PartnerModel struct {
	AggregateModel
	Name        string  `gorm:"type:varchar(200);not null;index"`
	Street      string  `gorm:"type:varchar(200)"`
	Street2     string  `gorm:"type:varchar(200)"`
	Zip         string  `gorm:"type:varchar(20)"`
	City        string  `gorm:"type:varchar(200)"`
	StateName   string  `gorm:"type:varchar(200)"`
	CountryName string  `gorm:"type:varchar(200)"`
	Phone       string  `gorm:"type:varchar(50)"`
	Mobile      string  `gorm:"type:varchar(50)"`
	Email       string  `gorm:"type:varchar(200);index"`
	Latitude    float64 `gorm:"not null"`
	Longitude   float64 `gorm:"not null"`
	Active      bool    `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (PartnerModel) TableName() string {
	return "partners"
}

// ToDomain converts the persistence model to a domain Partner
func (m *PartnerModel) ToDomain() *partner.Partner {
	return &partner.Partner{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Address: partner.Address{
			Street:  m.Street,
			Street2: m.Street2,
			Zip:     m.Zip,
			City:    m.City,
			State:   m.StateName,
			Country: m.CountryName,
		},
		Phone:     m.Phone,
		Mobile:    m.Mobile,
		Email:     m.Email,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		Active:    m.Active,
	}
}

// PartnerModelFromDomain creates a persistence model from a domain Partner
func PartnerModelFromDomain(p *partner.Partner) *PartnerModel {
	m := &PartnerModel{
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
	}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m
}
