package models

import (
	"github.com/Olpagroup25/insa/internal/domain/delivery"
	"github.com/google/uuid"
)

// CarrierModel is the persistence model for the Carrier aggregate.
// There is no is_pickup_point column: it is derived from pickup_partner_id.
type CarrierModel struct {
	AggregateModel
	Name            string     `gorm:"type:varchar(200);not null"`
	PickupPartnerID *uuid.UUID `gorm:"type:uuid;index"`
	PickupHours     string     `gorm:"type:text"`
	Active          bool       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (CarrierModel) TableName() string {
	return "delivery_carriers"
}

// ToDomain converts the persistence model to a domain Carrier
func (m *CarrierModel) ToDomain() *delivery.Carrier {
	return &delivery.Carrier{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		PickupPartnerID:   m.PickupPartnerID,
		PickupHours:       m.PickupHours,
		Active:            m.Active,
	}
}

// CarrierModelFromDomain creates a persistence model from a domain Carrier
func CarrierModelFromDomain(c *delivery.Carrier) *CarrierModel {
	m := &CarrierModel{
		Name:            c.Name,
		PickupPartnerID: c.PickupPartnerID,
		PickupHours:     c.PickupHours,
		Active:          c.Active,
	}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}
