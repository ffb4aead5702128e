package models

import (
	"time"

	"github.com/Olpagroup25/insa/internal/domain/inventory"
	"github.com/google/uuid"
)

// PickingModel is the persistence model for the Picking aggregate.
type PickingModel struct {
	AggregateModel
	Name                string                 `gorm:"type:varchar(100);not null;uniqueIndex"`
	State               inventory.PickingState `gorm:"type:varchar(20);not null;index"`
	ScheduledDate       time.Time              `gorm:"not null;index"`
	PartnerID           *uuid.UUID             `gorm:"type:uuid;index"`
	Origin              string                 `gorm:"type:varchar(100)"`
	CarrierID           *uuid.UUID             `gorm:"type:uuid;index"`
	PickupPartnerID     *uuid.UUID             `gorm:"type:uuid;index"`
	PickupConfirmed     bool                   `gorm:"not null"`
	PickupConfirmedDate *time.Time
	PickupConfirmedBy   *uuid.UUID `gorm:"type:uuid"`
	DoneAt              *time.Time
}

// TableName returns the table name for GORM
func (PickingModel) TableName() string {
	return "stock_pickings"
}

// ToDomain converts the persistence model to a domain Picking
func (m *PickingModel) ToDomain() *inventory.Picking {
	return &inventory.Picking{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		State:             m.State,
		ScheduledDate:     m.ScheduledDate,
		PartnerID:         m.PartnerID,
		Origin:            m.Origin,
		CarrierID:         m.CarrierID,
		PickupPartnerID:   m.PickupPartnerID,
		PickupConfirmed:   m.PickupConfirmed,
		PickupConfirmedAt: m.PickupConfirmedDate,
		PickupConfirmedBy: m.PickupConfirmedBy,
		DoneAt:            m.DoneAt,
	}
}

// PickingModelFromDomain creates a persistence model from a domain Picking
func PickingModelFromDomain(p *inventory.Picking) *PickingModel {
	m := &PickingModel{
		Name:                p.Name,
		State:               p.State,
		ScheduledDate:       p.ScheduledDate,
		PartnerID:           p.PartnerID,
		Origin:              p.Origin,
		CarrierID:           p.CarrierID,
		PickupPartnerID:     p.PickupPartnerID,
		PickupConfirmed:     p.PickupConfirmed,
		PickupConfirmedDate: p.PickupConfirmedAt,
		PickupConfirmedBy:   p.PickupConfirmedBy,
		DoneAt:              p.DoneAt,
	}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m
}
