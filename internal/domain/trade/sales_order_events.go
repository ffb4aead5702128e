package trade

import (
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const AggregateTypeSalesOrder = "SalesOrder"

const EventTypeSalesOrderConfirmed = "SalesOrderConfirmed"

// SalesOrderConfirmedEvent is published when an order is confirmed
type SalesOrderConfirmedEvent struct {
	shared.BaseDomainEvent
	OrderID           uuid.UUID       `json:"order_id"`
	OrderNumber       string          `json:"order_number"`
	CustomerID        uuid.UUID       `json:"customer_id"`
	ShippingPartnerID uuid.UUID       `json:"shipping_partner_id"`
	CarrierID         uuid.UUID       `json:"carrier_id"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
}

// NewSalesOrderConfirmedEvent creates a new SalesOrderConfirmedEvent
func NewSalesOrderConfirmedEvent(o *SalesOrder) *SalesOrderConfirmedEvent {
	e := &SalesOrderConfirmedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeSalesOrderConfirmed, AggregateTypeSalesOrder, o.ID),
		OrderID:           o.ID,
		OrderNumber:       o.OrderNumber,
		CustomerID:        o.CustomerID,
		ShippingPartnerID: o.ShippingPartnerID,
		TotalAmount:       o.TotalAmount,
	}
	if o.CarrierID != nil {
		e.CarrierID = *o.CarrierID
	}
	return e
}
