package models

import (
	"time"

	"github.com/Olpagroup25/insa/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesOrderModel is the persistence model for the SalesOrder aggregate.
type SalesOrderModel struct {
	AggregateModel
	OrderNumber       string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID        uuid.UUID             `gorm:"type:uuid;not null;index"`
	ShippingPartnerID uuid.UUID             `gorm:"type:uuid;not null"`
	CarrierID         *uuid.UUID            `gorm:"type:uuid;index"`
	Lines             []SalesOrderLineModel `gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount       decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	Status            trade.OrderStatus     `gorm:"type:varchar(20);not null;default:'draft'"`
	ConfirmedAt       *time.Time
	CancelledAt       *time.Time
}

// TableName returns the table name for GORM
func (SalesOrderModel) TableName() string {
	return "sales_orders"
}

// ToDomain converts the persistence model to a domain SalesOrder
func (m *SalesOrderModel) ToDomain() *trade.SalesOrder {
	lines := make([]trade.SalesOrderLine, len(m.Lines))
	for i := range m.Lines {
		lines[i] = m.Lines[i].ToDomain()
	}
	return &trade.SalesOrder{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		OrderNumber:       m.OrderNumber,
		CustomerID:        m.CustomerID,
		ShippingPartnerID: m.ShippingPartnerID,
		CarrierID:         m.CarrierID,
		Lines:             lines,
		TotalAmount:       m.TotalAmount,
		Status:            m.Status,
		ConfirmedAt:       m.ConfirmedAt,
		CancelledAt:       m.CancelledAt,
	}
}

// SalesOrderModelFromDomain creates a persistence model from a domain SalesOrder
func SalesOrderModelFromDomain(o *trade.SalesOrder) *SalesOrderModel {
	m := &SalesOrderModel{
		OrderNumber:       o.OrderNumber,
		CustomerID:        o.CustomerID,
		ShippingPartnerID: o.ShippingPartnerID,
		CarrierID:         o.CarrierID,
		TotalAmount:       o.TotalAmount,
		Status:            o.Status,
		ConfirmedAt:       o.ConfirmedAt,
		CancelledAt:       o.CancelledAt,
	}
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.Lines = make([]SalesOrderLineModel, len(o.Lines))
	for i, l := range o.Lines {
		m.Lines[i] = SalesOrderLineModel{
			ID:          l.ID,
			OrderID:     o.ID,
			LineNo:      i + 1,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Amount:      l.Amount,
		}
	}
	return m
}

// SalesOrderLineModel is the persistence model for a sales order line.
type SalesOrderLineModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	LineNo      int             `gorm:"not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (SalesOrderLineModel) TableName() string {
	return "sales_order_lines"
}

// ToDomain converts the persistence model to a domain SalesOrderLine
func (m *SalesOrderLineModel) ToDomain() trade.SalesOrderLine {
	return trade.SalesOrderLine{
		ID:          m.ID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Amount:      m.Amount,
	}
}
