package trade

import (
	"time"

	"github.com/Olpagroup25/insa/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSalesOrderRequest represents a request to create a sales order
type CreateSalesOrderRequest struct {
	OrderNumber string                      `json:"order_number" binding:"required,min=1,max=50"`
	CustomerID  uuid.UUID                   `json:"customer_id" binding:"required"`
	Lines       []CreateSalesOrderLineInput `json:"lines" binding:"dive"`
}

// CreateSalesOrderLineInput represents a line in the create order request
type CreateSalesOrderLineInput struct {
	ProductName string          `json:"product_name" binding:"required,min=1,max=200"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// SelectCarrierRequest chooses the delivery method of an order
type SelectCarrierRequest struct {
	CarrierID uuid.UUID `json:"carrier_id" binding:"required"`
}

// SalesOrderListFilter represents filter options for listing orders
type SalesOrderListFilter struct {
	Search     string     `form:"search"`
	Status     string     `form:"status" binding:"omitempty,oneof=draft confirmed cancelled"`
	CustomerID *uuid.UUID `form:"customer_id"`
	CarrierID  *uuid.UUID `form:"carrier_id"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// SalesOrderLineResponse represents an order line in API responses
type SalesOrderLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// SalesOrderResponse represents a sales order in API responses
type SalesOrderResponse struct {
	ID                uuid.UUID                `json:"id"`
	OrderNumber       string                   `json:"order_number"`
	CustomerID        uuid.UUID                `json:"customer_id"`
	ShippingPartnerID uuid.UUID                `json:"shipping_partner_id"`
	CarrierID         *uuid.UUID               `json:"carrier_id,omitempty"`
	Lines             []SalesOrderLineResponse `json:"lines"`
	TotalAmount       decimal.Decimal          `json:"total_amount"`
	Status            string                   `json:"status"`
	ConfirmedAt       *time.Time               `json:"confirmed_at,omitempty"`
	CancelledAt       *time.Time               `json:"cancelled_at,omitempty"`
	PickingName       string                   `json:"picking_name,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

// ToSalesOrderResponse converts a domain order to a response
func ToSalesOrderResponse(o *trade.SalesOrder) SalesOrderResponse {
	lines := make([]SalesOrderLineResponse, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = SalesOrderLineResponse{
			ID:          l.ID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Amount:      l.Amount,
		}
	}
	return SalesOrderResponse{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		CustomerID:        o.CustomerID,
		ShippingPartnerID: o.ShippingPartnerID,
		CarrierID:         o.CarrierID,
		Lines:             lines,
		TotalAmount:       o.TotalAmount,
		Status:            string(o.Status),
		ConfirmedAt:       o.ConfirmedAt,
		CancelledAt:       o.CancelledAt,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}
