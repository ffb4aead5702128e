package trade

import (
	"fmt"
	"strings"
	"time"

	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of a sales order
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusConfirmed, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusDraft:
		return target == OrderStatusConfirmed || target == OrderStatusCancelled
	case OrderStatusConfirmed:
		return target == OrderStatusCancelled
	}
	return false
}

// SalesOrderLine is one product line of an order
type SalesOrderLine struct {
	ID          uuid.UUID
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal // Quantity * UnitPrice
}

// SalesOrder is a customer order. Its carrier decides where the goods are shipped.
type SalesOrder struct {
	shared.BaseAggregateRoot
	OrderNumber       string
	CustomerID        uuid.UUID
	ShippingPartnerID uuid.UUID
	CarrierID         *uuid.UUID
	Lines             []SalesOrderLine
	TotalAmount       decimal.Decimal
	Status            OrderStatus
	ConfirmedAt       *time.Time
	CancelledAt       *time.Time
}

// NewSalesOrder creates a draft order shipped to the customer's own address
func NewSalesOrder(orderNumber string, customerID uuid.UUID) (*SalesOrder, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}

	return &SalesOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		CustomerID:        customerID,
		ShippingPartnerID: customerID,
		Lines:             make([]SalesOrderLine, 0),
		TotalAmount:       decimal.Zero,
		Status:            OrderStatusDraft,
	}, nil
}

// AddLine appends a product line. Only allowed while draft.
func (o *SalesOrder) AddLine(productName string, quantity, unitPrice decimal.Decimal) (*SalesOrderLine, error) {
	if o.Status != OrderStatusDraft {
		return nil, shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot modify order in %s status", o.Status))
	}
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	line := SalesOrderLine{
		ID:          uuid.New(),
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      quantity.Mul(unitPrice).Round(2),
	}
	o.Lines = append(o.Lines, line)
	o.recalculateTotal()
	o.Touch()

	return &o.Lines[len(o.Lines)-1], nil
}

// SelectCarrier sets the delivery method. When the carrier serves a pickup
// point the order is shipped to that point instead of the customer.
func (o *SalesOrder) SelectCarrier(carrierID uuid.UUID, pickupPartnerID *uuid.UUID) error {
	if o.Status != OrderStatusDraft {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot change carrier of order in %s status", o.Status))
	}
	if carrierID == uuid.Nil {
		return shared.NewDomainError("INVALID_CARRIER", "Carrier ID cannot be empty")
	}

	id := carrierID
	o.CarrierID = &id
	if pickupPartnerID != nil {
		o.ShippingPartnerID = *pickupPartnerID
	}
	o.Touch()

	return nil
}

// SetShippingPartner overrides the delivery address
func (o *SalesOrder) SetShippingPartner(partnerID uuid.UUID) error {
	if o.Status != OrderStatusDraft {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot modify order in %s status", o.Status))
	}
	if partnerID == uuid.Nil {
		return shared.NewDomainError("INVALID_PARTNER", "Shipping partner ID cannot be empty")
	}
	o.ShippingPartnerID = partnerID
	o.Touch()
	return nil
}

// Confirm confirms the order. A carrier and at least one line are required.
func (o *SalesOrder) Confirm() error {
	if !o.Status.CanTransitionTo(OrderStatusConfirmed) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot confirm order in %s status", o.Status))
	}
	if len(o.Lines) == 0 {
		return shared.NewDomainError("NO_ITEMS", "Cannot confirm order without lines")
	}
	if o.CarrierID == nil {
		return shared.NewDomainError("NO_CARRIER", "A delivery method must be selected before confirming")
	}

	now := time.Now()
	o.Status = OrderStatusConfirmed
	o.ConfirmedAt = &now
	o.TouchAt(now)

	o.AddDomainEvent(NewSalesOrderConfirmedEvent(o))

	return nil
}

// Cancel cancels the order
func (o *SalesOrder) Cancel() error {
	if !o.Status.CanTransitionTo(OrderStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot cancel order in %s status", o.Status))
	}

	now := time.Now()
	o.Status = OrderStatusCancelled
	o.CancelledAt = &now
	o.TouchAt(now)

	return nil
}

// IsDraft returns true if the order is still editable
func (o *SalesOrder) IsDraft() bool {
	return o.Status == OrderStatusDraft
}

func (o *SalesOrder) recalculateTotal() {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.Amount)
	}
	o.TotalAmount = total
}
