package trade

import (
	"context"
	"time"

	"github.com/Olpagroup25/insa/internal/domain/delivery"
	"github.com/Olpagroup25/insa/internal/domain/inventory"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/Olpagroup25/insa/internal/domain/trade"
	"github.com/Olpagroup25/insa/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// PickingNamePrefix prefixes the reference of outgoing pickings, e.g. "WH/OUT/S00042"
const PickingNamePrefix = "WH/OUT/"

// SalesOrderService handles sales order business operations
type SalesOrderService struct {
	orderRepo      trade.SalesOrderRepository
	carrierRepo    delivery.CarrierRepository
	pickingRepo    inventory.PickingRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
	now            func() time.Time
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(
	orderRepo trade.SalesOrderRepository,
	carrierRepo delivery.CarrierRepository,
	pickingRepo inventory.PickingRepository,
	logger *zap.Logger,
) *SalesOrderService {
	return &SalesOrderService{
		orderRepo:   orderRepo,
		carrierRepo: carrierRepo,
		pickingRepo: pickingRepo,
		txScope:     NewNoOpTransactionScope(orderRepo, pickingRepo),
		logger:      logger,
		now:         time.Now,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *SalesOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetTransactionScope makes Confirm write the order and its picking atomically
func (s *SalesOrderService) SetTransactionScope(scope TransactionScope) {
	s.txScope = scope
}

// Create creates a draft sales order
func (s *SalesOrderService) Create(ctx context.Context, req CreateSalesOrderRequest) (*SalesOrderResponse, error) {
	if _, err := s.orderRepo.FindByOrderNumber(ctx, req.OrderNumber); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Order number is already used")
	} else if !shared.IsNotFound(err) {
		return nil, err
	}

	order, err := trade.NewSalesOrder(req.OrderNumber, req.CustomerID)
	if err != nil {
		return nil, err
	}
	for _, line := range req.Lines {
		if _, err := order.AddLine(line.ProductName, line.Quantity, line.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a sales order by ID
func (s *SalesOrderService) GetByID(ctx context.Context, id uuid.UUID) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSalesOrderResponse(order)
	return &response, nil
}

// List retrieves a list of sales orders with filtering and pagination
func (s *SalesOrderService) List(ctx context.Context, filter SalesOrderListFilter) ([]SalesOrderResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.CustomerID != nil {
		domainFilter.Filters["customer_id"] = *filter.CustomerID
	}
	if filter.CarrierID != nil {
		domainFilter.Filters["carrier_id"] = *filter.CarrierID
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SalesOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToSalesOrderResponse(&orders[i])
	}
	return responses, total, nil
}

// SelectCarrier sets the delivery method. A pickup point carrier redirects
// the shipment to its pickup partner.
func (s *SalesOrderService) SelectCarrier(ctx context.Context, orderID uuid.UUID, req SelectCarrierRequest) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	carrier, err := s.findCarrier(ctx, req.CarrierID)
	if err != nil {
		return nil, err
	}

	if err := order.SelectCarrier(carrier.ID, carrier.PickupPartnerID); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// Confirm confirms a draft order and creates its outgoing picking, ready for
// delivery with the carrier's pickup partner mirrored onto it
func (s *SalesOrderService) Confirm(ctx context.Context, orderID uuid.UUID) (_ *SalesOrderResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "sales_order", "confirm",
		attribute.String("order_id", orderID.String()),
	)
	defer telemetry.End(span, &err)

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Confirm(); err != nil {
		return nil, err
	}
	carrier, err := s.findCarrier(ctx, *order.CarrierID)
	if err != nil {
		return nil, err
	}

	picking, err := inventory.NewPicking(PickingNamePrefix+order.OrderNumber, s.now())
	if err != nil {
		return nil, err
	}
	picking.SetCustomer(order.ShippingPartnerID, order.OrderNumber)
	picking.AssignCarrier(carrier.ID, carrier.PickupPartnerID)
	if err := picking.MarkAssigned(); err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.OrderRepo().Save(ctx, order); err != nil {
			return err
		}
		return repos.PickingRepo().Save(ctx, picking)
	})
	if err != nil {
		s.logger.Error("Failed to confirm sales order",
			zap.String("order", order.OrderNumber),
			zap.String("picking", picking.Name),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Sales order confirmed",
		zap.String("order", order.OrderNumber),
		zap.String("picking", picking.Name),
		zap.Bool("pickup_point", carrier.IsPickupPoint()),
	)
	s.publish(ctx, order)

	response := ToSalesOrderResponse(order)
	response.PickingName = picking.Name
	return &response, nil
}

// Cancel cancels an order
func (s *SalesOrderService) Cancel(ctx context.Context, orderID uuid.UUID) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Cancel(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	response := ToSalesOrderResponse(order)
	return &response, nil
}

func (s *SalesOrderService) findCarrier(ctx context.Context, id uuid.UUID) (*delivery.Carrier, error) {
	carrier, err := s.carrierRepo.FindByID(ctx, id)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewDomainError("INVALID_CARRIER", "Carrier does not exist")
		}
		return nil, err
	}
	return carrier, nil
}

func (s *SalesOrderService) publish(ctx context.Context, order *trade.SalesOrder) {
	if err := shared.PublishPending(ctx, s.eventPublisher, order); err != nil {
		s.logger.Error("Failed to publish events", zap.Error(err))
	}
}
