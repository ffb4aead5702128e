package inventory

import (
	"context"
	"fmt"

	"github.com/Olpagroup25/insa/internal/domain/delivery"
	"github.com/Olpagroup25/insa/internal/domain/inventory"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"go.uber.org/zap"
)

// CarrierPickupPartnerChangedHandler re-mirrors the pickup partner onto every
// picking of a carrier whose pickup partner changed
type CarrierPickupPartnerChangedHandler struct {
	pickingRepo inventory.PickingRepository
	logger      *zap.Logger
}

// NewCarrierPickupPartnerChangedHandler creates a new handler
func NewCarrierPickupPartnerChangedHandler(pickingRepo inventory.PickingRepository, logger *zap.Logger) *CarrierPickupPartnerChangedHandler {
	return &CarrierPickupPartnerChangedHandler{
		pickingRepo: pickingRepo,
		logger:      logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *CarrierPickupPartnerChangedHandler) EventTypes() []string {
	return []string{delivery.EventTypeCarrierPickupPartnerChanged}
}

// Handle processes a CarrierPickupPartnerChangedEvent
func (h *CarrierPickupPartnerChangedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	changed, ok := event.(*delivery.CarrierPickupPartnerChangedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", delivery.EventTypeCarrierPickupPartnerChanged),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			delivery.EventTypeCarrierPickupPartnerChanged, event.EventType())
	}

	rows, err := h.pickingRepo.SyncPickupPartner(ctx, changed.CarrierID, changed.PickupPartnerID)
	if err != nil {
		return fmt.Errorf("resync pickup partner of carrier %s: %w", changed.CarrierID, err)
	}

	pickupPartner := ""
	if changed.PickupPartnerID != nil {
		pickupPartner = changed.PickupPartnerID.String()
	}
	h.logger.Info("Pickings resynced to carrier pickup partner",
		zap.String("carrier_id", changed.CarrierID.String()),
		zap.String("pickup_partner_id", pickupPartner),
		zap.Int64("pickings", rows),
	)
	return nil
}

var _ shared.EventHandler = (*CarrierPickupPartnerChangedHandler)(nil)
