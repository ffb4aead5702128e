package inventory

import (
	"context"

	"github.com/Olpagroup25/insa/internal/domain/inventory"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PickingService handles back-office operations on pickings
type PickingService struct {
	pickingRepo    inventory.PickingRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewPickingService creates a new PickingService
func NewPickingService(pickingRepo inventory.PickingRepository, logger *zap.Logger) *PickingService {
	return &PickingService{
		pickingRepo: pickingRepo,
		logger:      logger,
	}
}

// SetEventPublisher sets the event publisher
func (s *PickingService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// GetByID retrieves a picking by ID
func (s *PickingService) GetByID(ctx context.Context, id uuid.UUID) (*PickingResponse, error) {
	picking, err := s.pickingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPickingResponse(picking)
	return &response, nil
}

// Validate marks an assigned picking as done
func (s *PickingService) Validate(ctx context.Context, id uuid.UUID) (*PickingResponse, error) {
	return s.transition(ctx, id, "validated", (*inventory.Picking).Validate)
}

// Cancel cancels a picking that is not done yet
func (s *PickingService) Cancel(ctx context.Context, id uuid.UUID) (*PickingResponse, error) {
	return s.transition(ctx, id, "cancelled", (*inventory.Picking).Cancel)
}

func (s *PickingService) transition(ctx context.Context, id uuid.UUID, verb string, apply func(*inventory.Picking) error) (*PickingResponse, error) {
	picking, err := s.pickingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(picking); err != nil {
		return nil, err
	}
	if err := s.pickingRepo.Save(ctx, picking); err != nil {
		return nil, err
	}

	s.logger.Info("Picking "+verb, zap.String("picking", picking.Name))
	if err := shared.PublishPending(ctx, s.eventPublisher, picking); err != nil {
		s.logger.Error("Failed to publish events", zap.Error(err))
	}

	response := ToPickingResponse(picking)
	return &response, nil
}
