package delivery

import (
	"context"

	"github.com/Olpagroup25/insa/internal/domain/delivery"
	"github.com/Olpagroup25/insa/internal/domain/partner"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errUnknownPartner = shared.NewDomainError("INVALID_PARTNER", "Pickup partner does not exist")

// CarrierService handles carrier business operations
type CarrierService struct {
	carrierRepo    delivery.CarrierRepository
	partnerRepo    partner.PartnerRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewCarrierService creates a new CarrierService
func NewCarrierService(carrierRepo delivery.CarrierRepository, partnerRepo partner.PartnerRepository, logger *zap.Logger) *CarrierService {
	return &CarrierService{
		carrierRepo: carrierRepo,
		partnerRepo: partnerRepo,
		logger:      logger,
	}
}

// SetEventPublisher sets the publisher for CarrierPickupPartnerChanged
func (s *CarrierService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new carrier, optionally linked to a pickup point
func (s *CarrierService) Create(ctx context.Context, req CreateCarrierRequest) (*CarrierResponse, error) {
	carrier, err := delivery.NewCarrier(req.Name)
	if err != nil {
		return nil, err
	}
	if err := carrier.SetPickupHours(req.PickupHours); err != nil {
		return nil, err
	}
	if req.PickupPartnerID != nil {
		if err := s.ensurePartner(ctx, *req.PickupPartnerID); err != nil {
			return nil, err
		}
		if err := carrier.AssignPickupPartner(*req.PickupPartnerID); err != nil {
			return nil, err
		}
	}
	// a new carrier has no pickings to resync
	carrier.ClearDomainEvents()

	if err := s.carrierRepo.Save(ctx, carrier); err != nil {
		return nil, err
	}
	s.logger.Info("Carrier created",
		zap.String("carrier_id", carrier.ID.String()),
		zap.Bool("pickup_point", carrier.IsPickupPoint()),
	)

	response := ToCarrierResponse(carrier)
	return &response, nil
}

// GetByID retrieves a carrier by ID
func (s *CarrierService) GetByID(ctx context.Context, id uuid.UUID) (*CarrierResponse, error) {
	carrier, err := s.carrierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCarrierResponse(carrier)
	return &response, nil
}

// List retrieves carriers with filtering and pagination
func (s *CarrierService) List(ctx context.Context, filter CarrierListFilter) ([]CarrierResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "name",
		OrderDir: "asc",
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.PickupOnly {
		domainFilter.Filters["is_pickup_point"] = true
	}

	carriers, err := s.carrierRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.carrierRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CarrierResponse, len(carriers))
	for i := range carriers {
		responses[i] = ToCarrierResponse(&carriers[i])
	}
	return responses, total, nil
}

// Update renames a carrier or changes its pickup hours
func (s *CarrierService) Update(ctx context.Context, id uuid.UUID, req UpdateCarrierRequest) (*CarrierResponse, error) {
	carrier, err := s.carrierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if err := carrier.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.PickupHours != nil {
		if err := carrier.SetPickupHours(*req.PickupHours); err != nil {
			return nil, err
		}
	}
	if err := s.carrierRepo.Save(ctx, carrier); err != nil {
		return nil, err
	}
	response := ToCarrierResponse(carrier)
	return &response, nil
}

// AssignPickupPartner turns the carrier into a pickup point served by partnerID.
// Pickings of the carrier follow through CarrierPickupPartnerChanged.
func (s *CarrierService) AssignPickupPartner(ctx context.Context, id, partnerID uuid.UUID) (*CarrierResponse, error) {
	if err := s.ensurePartner(ctx, partnerID); err != nil {
		return nil, err
	}
	return s.changePickupPartner(ctx, id, func(c *delivery.Carrier) error {
		return c.AssignPickupPartner(partnerID)
	})
}

// ClearPickupPartner turns the carrier back into a regular delivery method
func (s *CarrierService) ClearPickupPartner(ctx context.Context, id uuid.UUID) (*CarrierResponse, error) {
	return s.changePickupPartner(ctx, id, func(c *delivery.Carrier) error {
		c.ClearPickupPartner()
		return nil
	})
}

func (s *CarrierService) changePickupPartner(ctx context.Context, id uuid.UUID, apply func(*delivery.Carrier) error) (*CarrierResponse, error) {
	carrier, err := s.carrierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(carrier); err != nil {
		return nil, err
	}
	if err := s.carrierRepo.Save(ctx, carrier); err != nil {
		return nil, err
	}

	if err := shared.PublishPending(ctx, s.eventPublisher, carrier); err != nil {
		s.logger.Error("Failed to publish events", zap.Error(err))
	}

	response := ToCarrierResponse(carrier)
	return &response, nil
}

func (s *CarrierService) ensurePartner(ctx context.Context, partnerID uuid.UUID) error {
	exists, err := s.partnerRepo.ExistsByID(ctx, partnerID)
	if err != nil {
		return err
	}
	if !exists {
		return errUnknownPartner
	}
	return nil
}
