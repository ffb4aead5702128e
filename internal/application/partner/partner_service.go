package partner

import (
	"context"

	"github.com/Olpagroup25/insa/internal/domain/partner"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PartnerService handles contact management
type PartnerService struct {
	partnerRepo partner.PartnerRepository
	logger      *zap.Logger
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(partnerRepo partner.PartnerRepository, logger *zap.Logger) *PartnerService {
	return &PartnerService{
		partnerRepo: partnerRepo,
		logger:      logger,
	}
}

// Create creates a new partner
func (s *PartnerService) Create(ctx context.Context, req CreatePartnerRequest) (*PartnerResponse, error) {
	p, err := partner.NewPartner(req.Name)
	if err != nil {
		return nil, err
	}
	if err := p.SetAddress(req.Address.toDomain()); err != nil {
		return nil, err
	}
	if err := p.SetContact(req.Phone, req.Mobile, req.Email); err != nil {
		return nil, err
	}
	if err := p.SetCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("Partner created", zap.String("partner_id", p.ID.String()))

	response := ToPartnerResponse(p)
	return &response, nil
}

// GetByID retrieves a partner by ID
func (s *PartnerService) GetByID(ctx context.Context, id uuid.UUID) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPartnerResponse(p)
	return &response, nil
}

// List retrieves partners with filtering and pagination
func (s *PartnerService) List(ctx context.Context, filter PartnerListFilter) ([]PartnerResponse, int64, error) {
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
	if filter.City != "" {
		domainFilter.Filters["city"] = filter.City
	}

	partners, err := s.partnerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.partnerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PartnerResponse, len(partners))
	for i := range partners {
		responses[i] = ToPartnerResponse(&partners[i])
	}
	return responses, total, nil
}

// Update changes the given fields of a partner
func (s *PartnerService) Update(ctx context.Context, id uuid.UUID, req UpdatePartnerRequest) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := p.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Address != nil {
		if err := p.SetAddress(req.Address.toDomain()); err != nil {
			return nil, err
		}
	}
	if req.Phone != nil || req.Mobile != nil || req.Email != nil {
		if err := p.SetContact(valueOr(req.Phone, p.Phone), valueOr(req.Mobile, p.Mobile), valueOr(req.Email, p.Email)); err != nil {
			return nil, err
		}
	}
	if req.Latitude != nil || req.Longitude != nil {
		if err := p.SetCoordinates(valueOr(req.Latitude, p.Latitude), valueOr(req.Longitude, p.Longitude)); err != nil {
			return nil, err
		}
	}

	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	response := ToPartnerResponse(p)
	return &response, nil
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
