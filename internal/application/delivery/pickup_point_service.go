package delivery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Olpagroup25/insa/internal/domain/delivery"
	"github.com/Olpagroup25/insa/internal/domain/partner"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/Olpagroup25/insa/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const mapSearchURL = "https://www.google.com/maps/search/?api=1&query="

// ErrNotPickupPoint is returned for unknown carriers and carriers without a pickup partner
var ErrNotPickupPoint = shared.NewDomainError("NOT_PICKUP_POINT", "Carrier is not a pickup point")

// PickupPointService answers the checkout's pickup point popup
type PickupPointService struct {
	carrierRepo delivery.CarrierRepository
	partnerRepo partner.PartnerRepository
}

// NewPickupPointService creates a new PickupPointService
func NewPickupPointService(carrierRepo delivery.CarrierRepository, partnerRepo partner.PartnerRepository) *PickupPointService {
	return &PickupPointService{
		carrierRepo: carrierRepo,
		partnerRepo: partnerRepo,
	}
}

// Info returns the pickup point summary of a carrier
func (s *PickupPointService) Info(ctx context.Context, carrierID uuid.UUID) (_ *PickupPointInfo, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "pickup_point", "info",
		attribute.String("carrier_id", carrierID.String()),
	)
	defer telemetry.End(span, &err)

	carrier, err := s.carrierRepo.FindByID(ctx, carrierID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, ErrNotPickupPoint
		}
		return nil, err
	}
	if !carrier.IsPickupPoint() {
		return nil, ErrNotPickupPoint
	}

	point, err := s.partnerRepo.FindByID(ctx, *carrier.PickupPartnerID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, ErrNotPickupPoint
		}
		return nil, err
	}

	full := point.Address.Full()
	return &PickupPointInfo{
		CarrierName:     carrier.Name,
		PartnerName:     point.Name,
		Phone:           point.ContactPhone(),
		Email:           point.Email,
		AddressLine1:    point.Address.Line1(),
		AddressLine2:    point.Address.Line2(),
		FullAddress:     full,
		PickupHours:     carrier.PickupHours,
		PartnerImageURL: PartnerImageURL(point.ID),
		Latitude:        point.Latitude,
		Longitude:       point.Longitude,
		MapURL:          MapURL(full),
	}, nil
}

// PartnerImageURL is the avatar path of a partner
func PartnerImageURL(partnerID uuid.UUID) string {
	return fmt.Sprintf("/web/image/res.partner/%s/avatar_128", partnerID)
}

// MapURL links to a map search for address, percent-encoded like encodeURIComponent
func MapURL(address string) string {
	return mapSearchURL + strings.ReplaceAll(url.QueryEscape(address), "+", "%20")
}
