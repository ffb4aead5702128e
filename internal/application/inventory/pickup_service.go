package inventory

import (
	"context"
	"time"

	"github.com/Olpagroup25/insa/internal/domain/inventory"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/Olpagroup25/insa/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Searchbar keys of the shipment list
const (
	SortByDate  = "date"
	SortByName  = "name"
	SortByState = "state"

	FilterAll       = "all"
	FilterPending   = "pending"
	FilterConfirmed = "confirmed"

	DefaultSortBy   = SortByDate
	DefaultFilterBy = FilterPending
)

// Sortings lists the list orderings in display order
var Sortings = []Option{
	{Key: SortByDate, Label: "Fecha más reciente"},
	{Key: SortByName, Label: "Referencia"},
	{Key: SortByState, Label: "Estado"},
}

// Filters lists the list filters in display order
var Filters = []Option{
	{Key: FilterAll, Label: "Todos"},
	{Key: FilterPending, Label: "Pendientes"},
	{Key: FilterConfirmed, Label: "Confirmados"},
}

var sortKeys = map[string]inventory.PickupSort{
	SortByDate:  inventory.PickupSortDate,
	SortByName:  inventory.PickupSortName,
	SortByState: inventory.PickupSortState,
}

// errNotAccessible hides whether a picking is missing or belongs to another point
var errNotAccessible = shared.NewDomainError("NOT_FOUND", "Shipment not found")

// PickupService serves the pickup point portal.
// Every operation is scoped to the caller's partner.
type PickupService struct {
	pickingRepo    inventory.PickingRepository
	eventPublisher shared.EventPublisher
	pageSize       int
	logger         *zap.Logger
	now            func() time.Time
}

// NewPickupService creates a new PickupService
func NewPickupService(pickingRepo inventory.PickingRepository, pageSize int, logger *zap.Logger) *PickupService {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &PickupService{
		pickingRepo: pickingRepo,
		pageSize:    pageSize,
		logger:      logger,
		now:         time.Now,
	}
}

// SetEventPublisher sets the publisher for PickupConfirmed
func (s *PickupService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// List returns one page of the shipments routed to the caller's pickup point
func (s *PickupService) List(ctx context.Context, input PickupListInput) (_ *PickupListResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "pickup", "list",
		attribute.String("partner_id", input.PartnerID.String()),
	)
	defer telemetry.End(span, &err)

	sortBy, filterBy := normalizeSortBy(input.SortBy), normalizeFilterBy(input.FilterBy)
	query := s.baseQuery(input.PartnerID)
	query.Sort = sortKeys[sortBy]
	query.Confirmed = confirmedFilter(filterBy)

	total, err := s.pickingRepo.CountForPickupPartner(ctx, query)
	if err != nil {
		return nil, err
	}
	pager := NewPager(total, input.Page, s.pageSize)
	query.Offset = pager.Offset
	query.Limit = pager.PageSize

	pickings, err := s.pickingRepo.FindForPickupPartner(ctx, query)
	if err != nil {
		return nil, err
	}

	return &PickupListResult{
		Items:    ToPickingResponses(pickings),
		Pager:    pager,
		SortBy:   sortBy,
		FilterBy: filterBy,
		Sortings: Sortings,
		Filters:  Filters,
	}, nil
}

// Count returns the number of shipments shown on the portal home counter
func (s *PickupService) Count(ctx context.Context, partnerID uuid.UUID) (int64, error) {
	return s.pickingRepo.CountForPickupPartner(ctx, s.baseQuery(partnerID))
}

// Get returns one shipment if it is routed to the caller's pickup point
func (s *PickupService) Get(ctx context.Context, partnerID, pickingID uuid.UUID) (*PickingResponse, error) {
	picking, err := s.load(ctx, partnerID, pickingID)
	if err != nil {
		return nil, err
	}
	response := ToPickingResponse(picking)
	return &response, nil
}

// Confirm records that the customer collected the shipment.
// Confirming an already confirmed shipment succeeds without changes.
func (s *PickupService) Confirm(ctx context.Context, partnerID, pickingID, userID uuid.UUID) (_ *PickupConfirmResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "pickup", "confirm",
		attribute.String("picking_id", pickingID.String()),
		attribute.String("partner_id", partnerID.String()),
	)
	defer telemetry.End(span, &err)

	picking, err := s.load(ctx, partnerID, pickingID)
	if err != nil {
		return nil, err
	}

	changed, err := picking.ConfirmPickup(userID, s.now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return &PickupConfirmResult{Picking: ToPickingResponse(picking)}, nil
	}

	won, err := s.pickingRepo.SavePickupConfirmation(ctx, picking)
	if err != nil {
		return nil, err
	}
	if !won {
		// another request confirmed first; report the stored confirmation
		picking.ClearDomainEvents()
		stored, findErr := s.pickingRepo.FindByID(ctx, pickingID)
		if findErr != nil {
			return nil, findErr
		}
		return &PickupConfirmResult{Picking: ToPickingResponse(stored)}, nil
	}

	s.logger.Info("Pickup confirmed",
		zap.String("picking", picking.Name),
		zap.String("partner_id", partnerID.String()),
		zap.String("user_id", userID.String()),
	)
	s.publish(ctx, picking)

	return &PickupConfirmResult{Picking: ToPickingResponse(picking), Confirmed: true}, nil
}

func (s *PickupService) load(ctx context.Context, partnerID, pickingID uuid.UUID) (*inventory.Picking, error) {
	picking, err := s.pickingRepo.FindByID(ctx, pickingID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, errNotAccessible
		}
		return nil, err
	}
	if !picking.IsOwnedBy(partnerID) {
		s.logger.Warn("Pickup point accessed a foreign shipment",
			zap.String("picking_id", pickingID.String()),
			zap.String("partner_id", partnerID.String()),
		)
		return nil, errNotAccessible
	}
	return picking, nil
}

func (s *PickupService) baseQuery(partnerID uuid.UUID) inventory.PickupQuery {
	return inventory.PickupQuery{
		PickupPartnerID: partnerID,
		States:          inventory.PortalVisibleStates,
	}
}

func (s *PickupService) publish(ctx context.Context, picking *inventory.Picking) {
	if err := shared.PublishPending(ctx, s.eventPublisher, picking); err != nil {
		s.logger.Error("Failed to publish events", zap.Error(err))
	}
}

func normalizeSortBy(key string) string {
	if _, ok := sortKeys[key]; ok {
		return key
	}
	return DefaultSortBy
}

func normalizeFilterBy(key string) string {
	switch key {
	case FilterAll, FilterPending, FilterConfirmed:
		return key
	}
	return DefaultFilterBy
}

func confirmedFilter(filterBy string) *bool {
	switch filterBy {
	case FilterPending:
		v := false
		return &v
	case FilterConfirmed:
		v := true
		return &v
	}
	return nil
}
