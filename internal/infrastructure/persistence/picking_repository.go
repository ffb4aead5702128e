package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/Olpagroup25/insa/internal/domain/inventory"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/Olpagroup25/insa/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPickingRepository implements inventory.PickingRepository using GORM
type GormPickingRepository struct {
	db *gorm.DB
}

// NewGormPickingRepository creates a new GormPickingRepository
func NewGormPickingRepository(db *gorm.DB) *GormPickingRepository {
	return &GormPickingRepository{db: db}
}

// FindByID finds a picking by its ID
func (r *GormPickingRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Picking, error) {
	var model models.PickingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a picking by its reference
func (r *GormPickingRepository) FindByName(ctx context.Context, name string) (*inventory.Picking, error) {
	var model models.PickingModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindForPickupPartner returns one page of the pickings routed to a pickup partner
func (r *GormPickingRepository) FindForPickupPartner(ctx context.Context, q inventory.PickupQuery) ([]inventory.Picking, error) {
	order, ok := pickupOrder[q.Sort]
	if !ok {
		order = pickupOrder[inventory.PickupSortDate]
	}

	query := r.pickupScope(ctx, q).Order(order)
	if q.Offset > 0 {
		query = query.Offset(q.Offset)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var pickingModels []models.PickingModel
	if err := query.Find(&pickingModels).Error; err != nil {
		return nil, err
	}

	pickings := make([]inventory.Picking, len(pickingModels))
	for i := range pickingModels {
		pickings[i] = *pickingModels[i].ToDomain()
	}
	return pickings, nil
}

// CountForPickupPartner counts the pickings matching the query, ignoring offset and limit
func (r *GormPickingRepository) CountForPickupPartner(ctx context.Context, q inventory.PickupQuery) (int64, error) {
	var count int64
	err := r.pickupScope(ctx, q).Count(&count).Error
	return count, err
}

// pickupScope restricts pickings to one pickup partner. A nil partner matches nothing.
func (r *GormPickingRepository) pickupScope(ctx context.Context, q inventory.PickupQuery) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.PickingModel{}).
		Where("pickup_partner_id = ?", q.PickupPartnerID)

	if len(q.States) > 0 {
		states := make([]string, len(q.States))
		for i, s := range q.States {
			states[i] = s.String()
		}
		query = query.Where("state IN ?", states)
	}
	if q.Confirmed != nil {
		query = query.Where("pickup_confirmed = ?", *q.Confirmed)
	}
	return query
}

// pickupConfirmationColumns are written on insert and afterwards only by SavePickupConfirmation
var pickupConfirmationColumns = []string{"pickup_confirmed", "pickup_confirmed_date", "pickup_confirmed_by"}

// Save creates or updates a picking. Updates never touch the pickup
// confirmation, so a copy loaded before the customer confirmed cannot reset it.
func (r *GormPickingRepository) Save(ctx context.Context, picking *inventory.Picking) error {
	model := models.PickingModelFromDomain(picking)
	db := r.db.WithContext(ctx)

	result := db.Model(model).Select("*").Omit(pickupConfirmationColumns...).Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}
	return db.Create(model).Error
}

// SavePickupConfirmation writes the confirmation fields with a conditional update,
// so the first confirmation's date and user are never overwritten.
func (r *GormPickingRepository) SavePickupConfirmation(ctx context.Context, picking *inventory.Picking) (bool, error) {
	if !picking.PickupConfirmed || picking.PickupConfirmedAt == nil || picking.PickupConfirmedBy == nil {
		return false, shared.NewDomainError("INVALID_STATE", "Picking has no pickup confirmation to save")
	}

	result := r.db.WithContext(ctx).
		Model(&models.PickingModel{}).
		Where("id = ? AND pickup_confirmed = ?", picking.ID, false).
		Updates(map[string]any{
			"pickup_confirmed":      true,
			"pickup_confirmed_date": *picking.PickupConfirmedAt,
			"pickup_confirmed_by":   *picking.PickupConfirmedBy,
			"updated_at":            picking.UpdatedAt,
			"version":               gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// SyncPickupPartner rewrites the mirrored pickup partner of every picking of a carrier
func (r *GormPickingRepository) SyncPickupPartner(ctx context.Context, carrierID uuid.UUID, pickupPartnerID *uuid.UUID) (int64, error) {
	var value any
	if pickupPartnerID != nil {
		value = *pickupPartnerID
	}

	result := r.db.WithContext(ctx).
		Model(&models.PickingModel{}).
		Where("carrier_id = ?", carrierID).
		Updates(map[string]any{
			"pickup_partner_id": value,
			"updated_at":        time.Now(),
			"version":           gorm.Expr("version + 1"),
		})
	return result.RowsAffected, result.Error
}

// Ensure GormPickingRepository implements PickingRepository
var _ inventory.PickingRepository = (*GormPickingRepository)(nil)
