package persistence

import (
	"context"
	"errors"

	"github.com/Olpagroup25/insa/internal/domain/delivery"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/Olpagroup25/insa/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCarrierRepository implements delivery.CarrierRepository using GORM
type GormCarrierRepository struct {
	db *gorm.DB
}

// NewGormCarrierRepository creates a new GormCarrierRepository
func NewGormCarrierRepository(db *gorm.DB) *GormCarrierRepository {
	return &GormCarrierRepository{db: db}
}

// FindByID finds a carrier by its ID
func (r *GormCarrierRepository) FindByID(ctx context.Context, id uuid.UUID) (*delivery.Carrier, error) {
	var model models.CarrierModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all carriers matching the filter
func (r *GormCarrierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]delivery.Carrier, error) {
	var carrierModels []models.CarrierModel
	query := paginate(r.applyFilter(r.db.WithContext(ctx).Model(&models.CarrierModel{}), filter), filter).
		Order(orderClause(filter, CarrierSortFields, "name"))
	if err := query.Find(&carrierModels).Error; err != nil {
		return nil, err
	}
	return carriersToDomain(carrierModels), nil
}

// FindPickupPoints finds active carriers linked to a pickup partner
func (r *GormCarrierRepository) FindPickupPoints(ctx context.Context) ([]delivery.Carrier, error) {
	var carrierModels []models.CarrierModel
	if err := r.db.WithContext(ctx).
		Where("pickup_partner_id IS NOT NULL AND active = ?", true).
		Order("name ASC").
		Find(&carrierModels).Error; err != nil {
		return nil, err
	}
	return carriersToDomain(carrierModels), nil
}

// Count counts carriers matching the filter
func (r *GormCarrierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.CarrierModel{}), filter).Count(&count).Error
	return count, err
}

// Save creates or updates a carrier
func (r *GormCarrierRepository) Save(ctx context.Context, carrier *delivery.Carrier) error {
	return r.db.WithContext(ctx).Save(models.CarrierModelFromDomain(carrier)).Error
}

func (r *GormCarrierRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", likePattern(filter.Search))
	}
	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		case "is_pickup_point":
			if value == true {
				query = query.Where("pickup_partner_id IS NOT NULL")
			} else {
				query = query.Where("pickup_partner_id IS NULL")
			}
		}
	}
	return query
}

func carriersToDomain(carrierModels []models.CarrierModel) []delivery.Carrier {
	carriers := make([]delivery.Carrier, len(carrierModels))
	for i := range carrierModels {
		carriers[i] = *carrierModels[i].ToDomain()
	}
	return carriers
}

// Ensure GormCarrierRepository implements CarrierRepository
var _ delivery.CarrierRepository = (*GormCarrierRepository)(nil)
