package persistence

import (
	"context"
	"errors"

	"github.com/Olpagroup25/insa/internal/domain/partner"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/Olpagroup25/insa/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPartnerRepository implements partner.PartnerRepository using GORM
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewGormPartnerRepository creates a new GormPartnerRepository
func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

// FindByID finds a partner by its ID
func (r *GormPartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	var model models.PartnerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs finds multiple partners by their IDs
func (r *GormPartnerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]partner.Partner, error) {
	if len(ids) == 0 {
		return []partner.Partner{}, nil
	}
	var partnerModels []models.PartnerModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&partnerModels).Error; err != nil {
		return nil, err
	}
	return partnersToDomain(partnerModels), nil
}

// FindAll finds all partners matching the filter
func (r *GormPartnerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Partner, error) {
	var partnerModels []models.PartnerModel
	query := paginate(r.applyFilter(r.db.WithContext(ctx).Model(&models.PartnerModel{}), filter), filter).
		Order(orderClause(filter, PartnerSortFields, "name"))
	if err := query.Find(&partnerModels).Error; err != nil {
		return nil, err
	}
	return partnersToDomain(partnerModels), nil
}

// Count counts partners matching the filter
func (r *GormPartnerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.PartnerModel{}), filter).Count(&count).Error
	return count, err
}

// Save creates or updates a partner
func (r *GormPartnerRepository) Save(ctx context.Context, p *partner.Partner) error {
	return r.db.WithContext(ctx).Save(models.PartnerModelFromDomain(p)).Error
}

// ExistsByID checks if a partner exists
func (r *GormPartnerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PartnerModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *GormPartnerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(city) LIKE ?", pattern, pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		case "city":
			query = query.Where("city = ?", value)
		}
	}
	return query
}

func partnersToDomain(partnerModels []models.PartnerModel) []partner.Partner {
	partners := make([]partner.Partner, len(partnerModels))
	for i := range partnerModels {
		partners[i] = *partnerModels[i].ToDomain()
	}
	return partners
}

// Ensure GormPartnerRepository implements PartnerRepository
var _ partner.PartnerRepository = (*GormPartnerRepository)(nil)
