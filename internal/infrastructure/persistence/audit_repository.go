package persistence

import (
	"context"

	"github.com/koreat/backend/internal/domain/place"
	"github.com/koreat/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM.
// All writes are append-only inserts.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GormAuditRepository
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// AppendPlaceLookup records one place lookup
func (r *GormAuditRepository) AppendPlaceLookup(ctx context.Context, l *place.PlaceLookupLog) error {
	return r.db.WithContext(ctx).Create(models.PlaceLookupLogModelFromDomain(l)).Error
}

// AppendCategoryLookup records one category translation call
func (r *GormAuditRepository) AppendCategoryLookup(ctx context.Context, l *place.CategoryLookupLog) error {
	return r.db.WithContext(ctx).Create(models.CategoryLookupLogModelFromDomain(l)).Error
}

// AppendRegionLookup records one region translation call
func (r *GormAuditRepository) AppendRegionLookup(ctx context.Context, l *place.RegionLookupLog) error {
	return r.db.WithContext(ctx).Create(models.RegionLookupLogModelFromDomain(l)).Error
}

// Ensure GormAuditRepository implements AuditRepository
var _ place.AuditRepository = (*GormAuditRepository)(nil)
