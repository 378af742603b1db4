package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/koreat/backend/internal/domain/collection"
	"github.com/koreat/backend/internal/domain/shared"
	"github.com/koreat/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormModerationRepository implements ModerationRepository using GORM
type GormModerationRepository struct {
	db *gorm.DB
}

// NewGormModerationRepository creates a new GormModerationRepository
func NewGormModerationRepository(db *gorm.DB) *GormModerationRepository {
	return &GormModerationRepository{db: db}
}

// CreateChangeRequest inserts a pending change request
func (r *GormModerationRepository) CreateChangeRequest(ctx context.Context, c *collection.ChangeRequest) error {
	model, err := models.ChangeRequestModelFromDomain(c)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(model).Error
}

// UpdateChangeRequest persists a review decision
func (r *GormModerationRepository) UpdateChangeRequest(ctx context.Context, c *collection.ChangeRequest) error {
	model, err := models.ChangeRequestModelFromDomain(c)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindChangeRequestByID finds a change request by ID
func (r *GormModerationRepository) FindChangeRequestByID(ctx context.Context, id uuid.UUID) (*collection.ChangeRequest, error) {
	var model models.ChangeRequestModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindPendingChangeRequests lists the change requests awaiting review
func (r *GormModerationRepository) FindPendingChangeRequests(ctx context.Context) ([]*collection.ChangeRequest, error) {
	var requestModels []*models.ChangeRequestModel
	if err := r.db.WithContext(ctx).
		Where("state = ?", string(collection.ModerationPending)).
		Order("created_at ASC").
		Find(&requestModels).Error; err != nil {
		return nil, err
	}

	requests := make([]*collection.ChangeRequest, len(requestModels))
	for i, model := range requestModels {
		request, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		requests[i] = request
	}
	return requests, nil
}

// CreateReport inserts a pending review report
func (r *GormModerationRepository) CreateReport(ctx context.Context, report *collection.ReviewReport) error {
	return r.db.WithContext(ctx).Create(models.ReviewReportModelFromDomain(report)).Error
}

// UpdateReport persists a review decision
func (r *GormModerationRepository) UpdateReport(ctx context.Context, report *collection.ReviewReport) error {
	result := r.db.WithContext(ctx).Save(models.ReviewReportModelFromDomain(report))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindReportByID finds a report by ID
func (r *GormModerationRepository) FindReportByID(ctx context.Context, id uuid.UUID) (*collection.ReviewReport, error) {
	var model models.ReviewReportModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindPendingReports lists the reports awaiting review
func (r *GormModerationRepository) FindPendingReports(ctx context.Context) ([]*collection.ReviewReport, error) {
	var reportModels []*models.ReviewReportModel
	if err := r.db.WithContext(ctx).
		Where("state = ?", string(collection.ModerationPending)).
		Order("created_at ASC").
		Find(&reportModels).Error; err != nil {
		return nil, err
	}

	reports := make([]*collection.ReviewReport, len(reportModels))
	for i, model := range reportModels {
		reports[i] = model.ToDomain()
	}
	return reports, nil
}

// Ensure GormModerationRepository implements ModerationRepository
var _ collection.ModerationRepository = (*GormModerationRepository)(nil)
