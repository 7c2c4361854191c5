package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/sealkit/sqlseal/internal/domain/encryption"
	"github.com/sealkit/sqlseal/internal/infrastructure/persistence/models"
	"github.com/sealkit/sqlseal/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormKeyChangeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeyChangeRepository creates a new GORM-based KeyChangeRepository implementation
func NewGormKeyChangeRepository(db *gorm.DB, logger logger.Logger) (encryption.KeyChangeRepository, error) {
	return &gormKeyChangeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKeyChangeRepository) Create(ctx context.Context, event *encryption.KeyChangeEvent) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeyChangeModel{}
	model.FromDomain(event)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create key-change event: %w", err)
	}

	r.logger.Info("Created key-change event with id ", event.ID)
	return nil
}

func (r *gormKeyChangeRepository) List(ctx context.Context, query *encryption.KeyChangeQuery) ([]*encryption.KeyChangeEvent, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.KeyChangeModel
	dbQuery := r.db.WithContext(ctx).Model(&models.KeyChangeModel{})

	if query.Operation != "" {
		dbQuery = dbQuery.Where("operation = ?", query.Operation)
	}
	if query.DatabaseID != "" {
		dbQuery = dbQuery.Where("database_id = ?", query.DatabaseID)
	}
	if !query.AppliedAfter.IsZero() {
		dbQuery = dbQuery.Where("date_time_applied >= ?", query.AppliedAfter)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch key-change events: %w", err)
	}

	domainList := make([]*encryption.KeyChangeEvent, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormKeyChangeRepository) GetByID(ctx context.Context, eventID string) (*encryption.KeyChangeEvent, error) {
	var model models.KeyChangeModel
	if err := r.db.WithContext(ctx).Where("id = ?", eventID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("key-change event with ID %s not found", eventID)
		}
		return nil, fmt.Errorf("failed to fetch key-change event: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormKeyChangeRepository) DeleteByID(ctx context.Context, eventID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", eventID).Delete(&models.KeyChangeModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete key-change event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("key-change event with ID %s not found", eventID)
	}

	r.logger.Info("Deleted key-change event with id ", eventID)
	return nil
}
