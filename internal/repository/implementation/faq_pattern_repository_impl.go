package implementation

import (
	"context"
	"errors"
	"time"

	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/mapper"
	"hr-assist-be/internal/model"
	"hr-assist-be/internal/repository/contract"

	"gorm.io/gorm"
)

type FAQPatternRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FAQPatternMapper
}

func NewFAQPatternRepository(db *gorm.DB) contract.FAQPatternRepository {
	return &FAQPatternRepositoryImpl{
		db:     db,
		mapper: mapper.NewFAQPatternMapper(),
	}
}

func (r *FAQPatternRepositoryImpl) Upsert(ctx context.Context, category, queryPattern string, confidence float64) error {
	var m model.FAQPattern
	err := r.db.WithContext(ctx).
		Where("category = ? AND query_pattern = ?", category, queryPattern).
		First(&m).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(&model.FAQPattern{
			Category:      category,
			QueryPattern:  queryPattern,
			HitCount:      1,
			AvgConfidence: confidence,
		}).Error
	}
	if err != nil {
		return err
	}

	// Running average over hit count.
	newCount := m.HitCount + 1
	newAvg := (m.AvgConfidence*float64(m.HitCount) + confidence) / float64(newCount)

	return r.db.WithContext(ctx).
		Model(&m).
		Updates(map[string]interface{}{
			"hit_count":      newCount,
			"avg_confidence": newAvg,
			"last_seen_at":   time.Now(),
		}).Error
}

func (r *FAQPatternRepositoryImpl) FindTopByCategory(ctx context.Context, category string, limit int) ([]*entity.FAQPattern, error) {
	if limit <= 0 {
		limit = 10
	}
	var models []*model.FAQPattern
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("hit_count DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(models), nil
}

func (r *FAQPatternRepositoryImpl) FindTop(ctx context.Context, limit int) ([]*entity.FAQPattern, error) {
	if limit <= 0 {
		limit = 10
	}
	var models []*model.FAQPattern
	err := r.db.WithContext(ctx).
		Order("hit_count DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(models), nil
}

func (r *FAQPatternRepositoryImpl) toEntities(models []*model.FAQPattern) []*entity.FAQPattern {
	entities := make([]*entity.FAQPattern, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities
}
