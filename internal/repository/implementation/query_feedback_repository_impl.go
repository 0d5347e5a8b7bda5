package implementation

import (
	"context"
	"time"

	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/mapper"
	"hr-assist-be/internal/model"
	"hr-assist-be/internal/repository/contract"

	"gorm.io/gorm"
)

type QueryFeedbackRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QueryFeedbackMapper
}

func NewQueryFeedbackRepository(db *gorm.DB) contract.QueryFeedbackRepository {
	return &QueryFeedbackRepositoryImpl{
		db:     db,
		mapper: mapper.NewQueryFeedbackMapper(),
	}
}

func (r *QueryFeedbackRepositoryImpl) Create(ctx context.Context, feedback *entity.QueryFeedback) error {
	m := r.mapper.ToModel(feedback)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*feedback = *r.mapper.ToEntity(m)
	return nil
}

func (r *QueryFeedbackRepositoryImpl) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.QueryFeedback{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *QueryFeedbackRepositoryImpl) CountHelpfulSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.QueryFeedback{}).
		Where("created_at >= ?", since).
		Where("helpful = ?", true).
		Count(&count).Error
	return count, err
}
