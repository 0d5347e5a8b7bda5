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

type QueryLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QueryLogMapper
}

func NewQueryLogRepository(db *gorm.DB) contract.QueryLogRepository {
	return &QueryLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewQueryLogMapper(),
	}
}

func (r *QueryLogRepositoryImpl) Create(ctx context.Context, log *entity.QueryLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *QueryLogRepositoryImpl) FindBySessionId(ctx context.Context, sessionId string) ([]*entity.QueryLog, error) {
	var models []*model.QueryLog
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *QueryLogRepositoryImpl) FindRecent(ctx context.Context, limit, offset int) ([]*entity.QueryLog, error) {
	if limit <= 0 {
		limit = 20
	}
	var models []*model.QueryLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *QueryLogRepositoryImpl) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.QueryLog{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *QueryLogRepositoryImpl) CountEscalatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.QueryLog{}).
		Where("created_at >= ?", since).
		Where("escalated = ?", true).
		Count(&count).Error
	return count, err
}

func (r *QueryLogRepositoryImpl) CountByCategorySince(ctx context.Context, since time.Time) ([]contract.CategoryCount, error) {
	var rows []contract.CategoryCount
	err := r.db.WithContext(ctx).
		Model(&model.QueryLog{}).
		Select("category, count(*) as count").
		Where("created_at >= ?", since).
		Group("category").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *QueryLogRepositoryImpl) CountByDaySince(ctx context.Context, since time.Time) ([]contract.DayCount, error) {
	var rows []contract.DayCount
	err := r.db.WithContext(ctx).
		Model(&model.QueryLog{}).
		Select("date_trunc('day', created_at) as day, count(*) as count").
		Where("created_at >= ?", since).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *QueryLogRepositoryImpl) AverageConfidenceSince(ctx context.Context, since time.Time) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&model.QueryLog{}).
		Select("avg(confidence)").
		Where("created_at >= ?", since).
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

func (r *QueryLogRepositoryImpl) AverageResponseTimeSince(ctx context.Context, since time.Time) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&model.QueryLog{}).
		Select("avg(response_time_ms)").
		Where("created_at >= ?", since).
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
