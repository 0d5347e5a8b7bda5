package implementation

import (
	"context"
	"errors"

	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/mapper"
	"hr-assist-be/internal/model"
	"hr-assist-be/internal/repository/contract"

	"gorm.io/gorm"
)

type EscalationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EscalationMapper
}

func NewEscalationRepository(db *gorm.DB) contract.EscalationRepository {
	return &EscalationRepositoryImpl{
		db:     db,
		mapper: mapper.NewEscalationMapper(),
	}
}

func (r *EscalationRepositoryImpl) Create(ctx context.Context, escalation *entity.EscalationLog) error {
	m := r.mapper.ToModel(escalation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*escalation = *r.mapper.ToEntity(m)
	return nil
}

func (r *EscalationRepositoryImpl) FindById(ctx context.Context, id uint) (*entity.EscalationLog, error) {
	var m model.EscalationLog
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EscalationRepositoryImpl) FindByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.EscalationLog, error) {
	if limit <= 0 {
		limit = 20
	}
	var models []*model.EscalationLog
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EscalationRepositoryImpl) Update(ctx context.Context, escalation *entity.EscalationLog) error {
	m := r.mapper.ToModel(escalation)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*escalation = *r.mapper.ToEntity(m)
	return nil
}

func (r *EscalationRepositoryImpl) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.EscalationLog{}).
		Where("status = ?", entity.EscalationStatusPending).
		Count(&count).Error
	return count, err
}
