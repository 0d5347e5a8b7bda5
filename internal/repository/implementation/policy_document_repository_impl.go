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

type PolicyDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PolicyDocumentMapper
}

func NewPolicyDocumentRepository(db *gorm.DB) contract.PolicyDocumentRepository {
	return &PolicyDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewPolicyDocumentMapper(),
	}
}

func (r *PolicyDocumentRepositoryImpl) Create(ctx context.Context, doc *entity.PolicyDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *PolicyDocumentRepositoryImpl) Update(ctx context.Context, doc *entity.PolicyDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *PolicyDocumentRepositoryImpl) FindById(ctx context.Context, id uint) (*entity.PolicyDocument, error) {
	var m model.PolicyDocument
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PolicyDocumentRepositoryImpl) FindBySource(ctx context.Context, source string) (*entity.PolicyDocument, error) {
	var m model.PolicyDocument
	err := r.db.WithContext(ctx).Where("source = ?", source).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PolicyDocumentRepositoryImpl) FindAll(ctx context.Context) ([]*entity.PolicyDocument, error) {
	var models []*model.PolicyDocument
	if err := r.db.WithContext(ctx).Order("source ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PolicyDocument, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *PolicyDocumentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.PolicyDocument{}, id).Error
}
