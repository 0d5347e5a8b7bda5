package contract

import (
	"context"

	"hr-assist-be/internal/entity"
)

type PolicyDocumentRepository interface {
	Create(ctx context.Context, doc *entity.PolicyDocument) error
	Update(ctx context.Context, doc *entity.PolicyDocument) error
	FindById(ctx context.Context, id uint) (*entity.PolicyDocument, error)
	FindBySource(ctx context.Context, source string) (*entity.PolicyDocument, error)
	FindAll(ctx context.Context) ([]*entity.PolicyDocument, error)
	Delete(ctx context.Context, id uint) error
}
