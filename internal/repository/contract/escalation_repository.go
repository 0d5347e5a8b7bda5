package contract

import (
	"context"

	"hr-assist-be/internal/entity"
)

type EscalationRepository interface {
	Create(ctx context.Context, escalation *entity.EscalationLog) error
	FindById(ctx context.Context, id uint) (*entity.EscalationLog, error)
	FindByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.EscalationLog, error)
	Update(ctx context.Context, escalation *entity.EscalationLog) error
	CountPending(ctx context.Context) (int64, error)
}
