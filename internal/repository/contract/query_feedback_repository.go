package contract

import (
	"context"
	"time"

	"hr-assist-be/internal/entity"
)

type QueryFeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.QueryFeedback) error
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountHelpfulSince(ctx context.Context, since time.Time) (int64, error)
}
