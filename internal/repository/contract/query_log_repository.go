package contract

import (
	"context"
	"time"

	"hr-assist-be/internal/entity"
)

// CategoryCount is a per-category aggregate row.
type CategoryCount struct {
	Category string
	Count    int64
}

// DayCount is a per-day aggregate row for the dashboard trend chart.
type DayCount struct {
	Day   time.Time
	Count int64
}

type QueryLogRepository interface {
	Create(ctx context.Context, log *entity.QueryLog) error
	FindBySessionId(ctx context.Context, sessionId string) ([]*entity.QueryLog, error)
	FindRecent(ctx context.Context, limit, offset int) ([]*entity.QueryLog, error)

	// Aggregations for the analytics dashboard.
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountEscalatedSince(ctx context.Context, since time.Time) (int64, error)
	CountByCategorySince(ctx context.Context, since time.Time) ([]CategoryCount, error)
	CountByDaySince(ctx context.Context, since time.Time) ([]DayCount, error)
	AverageConfidenceSince(ctx context.Context, since time.Time) (float64, error)
	AverageResponseTimeSince(ctx context.Context, since time.Time) (float64, error)
}
