package contract

import (
	"context"

	"hr-assist-be/internal/entity"
)

type FAQPatternRepository interface {
	// Upsert increments the hit count for a matching (category, pattern)
	// pair, creating the row on first sight.
	Upsert(ctx context.Context, category, queryPattern string, confidence float64) error
	FindTopByCategory(ctx context.Context, category string, limit int) ([]*entity.FAQPattern, error)
	FindTop(ctx context.Context, limit int) ([]*entity.FAQPattern, error)
}
