package service

import (
	"context"

	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/pkg/logger"
	"hr-assist-be/internal/repository/contract"
	"hr-assist-be/pkg/events"
	"hr-assist-be/pkg/nats"
	"hr-assist-be/pkg/pipeline"
)

// queryAnalyticsSink persists one row per completed pipeline run and
// mirrors it onto the event bus. Both halves are best-effort: the pipeline
// treats sink errors as non-fatal, and a nil publisher disables the bus.
type queryAnalyticsSink struct {
	queryLogRepo contract.QueryLogRepository
	publisher    *nats.Publisher
	logger       logger.ILogger
}

func NewQueryAnalyticsSink(
	queryLogRepo contract.QueryLogRepository,
	publisher *nats.Publisher,
	log logger.ILogger,
) pipeline.AnalyticsSink {
	return &queryAnalyticsSink{
		queryLogRepo: queryLogRepo,
		publisher:    publisher,
		logger:       log,
	}
}

func (s *queryAnalyticsSink) Record(ctx context.Context, rec pipeline.AnalyticsRecord) error {
	logEntry := &entity.QueryLog{
		SessionId:      rec.SessionID,
		EmployeeId:     rec.EmployeeID,
		Department:     rec.Department,
		Role:           rec.Role,
		QueryText:      rec.Query,
		Category:       string(rec.Category),
		Intent:         rec.Intent,
		ResponseText:   rec.Response,
		Confidence:     rec.Confidence,
		Escalated:      rec.Escalated,
		EscalationType: string(rec.EscalationType),
		SourcesUsed:    rec.Sources,
		ResponseTimeMs: rec.ResponseTimeMs,
		CreatedAt:      rec.Timestamp,
	}

	if err := s.queryLogRepo.Create(ctx, logEntry); err != nil {
		s.logger.Error("AnalyticsSink", "Failed to persist query log", map[string]interface{}{
			"session_id": rec.SessionID,
			"error":      err.Error(),
		})
		return err
	}

	if s.publisher != nil {
		event := events.NewQueryResolvedEvent(rec.SessionID, rec.EmployeeID, string(rec.Category), rec.Confidence, rec.Escalated)
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("AnalyticsSink", "Failed to publish query event", map[string]interface{}{
				"session_id": rec.SessionID,
				"error":      err.Error(),
			})
		}
	}

	return nil
}
