package pipeline

import (
	"context"
	"log"
	"time"
)

// AnalyticsRecorder computes the elapsed latency and emits one record per
// completed run to the sink. Sink failures are swallowed: losing an
// analytics record must never fail the user-facing answer.
type AnalyticsRecorder struct {
	sink   AnalyticsSink
	logger *log.Logger
	now    func() time.Time
}

func NewAnalyticsRecorder(sink AnalyticsSink, logger *log.Logger) *AnalyticsRecorder {
	return &AnalyticsRecorder{
		sink:   sink,
		logger: logger,
		now:    time.Now,
	}
}

func (r *AnalyticsRecorder) Record(ctx context.Context, qc *QueryContext) AnalyticsRecord {
	end := r.now()
	qc.ResponseTimeMs = end.Sub(qc.StartedAt).Milliseconds()

	sources := qc.Sources
	if sources == nil {
		sources = []string{}
	}

	rec := AnalyticsRecord{
		SessionID:      qc.SessionID,
		EmployeeID:     qc.EmployeeID,
		Department:     qc.Department,
		Role:           qc.Role,
		Query:          qc.Query,
		Response:       qc.Response,
		Category:       qc.Category,
		Intent:         qc.Intent,
		Confidence:     qc.Confidence,
		Escalated:      qc.ShouldEscalate,
		EscalationType: qc.EscalationType,
		ResponseTimeMs: qc.ResponseTimeMs,
		Sources:        sources,
		Timestamp:      end.UTC(),
	}

	if r.sink != nil {
		if err := r.sink.Record(ctx, rec); err != nil {
			r.logger.Printf("[ANALYTICS] sink rejected record (ignored): %v", err)
		}
	}

	r.logger.Printf("[ANALYTICS] category=%s confidence=%.3f escalated=%v time=%dms",
		rec.Category, rec.Confidence, rec.Escalated, rec.ResponseTimeMs)

	return rec
}
