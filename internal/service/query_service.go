package service

import (
	"context"
	"strings"

	"hr-assist-be/internal/dto"
	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/pkg/logger"
	"hr-assist-be/internal/repository/contract"
	"hr-assist-be/pkg/pipeline"

	"github.com/gofiber/fiber/v2"
)

type IQueryService interface {
	ProcessQuery(ctx context.Context, req *dto.QueryRequest) (*dto.QueryResponse, error)
	SubmitFeedback(ctx context.Context, employeeId string, req *dto.FeedbackRequest) error
	History(ctx context.Context, sessionId string) ([]dto.QueryLogItem, error)
	Recent(ctx context.Context, limit, offset int) ([]dto.QueryLogItem, error)
}

type queryService struct {
	orchestrator      *pipeline.Orchestrator
	escalationService IEscalationService
	queryLogRepo      contract.QueryLogRepository
	feedbackRepo      contract.QueryFeedbackRepository
	faqRepo           contract.FAQPatternRepository
	logger            logger.ILogger
}

func NewQueryService(
	orchestrator *pipeline.Orchestrator,
	escalationService IEscalationService,
	queryLogRepo contract.QueryLogRepository,
	feedbackRepo contract.QueryFeedbackRepository,
	faqRepo contract.FAQPatternRepository,
	log logger.ILogger,
) IQueryService {
	return &queryService{
		orchestrator:      orchestrator,
		escalationService: escalationService,
		queryLogRepo:      queryLogRepo,
		feedbackRepo:      feedbackRepo,
		faqRepo:           faqRepo,
		logger:            log,
	}
}

func (s *queryService) ProcessQuery(ctx context.Context, req *dto.QueryRequest) (*dto.QueryResponse, error) {
	result, err := s.orchestrator.ProcessQuery(ctx, pipeline.Request{
		Query:      req.Query,
		EmployeeID: req.EmployeeId,
		Department: req.Department,
		Role:       req.Role,
		SessionID:  req.SessionId,
	})
	if err != nil {
		return nil, err
	}

	if result.Escalated {
		if err := s.escalationService.Raise(ctx, RaiseEscalationInput{
			SessionId:      result.SessionID,
			EmployeeId:     req.EmployeeId,
			QueryText:      result.Query,
			Category:       string(result.Category),
			EscalationType: string(result.EscalationType),
			Reason:         result.EscalationReason,
		}); err != nil {
			// The answer already carries the escalation footer; losing the
			// workflow row is an ops problem, not the employee's.
			s.logger.Error("Query", "Failed to raise escalation", map[string]interface{}{
				"session_id": result.SessionID,
				"error":      err.Error(),
			})
		}
	}

	if err := s.faqRepo.Upsert(ctx, string(result.Category), normalizePattern(result.Query), result.Confidence); err != nil {
		s.logger.Warn("Query", "Failed to update FAQ patterns", map[string]interface{}{
			"session_id": result.SessionID,
			"error":      err.Error(),
		})
	}

	return &dto.QueryResponse{
		SessionId:      result.SessionID,
		Query:          result.Query,
		Response:       result.Response,
		Category:       string(result.Category),
		Confidence:     result.Confidence,
		Escalated:      result.Escalated,
		EscalationType: string(result.EscalationType),
		Sources:        result.Sources,
		ResponseTimeMs: result.ResponseTimeMs,
	}, nil
}

// SubmitFeedback records whether a session's answers helped. The session
// must have at least one logged query.
func (s *queryService) SubmitFeedback(ctx context.Context, employeeId string, req *dto.FeedbackRequest) error {
	logs, err := s.queryLogRepo.FindBySessionId(ctx, req.SessionId)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Unknown session")
	}

	return s.feedbackRepo.Create(ctx, &entity.QueryFeedback{
		SessionId:  req.SessionId,
		EmployeeId: employeeId,
		Helpful:    *req.Helpful,
		Comment:    req.Comment,
	})
}

func (s *queryService) History(ctx context.Context, sessionId string) ([]dto.QueryLogItem, error) {
	logs, err := s.queryLogRepo.FindBySessionId(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	return toQueryLogItems(logs), nil
}

func (s *queryService) Recent(ctx context.Context, limit, offset int) ([]dto.QueryLogItem, error) {
	logs, err := s.queryLogRepo.FindRecent(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toQueryLogItems(logs), nil
}

func toQueryLogItems(logs []*entity.QueryLog) []dto.QueryLogItem {
	items := make([]dto.QueryLogItem, len(logs))
	for i, q := range logs {
		items[i] = dto.QueryLogItem{
			Id:             q.Id,
			SessionId:      q.SessionId,
			EmployeeId:     q.EmployeeId,
			Query:          q.QueryText,
			Category:       q.Category,
			Response:       q.ResponseText,
			Confidence:     q.Confidence,
			Escalated:      q.Escalated,
			EscalationType: q.EscalationType,
			Sources:        q.SourcesUsed,
			ResponseTimeMs: q.ResponseTimeMs,
			CreatedAt:      q.CreatedAt,
		}
	}
	return items
}

// normalizePattern collapses a query into a stable FAQ key: lowercase,
// single spaces, capped length.
func normalizePattern(query string) string {
	pattern := strings.ToLower(strings.TrimSpace(query))
	pattern = strings.Join(strings.Fields(pattern), " ")
	if len(pattern) > 200 {
		pattern = pattern[:200]
	}
	return pattern
}
