package service

import (
	"context"
	"fmt"
	"time"

	"hr-assist-be/internal/dto"
	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/pkg/logger"
	"hr-assist-be/internal/pkg/mailer"
	"hr-assist-be/internal/repository/contract"
	"hr-assist-be/internal/websocket"
	"hr-assist-be/pkg/events"
	"hr-assist-be/pkg/nats"
	"hr-assist-be/pkg/pipeline"
)

type RaiseEscalationInput struct {
	SessionId      string
	EmployeeId     string
	QueryText      string
	Category       string
	EscalationType string
	Reason         string
}

type IEscalationService interface {
	Raise(ctx context.Context, input RaiseEscalationInput) error
	ListPending(ctx context.Context, limit, offset int) ([]dto.EscalationItem, error)
	Resolve(ctx context.Context, id uint, req *dto.ResolveEscalationRequest) (*dto.EscalationItem, error)
}

type escalationService struct {
	escalationRepo contract.EscalationRepository
	employeeRepo   contract.EmployeeRepository
	emailService   mailer.IEmailService
	publisher      *nats.Publisher
	hub            *websocket.Hub
	hrTeamEmail    string
	logger         logger.ILogger
}

func NewEscalationService(
	escalationRepo contract.EscalationRepository,
	employeeRepo contract.EmployeeRepository,
	emailService mailer.IEmailService,
	publisher *nats.Publisher,
	hub *websocket.Hub,
	hrTeamEmail string,
	log logger.ILogger,
) IEscalationService {
	return &escalationService{
		escalationRepo: escalationRepo,
		employeeRepo:   employeeRepo,
		emailService:   emailService,
		publisher:      publisher,
		hub:            hub,
		hrTeamEmail:    hrTeamEmail,
		logger:         log,
	}
}

// Raise records the escalation and notifies HR over email, the event bus
// and the live dashboard feed. Notification failures are logged, never
// surfaced: the employee already has their answer.
func (s *escalationService) Raise(ctx context.Context, input RaiseEscalationInput) error {
	escalation := &entity.EscalationLog{
		SessionId:      input.SessionId,
		EmployeeId:     input.EmployeeId,
		QueryText:      input.QueryText,
		Category:       input.Category,
		EscalationType: input.EscalationType,
		Reason:         input.Reason,
		Status:         entity.EscalationStatusPending,
	}

	if err := s.escalationRepo.Create(ctx, escalation); err != nil {
		return fmt.Errorf("failed to record escalation: %w", err)
	}

	refCode := pipeline.ReferenceCode(input.SessionId)

	if s.emailService != nil {
		go func() {
			if err := s.emailService.SendEscalationNotice(s.hrTeamEmail, refCode, input.EscalationType, input.QueryText); err != nil {
				s.logger.Warn("Escalation", "Failed to email HR team", map[string]interface{}{
					"reference": refCode,
					"error":     err.Error(),
				})
			}
		}()
	}

	if s.publisher != nil {
		event := events.NewEscalationRaisedEvent(input.SessionId, input.EmployeeId, input.EscalationType, input.Reason)
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("Escalation", "Failed to publish escalation event", map[string]interface{}{
				"reference": refCode,
				"error":     err.Error(),
			})
		}
	}

	if s.hub != nil {
		s.hub.BroadcastEscalation(s.toItem(escalation))
	}

	s.logger.Info("Escalation", "Escalation raised", map[string]interface{}{
		"reference": refCode,
		"type":      input.EscalationType,
	})
	return nil
}

func (s *escalationService) ListPending(ctx context.Context, limit, offset int) ([]dto.EscalationItem, error) {
	escalations, err := s.escalationRepo.FindByStatus(ctx, entity.EscalationStatusPending, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EscalationItem, len(escalations))
	for i, e := range escalations {
		items[i] = s.toItem(e)
	}
	return items, nil
}

func (s *escalationService) Resolve(ctx context.Context, id uint, req *dto.ResolveEscalationRequest) (*dto.EscalationItem, error) {
	escalation, err := s.escalationRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if escalation == nil {
		return nil, fmt.Errorf("escalation %d not found", id)
	}
	if escalation.Status == entity.EscalationStatusResolved {
		return nil, fmt.Errorf("escalation %d already resolved", id)
	}

	now := time.Now()
	escalation.Status = entity.EscalationStatusResolved
	escalation.ResolvedBy = req.ResolvedBy
	escalation.ResolutionNote = req.ResolutionNote
	escalation.ResolvedAt = &now

	if err := s.escalationRepo.Update(ctx, escalation); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := events.NewEscalationResolvedEvent(escalation.Id, req.ResolvedBy)
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("Escalation", "Failed to publish resolution event", map[string]interface{}{
				"escalation_id": escalation.Id,
				"error":         err.Error(),
			})
		}
	}

	// Close the loop with the employee when we can find their address.
	if s.emailService != nil && escalation.EmployeeId != "" {
		if employee, err := s.employeeRepo.FindByCode(ctx, escalation.EmployeeId); err == nil && employee != nil {
			refCode := pipeline.ReferenceCode(escalation.SessionId)
			note := req.ResolutionNote
			go func() {
				if err := s.emailService.SendResolutionNotice(employee.Email, refCode, note); err != nil {
					s.logger.Warn("Escalation", "Failed to email employee", map[string]interface{}{
						"reference": refCode,
						"error":     err.Error(),
					})
				}
			}()
		}
	}

	item := s.toItem(escalation)
	return &item, nil
}

func (s *escalationService) toItem(e *entity.EscalationLog) dto.EscalationItem {
	return dto.EscalationItem{
		Id:             e.Id,
		SessionId:      e.SessionId,
		ReferenceCode:  pipeline.ReferenceCode(e.SessionId),
		EmployeeId:     e.EmployeeId,
		Query:          e.QueryText,
		Category:       e.Category,
		EscalationType: e.EscalationType,
		Reason:         e.Reason,
		Status:         e.Status,
		ResolvedBy:     e.ResolvedBy,
		ResolutionNote: e.ResolutionNote,
		ResolvedAt:     e.ResolvedAt,
		CreatedAt:      e.CreatedAt,
	}
}
