package mapper

import (
	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/model"
)

type EscalationMapper struct{}

func NewEscalationMapper() *EscalationMapper {
	return &EscalationMapper{}
}

func (m *EscalationMapper) ToEntity(e *model.EscalationLog) *entity.EscalationLog {
	if e == nil {
		return nil
	}
	return &entity.EscalationLog{
		Id:             e.Id,
		SessionId:      e.SessionId,
		EmployeeId:     e.EmployeeId,
		QueryText:      e.QueryText,
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

func (m *EscalationMapper) ToModel(e *entity.EscalationLog) *model.EscalationLog {
	if e == nil {
		return nil
	}
	return &model.EscalationLog{
		Id:             e.Id,
		SessionId:      e.SessionId,
		EmployeeId:     e.EmployeeId,
		QueryText:      e.QueryText,
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

func (m *EscalationMapper) ToEntities(logs []*model.EscalationLog) []*entity.EscalationLog {
	entities := make([]*entity.EscalationLog, len(logs))
	for i, e := range logs {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
