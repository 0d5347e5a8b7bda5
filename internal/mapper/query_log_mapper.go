package mapper

import (
	"encoding/json"

	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/model"

	"gorm.io/datatypes"
)

type QueryLogMapper struct{}

func NewQueryLogMapper() *QueryLogMapper {
	return &QueryLogMapper{}
}

func (m *QueryLogMapper) ToEntity(q *model.QueryLog) *entity.QueryLog {
	if q == nil {
		return nil
	}

	var sources []string
	if len(q.SourcesUsed) > 0 {
		// Malformed rows degrade to an empty source list
		_ = json.Unmarshal(q.SourcesUsed, &sources)
	}
	if sources == nil {
		sources = []string{}
	}

	return &entity.QueryLog{
		Id:             q.Id,
		SessionId:      q.SessionId,
		EmployeeId:     q.EmployeeId,
		Department:     q.Department,
		Role:           q.Role,
		QueryText:      q.QueryText,
		Category:       q.Category,
		Intent:         q.Intent,
		ResponseText:   q.ResponseText,
		Confidence:     q.Confidence,
		Escalated:      q.Escalated,
		EscalationType: q.EscalationType,
		SourcesUsed:    sources,
		ResponseTimeMs: q.ResponseTimeMs,
		CreatedAt:      q.CreatedAt,
	}
}

func (m *QueryLogMapper) ToModel(q *entity.QueryLog) *model.QueryLog {
	if q == nil {
		return nil
	}

	sources := q.SourcesUsed
	if sources == nil {
		sources = []string{}
	}
	raw, _ := json.Marshal(sources)

	return &model.QueryLog{
		Id:             q.Id,
		SessionId:      q.SessionId,
		EmployeeId:     q.EmployeeId,
		Department:     q.Department,
		Role:           q.Role,
		QueryText:      q.QueryText,
		Category:       q.Category,
		Intent:         q.Intent,
		ResponseText:   q.ResponseText,
		Confidence:     q.Confidence,
		Escalated:      q.Escalated,
		EscalationType: q.EscalationType,
		SourcesUsed:    datatypes.JSON(raw),
		ResponseTimeMs: q.ResponseTimeMs,
		CreatedAt:      q.CreatedAt,
	}
}

func (m *QueryLogMapper) ToEntities(logs []*model.QueryLog) []*entity.QueryLog {
	entities := make([]*entity.QueryLog, len(logs))
	for i, q := range logs {
		entities[i] = m.ToEntity(q)
	}
	return entities
}

type QueryFeedbackMapper struct{}

func NewQueryFeedbackMapper() *QueryFeedbackMapper {
	return &QueryFeedbackMapper{}
}

func (m *QueryFeedbackMapper) ToEntity(f *model.QueryFeedback) *entity.QueryFeedback {
	if f == nil {
		return nil
	}
	return &entity.QueryFeedback{
		Id:         f.Id,
		SessionId:  f.SessionId,
		EmployeeId: f.EmployeeId,
		Helpful:    f.Helpful,
		Comment:    f.Comment,
		CreatedAt:  f.CreatedAt,
	}
}

func (m *QueryFeedbackMapper) ToModel(f *entity.QueryFeedback) *model.QueryFeedback {
	if f == nil {
		return nil
	}
	return &model.QueryFeedback{
		Id:         f.Id,
		SessionId:  f.SessionId,
		EmployeeId: f.EmployeeId,
		Helpful:    f.Helpful,
		Comment:    f.Comment,
		CreatedAt:  f.CreatedAt,
	}
}

type FAQPatternMapper struct{}

func NewFAQPatternMapper() *FAQPatternMapper {
	return &FAQPatternMapper{}
}

func (m *FAQPatternMapper) ToEntity(f *model.FAQPattern) *entity.FAQPattern {
	if f == nil {
		return nil
	}
	return &entity.FAQPattern{
		Id:            f.Id,
		Category:      f.Category,
		QueryPattern:  f.QueryPattern,
		HitCount:      f.HitCount,
		AvgConfidence: f.AvgConfidence,
		LastSeenAt:    f.LastSeenAt,
		CreatedAt:     f.CreatedAt,
	}
}

func (m *FAQPatternMapper) ToModel(f *entity.FAQPattern) *model.FAQPattern {
	if f == nil {
		return nil
	}
	return &model.FAQPattern{
		Id:            f.Id,
		Category:      f.Category,
		QueryPattern:  f.QueryPattern,
		HitCount:      f.HitCount,
		AvgConfidence: f.AvgConfidence,
		LastSeenAt:    f.LastSeenAt,
		CreatedAt:     f.CreatedAt,
	}
}
