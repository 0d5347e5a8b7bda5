package events

import "time"

// Event type codes published on the bus.
const (
	TypeQueryResolved      = "QUERY_RESOLVED"
	TypeEscalationRaised   = "ESCALATION_RAISED"
	TypeEscalationResolved = "ESCALATION_RESOLVED"
	TypeDocumentIngested   = "DOCUMENT_INGESTED"
)

// NewQueryResolvedEvent is emitted once per completed query run, whether
// or not the run escalated.
func NewQueryResolvedEvent(sessionID, employeeID, category string, confidence float64, escalated bool) Event {
	return BaseEvent{
		Type: TypeQueryResolved,
		Data: map[string]interface{}{
			"session_id":  sessionID,
			"employee_id": employeeID,
			"category":    category,
			"confidence":  confidence,
			"escalated":   escalated,
		},
		OccurredAt: time.Now(),
	}
}

func NewEscalationRaisedEvent(sessionID, employeeID, escalationType, reason string) Event {
	return BaseEvent{
		Type: TypeEscalationRaised,
		Data: map[string]interface{}{
			"session_id":      sessionID,
			"employee_id":     employeeID,
			"escalation_type": escalationType,
			"reason":          reason,
		},
		OccurredAt: time.Now(),
	}
}

func NewEscalationResolvedEvent(escalationID uint, resolvedBy string) Event {
	return BaseEvent{
		Type: TypeEscalationResolved,
		Data: map[string]interface{}{
			"escalation_id": escalationID,
			"resolved_by":   resolvedBy,
		},
		OccurredAt: time.Now(),
	}
}

func NewDocumentIngestedEvent(documentID uint, source, category string, chunkCount int) Event {
	return BaseEvent{
		Type: TypeDocumentIngested,
		Data: map[string]interface{}{
			"document_id": documentID,
			"source":      source,
			"category":    category,
			"chunk_count": chunkCount,
		},
		OccurredAt: time.Now(),
	}
}
