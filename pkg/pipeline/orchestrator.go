package pipeline

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"hr-assist-be/pkg/llm"
)

// ErrEmptyQuery is the one client-visible rejection: everything else
// degrades inside the pipeline.
var ErrEmptyQuery = errors.New("query must not be empty")

// stage enumerates the pipeline states. Routing is an exhaustive match on
// this type; no stage is ever revisited within a run.
type stage int

const (
	stageClassify stage = iota
	stageRetrieve
	stageGenerate
	stageAssess
	stageEscalate
	stageRecord
	stageDone
)

func (s stage) String() string {
	switch s {
	case stageClassify:
		return "classify_query"
	case stageRetrieve:
		return "retrieve_documents"
	case stageGenerate:
		return "generate_response"
	case stageAssess:
		return "assess_confidence"
	case stageEscalate:
		return "handle_escalation"
	case stageRecord:
		return "log_analytics"
	default:
		return "done"
	}
}

// Request is the caller-facing input contract consumed by any transport.
type Request struct {
	Query      string
	EmployeeID string
	Department string
	Role       string
	SessionID  string // generated when empty
}

// Result is the complete, well-formed outcome of one run.
type Result struct {
	SessionID        string
	Query            string
	Response         string
	Category         Category
	Confidence       float64
	Escalated        bool
	EscalationType   EscalationType
	EscalationReason string
	Sources          []string
	ResponseTimeMs   int64
}

// Orchestrator sequences the pipeline stages over a single-owner
// QueryContext. It holds no per-request state itself, so one instance
// serves concurrent requests.
type Orchestrator struct {
	classifier *Classifier
	assembler  *EvidenceAssembler
	responder  *Responder
	assessor   *ConfidenceAssessor
	escalator  *EscalationHandler
	recorder   *AnalyticsRecorder
	logger     *log.Logger
}

func NewOrchestrator(
	llmProvider llm.LLMProvider,
	retriever Retriever,
	sink AnalyticsSink,
	logger *log.Logger,
) *Orchestrator {
	return &Orchestrator{
		classifier: NewClassifier(llmProvider, logger),
		assembler:  NewEvidenceAssembler(retriever, logger),
		responder:  NewResponder(llmProvider, logger),
		assessor:   NewConfidenceAssessor(),
		escalator:  NewEscalationHandler(),
		recorder:   NewAnalyticsRecorder(sink, logger),
		logger:     logger,
	}
}

// ProcessQuery runs one request through the state machine. The only error
// it returns for bad input is ErrEmptyQuery; a cancelled context aborts at
// the next stage boundary.
func (o *Orchestrator) ProcessQuery(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, ErrEmptyQuery
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	role := req.Role
	if role == "" {
		role = RoleEmployee
	}

	qc := &QueryContext{
		SessionID:  sessionID,
		EmployeeID: req.EmployeeID,
		Department: req.Department,
		Role:       role,
		Query:      req.Query,
		Sources:    []string{},
		StartedAt:  time.Now(),
	}

	current := stageClassify
	for current != stageDone {
		// Cooperative abandonment at stage boundaries only; a stage in
		// flight runs to completion so qc stays internally consistent.
		if err := ctx.Err(); err != nil {
			o.logger.Printf("[PIPELINE] run abandoned before %s: %v", current, err)
			return nil, err
		}
		current = o.step(ctx, current, qc)
	}

	return &Result{
		SessionID:        qc.SessionID,
		Query:            qc.Query,
		Response:         qc.Response,
		Category:         qc.Category,
		Confidence:       qc.Confidence,
		Escalated:        qc.ShouldEscalate,
		EscalationType:   qc.EscalationType,
		EscalationReason: qc.EscalationReason,
		Sources:          qc.Sources,
		ResponseTimeMs:   qc.ResponseTimeMs,
	}, nil
}

// step executes one stage and returns the next. The transition table:
//
//	classify  → handle_escalation   (sensitive)
//	          → retrieve_documents  (otherwise)
//	retrieve  → generate → assess
//	assess    → handle_escalation   (should_escalate)
//	          → log_analytics       (otherwise)
//	escalate  → log_analytics
//	record    → done
func (o *Orchestrator) step(ctx context.Context, s stage, qc *QueryContext) stage {
	switch s {
	case stageClassify:
		cls := o.classifier.Classify(ctx, qc.Query, qc.Role)
		qc.Category = cls.Category
		qc.Intent = cls.Intent
		qc.ShouldEscalate = cls.Escalate
		qc.EscalationType = cls.EscalationType
		qc.EscalationReason = cls.EscalationReason

		// Sensitive queries skip retrieval and generation entirely.
		if qc.ShouldEscalate && qc.EscalationType == EscalationSensitive {
			return stageEscalate
		}
		return stageRetrieve

	case stageRetrieve:
		assembled := o.assembler.Assemble(ctx, qc.Query)
		qc.Evidence = assembled.Evidence
		qc.Context = assembled.Context
		qc.Sources = assembled.Sources
		return stageGenerate

	case stageGenerate:
		qc.Response = o.responder.Generate(ctx, qc.Query, qc.Context, qc.Role, qc.Department, qc.Category)
		return stageAssess

	case stageAssess:
		assessment := o.assessor.Assess(qc.Evidence, qc.ShouldEscalate)
		qc.Confidence = assessment.Confidence
		qc.ShouldEscalate = assessment.ShouldEscalate
		if assessment.SetReason {
			qc.EscalationType = assessment.EscalationType
			qc.EscalationReason = assessment.EscalationReason
		}

		if qc.ShouldEscalate {
			return stageEscalate
		}
		return stageRecord

	case stageEscalate:
		qc.Response = o.escalator.Apply(qc.Response, qc.EscalationType, qc.SessionID)
		return stageRecord

	case stageRecord:
		o.recorder.Record(ctx, qc)
		return stageDone
	}

	return stageDone
}
