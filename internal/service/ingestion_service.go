package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hr-assist-be/internal/dto"
	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/pkg/logger"
	"hr-assist-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// categoryKeywords maps filename substrings to policy categories. First
// match wins; unmatched files land in general_policy.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"leave", "leave_policy"},
	{"vacation", "leave_policy"},
	{"reimburs", "reimbursement"},
	{"expense", "reimbursement"},
	{"insurance", "insurance"},
	{"medical", "insurance"},
	{"health", "insurance"},
	{"onboard", "onboarding"},
	{"joining", "onboarding"},
	{"payroll", "payroll"},
	{"salary", "payroll"},
	{"compensation", "payroll"},
	{"performance", "performance"},
	{"appraisal", "performance"},
	{"conduct", "code_of_conduct"},
	{"ethics", "code_of_conduct"},
	{"grievance", "code_of_conduct"},
	{"remote", "remote_work"},
	{"wfh", "remote_work"},
	{"hybrid", "remote_work"},
	{"benefit", "benefits"},
	{"perks", "benefits"},
	{"it_policy", "it_policy"},
	{"security", "it_policy"},
	{"device", "it_policy"},
}

type IIngestionService interface {
	IngestDirectory(ctx context.Context, dir string) (*dto.IngestResult, error)
	IngestFile(ctx context.Context, path string) error
	ListDocuments(ctx context.Context) ([]dto.DocumentItem, error)
	DeleteDocument(ctx context.Context, source string) error
}

type ingestionService struct {
	documentRepo  contract.PolicyDocumentRepository
	embeddingRepo contract.PolicyEmbeddingRepository
	pubSub        *gochannel.GoChannel
	topicName     string
	logger        logger.ILogger
}

func NewIngestionService(
	documentRepo contract.PolicyDocumentRepository,
	embeddingRepo contract.PolicyEmbeddingRepository,
	pubSub *gochannel.GoChannel,
	topicName string,
	log logger.ILogger,
) IIngestionService {
	return &ingestionService{
		documentRepo:  documentRepo,
		embeddingRepo: embeddingRepo,
		pubSub:        pubSub,
		topicName:     topicName,
		logger:        log,
	}
}

func (s *ingestionService) IngestDirectory(ctx context.Context, dir string) (*dto.IngestResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	result := &dto.IngestResult{Ingested: []string{}, Skipped: []string{}}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".txt" && ext != ".md" {
			result.Skipped = append(result.Skipped, name)
			continue
		}

		if err := s.IngestFile(ctx, filepath.Join(dir, name)); err != nil {
			s.logger.Error("Ingestion", "Failed to ingest file", map[string]interface{}{
				"file":  name,
				"error": err.Error(),
			})
			result.Skipped = append(result.Skipped, name)
			continue
		}
		result.Ingested = append(result.Ingested, name)
	}

	return result, nil
}

// IngestFile stores or refreshes the document row and hands embedding off
// to the async consumer via the embedding topic.
func (s *ingestionService) IngestFile(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return fmt.Errorf("file %s is empty", path)
	}

	source := filepath.Base(path)
	category := DetectCategory(source)
	title := strings.TrimSuffix(source, filepath.Ext(source))
	title = strings.ReplaceAll(title, "_", " ")
	title = strings.ReplaceAll(title, "-", " ")

	doc, err := s.documentRepo.FindBySource(ctx, source)
	if err != nil {
		return err
	}
	if doc == nil {
		doc = &entity.PolicyDocument{
			Source:   source,
			Title:    title,
			Category: category,
			Content:  string(content),
		}
		if err := s.documentRepo.Create(ctx, doc); err != nil {
			return err
		}
	} else {
		doc.Title = title
		doc.Category = category
		doc.Content = string(content)
		if err := s.documentRepo.Update(ctx, doc); err != nil {
			return err
		}
	}

	payload, err := json.Marshal(dto.PublishEmbedChunkMessage{DocumentId: doc.Id})
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		return fmt.Errorf("failed to queue embedding job: %w", err)
	}

	s.logger.Info("Ingestion", "Document queued for embedding", map[string]interface{}{
		"source":   source,
		"category": category,
	})
	return nil
}

func (s *ingestionService) ListDocuments(ctx context.Context) ([]dto.DocumentItem, error) {
	docs, err := s.documentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentItem, len(docs))
	for i, d := range docs {
		items[i] = dto.DocumentItem{
			Id:         d.Id,
			Source:     d.Source,
			Title:      d.Title,
			Category:   d.Category,
			ChunkCount: d.ChunkCount,
			CreatedAt:  d.CreatedAt,
		}
	}
	return items, nil
}

func (s *ingestionService) DeleteDocument(ctx context.Context, source string) error {
	doc, err := s.documentRepo.FindBySource(ctx, source)
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("document %s not found", source)
	}
	if err := s.embeddingRepo.DeleteByDocumentId(ctx, doc.Id); err != nil {
		return err
	}
	return s.documentRepo.Delete(ctx, doc.Id)
}

// DetectCategory infers the policy category from a source filename.
func DetectCategory(source string) string {
	lower := strings.ToLower(source)
	for _, kw := range categoryKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.category
		}
	}
	return "general_policy"
}
