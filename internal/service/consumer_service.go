package service

import (
	"context"
	"encoding/json"
	"log"

	"hr-assist-be/internal/dto"
	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/repository/contract"
	"hr-assist-be/pkg/embedding"
	"hr-assist-be/pkg/events"
	"hr-assist-be/pkg/nats"
	"hr-assist-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	// ChunkSize: 1000 chars with 200 overlap keeps chunks well inside the
	// embedding model's context while preserving boundary context.
	chunkSize    = 1000
	chunkOverlap = 200
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	documentRepo      contract.PolicyDocumentRepository
	embeddingRepo     contract.PolicyEmbeddingRepository
	embeddingProvider embedding.EmbeddingProvider
	publisher         *nats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	documentRepo contract.PolicyDocumentRepository,
	embeddingRepo contract.PolicyEmbeddingRepository,
	embeddingProvider embedding.EmbeddingProvider,
	publisher *nats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		documentRepo:      documentRepo,
		embeddingRepo:     embeddingRepo,
		embeddingProvider: embeddingProvider,
		publisher:         publisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedChunkMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing embeddings for document %d", payload.DocumentId)

	doc, err := cs.documentRepo.FindById(ctx, payload.DocumentId)
	if err != nil {
		log.Printf("[ERROR] Failed to get document %d: %v", payload.DocumentId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if doc == nil {
		log.Printf("[ERROR] Document not found: %d", payload.DocumentId)
		msg.Ack() // Document deleted? Ack.
		return
	}

	chunks := utils.SplitText(doc.Content, chunkSize, chunkOverlap)
	log.Printf("[INFO] Content split into %d chunks", len(chunks))

	var newEmbeddings []*entity.PolicyEmbedding
	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, embedding.TaskRetrievalDocument)
		if err != nil {
			log.Printf("[ERROR] Failed to generate embedding for chunk %d of document %d: %v", i, payload.DocumentId, err)
			msg.Nack()
			return
		}

		newEmbeddings = append(newEmbeddings, &entity.PolicyEmbedding{
			Document:       chunk,
			EmbeddingValue: res.Embedding.Values,
			DocumentId:     doc.Id,
			Source:         doc.Source,
			Category:       doc.Category,
			ChunkIndex:     i,
		})
	}

	// Old chunks go first so a re-ingested document never doubles up.
	if err := cs.embeddingRepo.DeleteByDocumentId(ctx, doc.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old embeddings: %v", err)
		msg.Nack()
		return
	}

	if len(newEmbeddings) > 0 {
		if err := cs.embeddingRepo.CreateBulk(ctx, newEmbeddings); err != nil {
			log.Printf("[ERROR] Failed to create bulk embeddings: %v", err)
			msg.Nack()
			return
		}
	}

	doc.ChunkCount = len(newEmbeddings)
	if err := cs.documentRepo.Update(ctx, doc); err != nil {
		log.Printf("[WARN] Failed to update chunk count for document %d: %v", doc.Id, err)
	}

	if cs.publisher != nil {
		event := events.NewDocumentIngestedEvent(doc.Id, doc.Source, doc.Category, len(newEmbeddings))
		if err := cs.publisher.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to publish ingestion event for document %d: %v", doc.Id, err)
		}
	}

	log.Printf("[SUCCESS] Document processed: %d chunks for document %d", len(newEmbeddings), payload.DocumentId)
	msg.Ack()
}
