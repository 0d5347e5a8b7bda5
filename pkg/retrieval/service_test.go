package retrieval

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-assist-be/pkg/embedding"
)

type stubStore struct {
	docs      []ScoredDocument
	err       error
	gotVector []float32
	gotLimit  int
}

func (s *stubStore) SearchSimilarWithScore(_ context.Context, queryEmbedding []float32, limit int, _ float64) ([]ScoredDocument, error) {
	s.gotVector = queryEmbedding
	s.gotLimit = limit
	return s.docs, s.err
}

type stubEmbedder struct {
	values  []float32
	err     error
	gotText string
	gotTask string
}

func (s *stubEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	s.gotText = text
	s.gotTask = taskType
	if s.err != nil {
		return nil, s.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: s.values},
	}, nil
}

func TestSearchWithScoreMapsSimilarityToDistance(t *testing.T) {
	store := &stubStore{docs: []ScoredDocument{
		{Content: "Casual leave is 12 days.", Source: "leave_policy.md", Category: "leave_policy", Similarity: 0.91},
		{Content: "Sick leave is 10 days.", Source: "leave_policy.md", Category: "leave_policy", Similarity: 0.72},
	}}
	embedder := &stubEmbedder{values: []float32{0.1, 0.2, 0.3}}
	svc := NewService(store, embedder, log.New(io.Discard, "", 0))

	chunks, err := svc.SearchWithScore(context.Background(), "how many casual leaves?", 6)
	require.NoError(t, err)

	assert.Equal(t, "how many casual leaves?", embedder.gotText)
	assert.Equal(t, embedding.TaskRetrievalQuery, embedder.gotTask)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, store.gotVector)
	assert.Equal(t, 6, store.gotLimit)

	require.Len(t, chunks, 2)
	assert.Equal(t, "leave_policy.md", chunks[0].Source)
	assert.InDelta(t, 0.09, chunks[0].Distance, 1e-9)
	assert.InDelta(t, 0.28, chunks[1].Distance, 1e-9)
}

func TestSearchWithScoreEmbeddingFailure(t *testing.T) {
	svc := NewService(&stubStore{}, &stubEmbedder{err: errors.New("ollama down")}, log.New(io.Discard, "", 0))

	_, err := svc.SearchWithScore(context.Background(), "q", 6)

	assert.ErrorContains(t, err, "failed to embed query")
}

func TestSearchWithScoreStoreFailure(t *testing.T) {
	store := &stubStore{err: errors.New("connection refused")}
	svc := NewService(store, &stubEmbedder{values: []float32{0.5}}, log.New(io.Discard, "", 0))

	_, err := svc.SearchWithScore(context.Background(), "q", 6)

	assert.ErrorContains(t, err, "vector search failed")
}
