package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/ToolFinder/pkg/domain/embedding"
	"github.com/openai/openai-go/v2/option"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc) embedding.Creator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return NewOpenAIEmbeddingService(logger, option.WithBaseURL(server.URL+"/"), option.WithMaxRetries(0))
}

func TestGenerate_Success(t *testing.T) {
	var gotBody map[string]interface{}
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"object": "list",
			"model": "text-embedding-3-small",
			"data": [{"object": "embedding", "index": 0, "embedding": [3, 4]}],
			"usage": {"prompt_tokens": 3, "total_tokens": 3}
		}`))
	})

	emb, err := svc.Generate(context.Background(), "make videos", &embedding.Config{
		Credentials: embedding.Credentials{ApiKey: "sk-test"},
		Dimensions:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, "make videos", gotBody["input"])
	assert.Equal(t, DefaultModel, gotBody["model"])
	assert.EqualValues(t, 2, gotBody["dimensions"])
	assert.Equal(t, DefaultModel, emb.Model)
	require.Len(t, emb.Value, 2)
	assert.InDelta(t, 0.6, emb.Value[0], 1e-9)
	assert.InDelta(t, 0.8, emb.Value[1], 1e-9)
}

func TestGenerate_MissingAPIKey(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called without credentials")
	})

	_, err := svc.Generate(context.Background(), "x", &embedding.Config{})
	assert.ErrorIs(t, err, embedding.ErrMissingCredentials)
}

func TestGenerate_ProviderError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "bad key", "type": "invalid_request_error"}}`))
	})

	_, err := svc.Generate(context.Background(), "x", &embedding.Config{
		Credentials: embedding.Credentials{ApiKey: "sk-bad"},
	})
	assert.ErrorIs(t, err, embedding.ErrProviderNonOKResponse)
}

func TestGenerate_EmptyData(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object": "list", "data": [], "model": "m", "usage": {"prompt_tokens": 0, "total_tokens": 0}}`))
	})

	_, err := svc.Generate(context.Background(), "x", &embedding.Config{
		Credentials: embedding.Credentials{ApiKey: "sk-test"},
	})
	assert.ErrorIs(t, err, embedding.ErrEmptyEmbedding)
}

func TestGetOrCreateClient_Reuses(t *testing.T) {
	svc, ok := NewOpenAIEmbeddingService(logrus.New()).(*embeddingService)
	require.True(t, ok)

	a := svc.getOrCreateClient("k1")
	b := svc.getOrCreateClient("k1")
	c := svc.getOrCreateClient("k2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}
