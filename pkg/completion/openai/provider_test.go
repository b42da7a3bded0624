package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eva-support-be/pkg/completion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSendsExpectedPayload(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Here for you."}},
			},
		})
	}))
	defer server.Close()

	provider := NewOpenAIProvider(server.URL, "test-key", "gpt-3.5-turbo")
	reply, err := provider.Chat(context.Background(), []completion.Message{
		{Role: "system", Content: "be kind"},
		{Role: "user", Content: "hello"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Here for you.", reply)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-3.5-turbo", gotBody.Model)
	assert.InDelta(t, 0.7, gotBody.Temperature, 0.001)
	assert.Equal(t, 500, gotBody.MaxTokens)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "hello", gotBody.Messages[1].Content)
}

func TestChatOptionsOverrideDefaults(t *testing.T) {
	var gotBody chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "ok"}},
			},
		})
	}))
	defer server.Close()

	provider := NewOpenAIProvider(server.URL, "k", "default-model")
	_, err := provider.Chat(context.Background(),
		[]completion.Message{{Role: "user", Content: "hi"}},
		completion.WithModel("other-model"),
		completion.WithTemperature(0.2),
		completion.WithMaxTokens(64),
	)
	require.NoError(t, err)

	assert.Equal(t, "other-model", gotBody.Model)
	assert.InDelta(t, 0.2, gotBody.Temperature, 0.001)
	assert.Equal(t, 64, gotBody.MaxTokens)
}

func TestChatMapsModelRoleToAssistant(t *testing.T) {
	var gotBody chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "ok"}},
			},
		})
	}))
	defer server.Close()

	provider := NewOpenAIProvider(server.URL, "k", "m")
	_, err := provider.Chat(context.Background(), []completion.Message{
		{Role: "model", Content: "previous reply"},
	})
	require.NoError(t, err)
	assert.Equal(t, "assistant", gotBody.Messages[0].Role)
}

func TestChatErrorStatuses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewOpenAIProvider(server.URL, "k", "m")
	_, err := provider.Chat(context.Background(), []completion.Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestChatEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	provider := NewOpenAIProvider(server.URL, "k", "m")
	_, err := provider.Chat(context.Background(), []completion.Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no response from AI")
}
