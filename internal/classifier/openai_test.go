package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoppinglist/internal/config"
)

func TestOpenAIClient_Complete(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "yes"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewOpenAIClient(config.OpenAIConfig{
		APIKey:         "test-key",
		BaseURL:        server.URL,
		Model:          "gpt-3.5-turbo",
		TimeoutSeconds: 5,
	})

	answer, err := client.Complete(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)
	assert.Equal(t, "yes", answer)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-3.5-turbo", gotReq.Model)
	assert.Equal(t, 5, gotReq.MaxTokens)
	assert.Equal(t, 0.0, gotReq.Temperature)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "user prompt", gotReq.Messages[1].Content)
}

func TestOpenAIClient_CompleteErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "rate limited", http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"choices": []}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewOpenAIClient(config.OpenAIConfig{
				APIKey:         "test-key",
				BaseURL:        server.URL,
				TimeoutSeconds: 5,
			})

			_, err := client.Complete(context.Background(), "system", "prompt")
			assert.Error(t, err)
		})
	}
}
