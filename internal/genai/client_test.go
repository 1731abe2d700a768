package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWithoutKey(t *testing.T) {
	c := NewClient(Options{Model: "gemini-2.5-flash", Logger: zerolog.Nop()})
	assert.False(t, c.Ready())

	_, err := c.Generate(context.Background(), "hello")
	assert.True(t, errors.Is(err, ErrMissingCredential))
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gemini-2.5-flash", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[0].Role)
		assert.Equal(t, "tell me about TRAPPIST-1e", req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "**TRAPPIST-1e** is rocky."}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(Options{APIKey: "k", BaseURL: srv.URL + "/", Model: "gemini-2.5-flash", Logger: zerolog.Nop()})
	require.True(t, c.Ready())

	text, err := c.Generate(context.Background(), "tell me about TRAPPIST-1e")
	require.NoError(t, err)
	assert.Equal(t, "**TRAPPIST-1e** is rocky.", text)
}

func TestGenerateNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c := NewClient(Options{APIKey: "k", BaseURL: srv.URL, Model: "m", Logger: zerolog.Nop()})
	_, err := c.Generate(context.Background(), "x")
	assert.True(t, errors.Is(err, ErrEmptyCompletion))
}

func TestGenerateUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "bad key", "type": "invalid_request_error"}}`))
	}))
	defer srv.Close()

	c := NewClient(Options{APIKey: "bad", BaseURL: srv.URL, Model: "m", Logger: zerolog.Nop()})
	_, err := c.Generate(context.Background(), "x")
	require.Error(t, err)

	var apiErr *openai.APIError
	assert.True(t, errors.As(err, &apiErr))
}
