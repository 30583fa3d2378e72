package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/resumer"
	"github.com/fwojciec/resumer/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeAPI serves generateContent requests with the given handler and
// returns a client pointed at it.
func fakeAPI(t *testing.T, handler http.HandlerFunc, opts ...gemini.Option) *gemini.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-api-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL + "/"},
	})
	require.NoError(t, err)

	return gemini.NewClient(client, opts...)
}

func reply(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
			}},
		})
	}
}

func fail(status int, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": status, "message": message, "status": "ERROR"},
		})
	}
}

func TestClient_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("returns generated text", func(t *testing.T) {
		t.Parallel()

		prompts := make(chan string, 1)
		client := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			prompts <- string(body)
			assert.True(t, strings.HasSuffix(r.URL.Path, gemini.DefaultModel+":generateContent"), r.URL.Path)
			reply("A short summary.")(w, r)
		})

		summary, err := client.Summarize(context.Background(), resumer.SummaryRequest{Content: "Page text."})

		require.NoError(t, err)
		assert.Equal(t, "A short summary.", summary)
		assert.Contains(t, <-prompts, "Summarize the following webpage content in English.")
	})

	t.Run("uses configured model", func(t *testing.T) {
		t.Parallel()

		paths := make(chan string, 1)
		client := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			paths <- r.URL.Path
			reply("ok")(w, r)
		}, gemini.WithModel("gemini-test"))

		_, err := client.Summarize(context.Background(), resumer.SummaryRequest{Content: "Page text."})

		require.NoError(t, err)
		assert.Contains(t, <-paths, "gemini-test:generateContent")
	})

	t.Run("requires content", func(t *testing.T) {
		t.Parallel()

		client := gemini.NewClient(nil)

		_, err := client.Summarize(context.Background(), resumer.SummaryRequest{})

		assert.Equal(t, resumer.EINVALID, resumer.ErrorCode(err))
	})

	t.Run("translates api errors", func(t *testing.T) {
		t.Parallel()

		client := fakeAPI(t, fail(http.StatusUnauthorized, "API key invalid"))

		_, err := client.Summarize(context.Background(), resumer.SummaryRequest{Content: "Page text."})

		assert.Equal(t, resumer.EUNAUTHORIZED, resumer.ErrorCode(err))
	})

	t.Run("empty candidates are an invalid response", func(t *testing.T) {
		t.Parallel()

		client := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates": []}`))
		})

		_, err := client.Summarize(context.Background(), resumer.SummaryRequest{Content: "Page text."})

		assert.Equal(t, resumer.EINTERNAL, resumer.ErrorCode(err))
		assert.Equal(t, "invalid API response format", resumer.ErrorMessage(err))
	})

	t.Run("times out slow requests", func(t *testing.T) {
		t.Parallel()

		client := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}, gemini.WithTimeout(50*time.Millisecond))

		_, err := client.Summarize(context.Background(), resumer.SummaryRequest{Content: "Page text."})

		assert.Equal(t, resumer.ETIMEOUT, resumer.ErrorCode(err))
	})
}

func TestClient_Ask(t *testing.T) {
	t.Parallel()

	t.Run("returns answer", func(t *testing.T) {
		t.Parallel()

		prompts := make(chan string, 1)
		client := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			prompts <- string(body)
			reply("Forty-two.")(w, r)
		})

		answer, err := client.Ask(context.Background(), resumer.AskRequest{
			Content:  "The answer is forty-two.",
			Question: "What is the answer?",
		})

		require.NoError(t, err)
		assert.Equal(t, "Forty-two.", answer)
		assert.Contains(t, <-prompts, "Question: What is the answer?")
	})

	t.Run("requires a question", func(t *testing.T) {
		t.Parallel()

		client := gemini.NewClient(nil) // nil client ok for this test

		_, err := client.Ask(context.Background(), resumer.AskRequest{Content: "text"})

		require.Error(t, err)
		assert.Equal(t, resumer.EINVALID, resumer.ErrorCode(err))
		assert.Contains(t, resumer.ErrorMessage(err), "question required")
	})

	t.Run("rate limiter honors context", func(t *testing.T) {
		t.Parallel()

		client := fakeAPI(t, reply("ok"), gemini.WithRateLimit(1))

		_, err := client.Ask(context.Background(), resumer.AskRequest{Content: "c", Question: "q"})
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err = client.Ask(ctx, resumer.AskRequest{Content: "c", Question: "q"})

		require.Error(t, err)
	})
}

func TestNewClientFromAPIKey_RejectsShortKeys(t *testing.T) {
	t.Parallel()

	_, err := gemini.NewClientFromAPIKey(context.Background(), "short")

	assert.Equal(t, resumer.EINVALID, resumer.ErrorCode(err))
}
