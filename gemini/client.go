// Package gemini implements resumer.Summarizer and resumer.Asker using the
// Google Gemini API.
package gemini

import (
	"context"
	"time"

	"github.com/fwojciec/resumer"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// DefaultTimeout bounds a single generation request.
const DefaultTimeout = 30 * time.Second

// DefaultRequestsPerMinute matches the free-tier request quota.
const DefaultRequestsPerMinute = 15

// Ensure Client implements resumer.Summarizer and resumer.Asker at compile time.
var (
	_ resumer.Summarizer = (*Client)(nil)
	_ resumer.Asker      = (*Client)(nil)
)

// Client generates summaries and answers with Gemini.
// Client is safe for concurrent use.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithModel sets the model name.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRateLimit sets the number of requests allowed per minute.
// Zero or negative disables limiting.
func WithRateLimit(perMinute int) Option {
	return func(c *Client) {
		if perMinute <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
	}
}

// NewClient creates a Client backed by client.
func NewClient(client *genai.Client, opts ...Option) *Client {
	c := &Client{
		client:  client,
		model:   DefaultModel,
		timeout: DefaultTimeout,
	}
	WithRateLimit(DefaultRequestsPerMinute)(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromAPIKey connects to the Gemini API with the given key.
func NewClientFromAPIKey(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if err := resumer.ValidateAPIKey(apiKey); err != nil {
		return nil, err
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, resumer.Errorf(resumer.EINTERNAL, "creating Gemini client: %v", err)
	}
	return NewClient(client, opts...), nil
}

// Summarize summarizes page content.
func (c *Client) Summarize(ctx context.Context, req resumer.SummaryRequest) (string, error) {
	if req.Content == "" {
		return "", resumer.Errorf(resumer.EINVALID, "content required")
	}
	return c.generate(ctx, BuildSummaryPrompt(req))
}

// Ask answers a question about page content.
func (c *Client) Ask(ctx context.Context, req resumer.AskRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return c.generate(ctx, BuildQuestionPrompt(req))
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", TranslateError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", TranslateError(err)
	}
	if result == nil {
		return "", resumer.Errorf(resumer.EINTERNAL, "invalid API response format")
	}

	text := result.Text()
	if text == "" {
		return "", resumer.Errorf(resumer.EINTERNAL, "invalid API response format")
	}
	return text, nil
}
