package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fwojciec/resumer"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ resumer.TokenCounter = (*TokenCounter)(nil)

// TokenCounter reports how many input tokens a page's content costs the
// model, without calling the API. The tokenizer is loaded on the first
// non-empty count and reused afterwards.
type TokenCounter struct {
	model string

	once sync.Once
	tok  *tokenizer.LocalTokenizer
	err  error
}

// NewTokenCounter returns a TokenCounter for model.
func NewTokenCounter(model string) *TokenCounter {
	return &TokenCounter{model: model}
}

func (tc *TokenCounter) tokenizer() (*tokenizer.LocalTokenizer, error) {
	tc.once.Do(func() {
		tc.tok, tc.err = tokenizer.NewLocalTokenizer(tc.model)
		if tc.err != nil {
			tc.err = fmt.Errorf("load tokenizer for %s: %w", tc.model, tc.err)
		}
	})
	return tc.tok, tc.err
}

// CountTokens counts the tokens of text sent as a single user turn.
// Blank text counts as zero.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	tok, err := tc.tokenizer()
	if err != nil {
		return 0, err
	}

	resp, err := tok.CountTokens(genai.Text(text), nil)
	if err != nil {
		return 0, err
	}
	return int(resp.TotalTokens), nil
}
