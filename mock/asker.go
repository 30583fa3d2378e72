package mock

import (
	"context"

	"github.com/fwojciec/resumer"
)

var _ resumer.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of resumer.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, req resumer.SummaryRequest) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, req resumer.SummaryRequest) (string, error) {
	return s.SummarizeFn(ctx, req)
}

var _ resumer.Asker = (*Asker)(nil)

// Asker is a mock implementation of resumer.Asker.
type Asker struct {
	AskFn func(ctx context.Context, req resumer.AskRequest) (string, error)
}

func (a *Asker) Ask(ctx context.Context, req resumer.AskRequest) (string, error) {
	return a.AskFn(ctx, req)
}
