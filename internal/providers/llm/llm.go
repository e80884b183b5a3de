package llm

import "context"

type TextGenerator interface {
	// GenerateText returns the full completion for one prompt (single
	// request, no streaming).
	GenerateText(ctx context.Context, prompt string) (string, error)
	Close() error
}
