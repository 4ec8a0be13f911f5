package outbound

import "context"

// TextGeneratorPort is the text-generation backend. Implementations retry
// internally and return domain.ErrGenerationUnavailable once their attempt
// ceiling is exhausted; they never return partial content.
type TextGeneratorPort interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
