package intent

import (
	"context"

	domintent "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/intent"
)

// Extractor derives a structured intent from free text via an external
// language model. Any failure must be reported as
// domain.ErrAssistantUnavailable so the resolver can fall back.
type Extractor interface {
	Extract(ctx context.Context, text string) (domintent.Intent, error)
}
