package advisor

import (
	"context"

	domcat "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/catalog"
	domintent "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/intent"
)

// Catalog defines the storage contract for part search.
type Catalog interface {
	Search(ctx context.Context, it domintent.Intent, limit int) ([]domcat.Product, error)
}

// IntentResolver turns user input into a structured intent outcome.
type IntentResolver interface {
	Resolve(ctx context.Context, text string) (domintent.Outcome, error)
	Direct(query string) (domintent.Outcome, error)
}
