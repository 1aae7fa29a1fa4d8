package intent

import (
	"context"
	"fmt"
	"strings"

	"github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain"
	domintent "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/intent"
)

// DegradationWarning is surfaced to clients whenever the assistant was
// configured but extraction failed and rule-based parsing served instead.
const DegradationWarning = "AI extraction unavailable; used rule-based parsing."

// Resolver turns free text into an intent, preferring the language model and
// degrading to the rule parser when it is unavailable.
type Resolver struct {
	extractor Extractor
}

// NewResolver creates a resolver. A nil extractor means the assistant is
// disabled and every request resolves through the rule parser.
func NewResolver(extractor Extractor) *Resolver {
	return &Resolver{extractor: extractor}
}

// Resolve produces an intent outcome for free-text input. The returned mode
// records which path produced the intent; the warning is non-empty only when
// the assistant was attempted and failed.
func (r *Resolver) Resolve(ctx context.Context, text string) (domintent.Outcome, error) {
	if err := validateText(text); err != nil {
		return domintent.Outcome{}, err
	}

	if r.extractor == nil {
		return domintent.NewOutcome(ParseRules(text), domintent.ModeRules, "")
	}

	it, err := r.extractor.Extract(ctx, text)
	if err != nil {
		return domintent.NewOutcome(ParseRules(text), domintent.ModeRules, DegradationWarning)
	}
	return domintent.NewOutcome(it, domintent.ModeLLM, "")
}

// Direct produces an intent for literal query search: the query terms pass
// through verbatim with no attribute extraction.
func (r *Resolver) Direct(query string) (domintent.Outcome, error) {
	if err := validateText(query); err != nil {
		return domintent.Outcome{}, err
	}

	it, err := domintent.New(nil, "", nil, nil, false, query)
	if err != nil {
		return domintent.Outcome{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	return domintent.NewOutcome(it, domintent.ModeDirect, "")
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: text is required", domain.ErrInvalidRequest)
	}
	if len(text) > domintent.MaxTextLength {
		return fmt.Errorf("%w: text exceeds %d characters", domain.ErrInvalidRequest, domintent.MaxTextLength)
	}
	return nil
}
