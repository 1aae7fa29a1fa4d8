package intent

// Mode tags which extraction path produced an intent.
type Mode string

// Extraction path constants.
const (
	// ModeLLM means the language-model extractor produced the intent.
	ModeLLM Mode = "llm"
	// ModeRules means the deterministic rule-based parser produced the intent.
	ModeRules Mode = "rules"
	// ModeDirect means no interpretation occurred: the intent carries the raw
	// query terms from the header-search path.
	ModeDirect Mode = "direct"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == ModeLLM || m == ModeRules || m == ModeDirect
}
