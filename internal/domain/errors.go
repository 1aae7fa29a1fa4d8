package domain

import "errors"

var (
	// ErrAssistantUnavailable signals a language-model backend failure:
	// unreachable, timed out, or returned output that does not conform to the
	// intent shape. Always recovered by falling back to rule-based parsing.
	ErrAssistantUnavailable = errors.New("assistant unavailable")
	// ErrCatalogUnavailable signals that the catalog store cannot be reached.
	// Fatal to the request; never reported as an empty result set.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrMalformedQuery signals an internal invariant violation in query building.
	ErrMalformedQuery = errors.New("malformed catalog query")
	// ErrInvalidRequest signals a client request that fails validation.
	ErrInvalidRequest = errors.New("invalid request")
)
