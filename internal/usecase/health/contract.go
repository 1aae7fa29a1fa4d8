package health

import "context"

// DBPinger checks catalog store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// AssistantChecker checks language model provider availability.
type AssistantChecker interface {
	HealthCheck(ctx context.Context) error
}
