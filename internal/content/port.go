package content

import (
	"context"
	"time"
)

// Fetcher performs a GET against the content endpoint and decodes the JSON
// body into v. path is relative to the endpoint, e.g. "posts?_embed".
type Fetcher interface {
	Get(ctx context.Context, op, path string, v any) error
	Endpoint() string
}

// Logger receives one diagnostic per failed lenient operation.
type Logger interface {
	Failure(ctx context.Context, op string, err error, fields map[string]any)
}

// Failure is a diagnostic record handed to a FailureSink.
type Failure struct {
	Operation  string    `json:"operation"`
	Endpoint   string    `json:"endpoint"`
	Kind       Kind      `json:"kind"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

type FailureSink interface {
	Record(ctx context.Context, f Failure) error
}

// FailureReader lists recorded failures, newest first.
type FailureReader interface {
	QueryRecent(ctx context.Context, limit, offset int) ([]Failure, error)
}
