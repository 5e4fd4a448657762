package api

import (
	"time"

	"github.com/douglaspoa/wordpress-react/internal/content"
)

// API is the application-facing facade. All callers (HTTP, CLI) go through this.
type API struct {
	content   *content.Adapter
	lenient   *content.Lenient
	failures  content.FailureReader
	startedAt time.Time
}

// New wires the facade. failures may be nil when no sink is configured.
func New(a *content.Adapter, l *content.Lenient, failures content.FailureReader) *API {
	return &API{content: a, lenient: l, failures: failures, startedAt: time.Now()}
}

// Health responds with the health status of the app.
func (api *API) Health() map[string]any {
	return map[string]any{
		"app":       "wordpress-content",
		"startedAt": api.startedAt.Format(time.RFC3339),
		"status":    "ok",
		"endpoint":  api.content.Endpoint(),
		"sink":      api.failures != nil,
	}
}
