package health

import (
	"net/http"
	"time"

	"github.com/ahmadziyad0807/portfolio-sub002/pkg/httpx"
)

// Handler reports service liveness.
type Handler struct {
	version   string
	startedAt time.Time
}

// New creates the health handler, pinning the process start time.
func New(version string) *Handler {
	return &Handler{version: version, startedAt: time.Now()}
}

// Handle responds with the liveness payload the frontend polls for.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	httpx.RespondJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Seconds(),
		"version":   h.version,
	})
}
