package stream

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	chatservice "github.com/ahmadziyad0807/portfolio-sub002/internal/service/chat"
	"github.com/ahmadziyad0807/portfolio-sub002/pkg/httpx"
)

// Handler streams assistant replies over Server-Sent Events so the frontend
// can animate typing without polling.
type Handler struct {
	chatSvc *chatservice.Service
}

// New creates the stream handler.
func New(chatSvc *chatservice.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// StreamResponse is a single SSE event payload.
type StreamResponse struct {
	Event     string `json:"event"`
	Content   string `json:"content,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
	Error     string `json:"error,omitempty"`
}

// RegisterRoutes mounts the streaming route on the API router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/stream/{sessionID}", h.handleStream)
}

// handleStream validates the request with plain JSON errors before switching
// the connection to SSE; once the stream is open, failures become error
// events.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	userMessage := r.URL.Query().Get("message")

	if strings.TrimSpace(userMessage) == "" {
		httpx.RespondError(w, http.StatusBadRequest, "message query parameter is required")
		return
	}
	if _, err := h.chatSvc.GetSession(r.Context(), sessionID); err != nil {
		if errors.Is(err, chatservice.ErrSessionNotFound) {
			httpx.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		httpx.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	httpx.SetupSSEHeaders(w)

	httpx.SendSSEChunk(w, flusher, StreamResponse{
		Event:     "start",
		SessionID: sessionID,
	})

	assistant, err := h.chatSvc.SendMessage(r.Context(), sessionID, userMessage)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("stream reply failed")
		httpx.SendSSEChunk(w, flusher, StreamResponse{
			Event: "error",
			Error: "failed to generate reply",
		})
		return
	}

	// Word-level deltas; the frontend joins them with spaces as they arrive.
	for _, word := range strings.Fields(assistant.Content) {
		httpx.SendSSEChunk(w, flusher, StreamResponse{
			Event:     "delta",
			SessionID: sessionID,
			Content:   word,
		})
	}

	httpx.SendSSEChunk(w, flusher, StreamResponse{
		Event:     "message",
		SessionID: sessionID,
		Content:   assistant.Content,
	})
	httpx.SendSSEChunk(w, flusher, StreamResponse{
		Event:     "end",
		SessionID: sessionID,
		Finished:  true,
	})
}
