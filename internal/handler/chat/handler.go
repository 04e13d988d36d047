package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	chatservice "github.com/ahmadziyad0807/portfolio-sub002/internal/service/chat"
	"github.com/ahmadziyad0807/portfolio-sub002/pkg/httpx"
)

// Handler exposes the chat REST and websocket routes.
type Handler struct {
	chatSvc  *chatservice.Service
	upgrader websocket.Upgrader
}

// New creates the chat handler.
func New(chatSvc *chatservice.Service) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the chat routes on the API router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat/sessions", h.handleCreateSession)
	r.Post("/chat/message", h.handleSendMessage)
	r.Get("/chat/sessions/{sessionID}/messages", h.handleTranscript)
	r.Get("/chat/ws/{sessionID}", h.handleWebSocket)
}

// handleCreateSession provisions a fresh session. The request body carries no
// fields, so it is intentionally not decoded.
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		httpx.RespondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	httpx.RespondSuccess(w, http.StatusCreated, session)
}

// handleSendMessage records a visitor message and returns the assistant reply.
func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.SessionID == "" {
		httpx.RespondError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	assistant, err := h.chatSvc.SendMessage(r.Context(), payload.SessionID, payload.Message)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	httpx.RespondSuccess(w, http.StatusOK, map[string]any{"message": assistant})
}

// handleTranscript returns the ordered message history for a session.
func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.chatSvc.Transcript(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	httpx.RespondSuccess(w, http.StatusOK, map[string]any{"messages": messages})
}

// respondServiceError maps service errors onto the status codes the frontend
// keys off, hiding anything unexpected behind a generic message.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chatservice.ErrEmptyMessage):
		httpx.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, chatservice.ErrSessionNotFound):
		httpx.RespondError(w, http.StatusNotFound, err.Error())
	default:
		httpx.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
