package chat

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	chatservice "github.com/ahmadziyad0807/portfolio-sub002/internal/service/chat"
)

type inboundFrame struct {
	Message string `json:"message"`
}

type outboundFrame struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId,omitempty"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// handleWebSocket runs a bidirectional chat loop: the client sends
// {"message": ...} frames, the server answers each with the assistant turn.
// The session is validated before upgrading so the client gets a proper 404
// instead of a dropped socket.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if _, err := h.chatSvc.GetSession(r.Context(), sessionID); err != nil {
		respondServiceError(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	h.writeFrame(conn, outboundFrame{Type: "connected", SessionID: sessionID})

	for {
		var inbound inboundFrame
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn().Err(err).Str("session_id", sessionID).Msg("websocket closed unexpectedly")
			}
			return
		}

		assistant, err := h.chatSvc.SendMessage(r.Context(), sessionID, inbound.Message)
		if err != nil {
			h.writeFrame(conn, outboundFrame{
				Type:      "error",
				SessionID: sessionID,
				Error:     wsErrorMessage(err),
			})
			continue
		}

		h.writeFrame(conn, outboundFrame{
			Type:      "message",
			SessionID: sessionID,
			Data:      assistant,
		})
	}
}

func (h *Handler) writeFrame(conn *websocket.Conn, frame outboundFrame) {
	frame.Timestamp = time.Now().UnixMilli()
	if err := conn.WriteJSON(frame); err != nil {
		log.Error().Err(err).Msg("failed to write websocket frame")
	}
}

func wsErrorMessage(err error) string {
	if errors.Is(err, chatservice.ErrEmptyMessage) || errors.Is(err, chatservice.ErrSessionNotFound) {
		return err.Error()
	}
	return "internal server error"
}
