package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatmodel "github.com/ahmadziyad0807/portfolio-sub002/internal/model/chat"
	chatservice "github.com/ahmadziyad0807/portfolio-sub002/internal/service/chat"
	"github.com/ahmadziyad0807/portfolio-sub002/internal/service/reply"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func setupRouter() (*chi.Mux, *chatservice.Service) {
	chatSvc := chatservice.NewService(chatmodel.NewMemoryStore(), reply.NewCanned())
	handler := New(chatSvc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, chatSvc
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)
	return resp
}

func decodeResponse(t *testing.T, resp *httptest.ResponseRecorder) apiResponse {
	t.Helper()

	var decoded apiResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &decoded))
	return decoded
}

func TestCreateSession(t *testing.T) {
	r, _ := setupRouter()

	resp := postJSON(t, r, "/chat/sessions", map[string]any{})
	require.Equal(t, http.StatusCreated, resp.Code)

	decoded := decodeResponse(t, resp)
	require.True(t, decoded.Success)

	var session chatmodel.Session
	require.NoError(t, json.Unmarshal(decoded.Data, &session))
	assert.NotEmpty(t, session.ID)
}

func TestCreateSessionIDsAreUnique(t *testing.T) {
	r, _ := setupRouter()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		resp := postJSON(t, r, "/chat/sessions", map[string]any{})
		require.Equal(t, http.StatusCreated, resp.Code)

		var session chatmodel.Session
		require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &session))
		require.False(t, seen[session.ID], "session ID repeated: %s", session.ID)
		seen[session.ID] = true
	}
}

func TestSendMessage(t *testing.T) {
	r, svc := setupRouter()
	session, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	resp := postJSON(t, r, "/chat/message", map[string]string{
		"sessionId": session.ID,
		"message":   "Hello",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	decoded := decodeResponse(t, resp)
	require.True(t, decoded.Success)

	var data struct {
		Message chatmodel.Message `json:"message"`
	}
	require.NoError(t, json.Unmarshal(decoded.Data, &data))
	assert.Equal(t, chatmodel.TypeAssistant, data.Message.Type)
	assert.NotEmpty(t, data.Message.Content)
}

func TestSendMessageEmpty(t *testing.T) {
	r, svc := setupRouter()
	session, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	for _, message := range []string{"", "   "} {
		resp := postJSON(t, r, "/chat/message", map[string]string{
			"sessionId": session.ID,
			"message":   message,
		})
		require.Equal(t, http.StatusBadRequest, resp.Code)

		decoded := decodeResponse(t, resp)
		assert.False(t, decoded.Success)
		assert.NotEmpty(t, decoded.Error)
	}
}

func TestSendMessageUnknownSession(t *testing.T) {
	r, _ := setupRouter()

	resp := postJSON(t, r, "/chat/message", map[string]string{
		"sessionId": "does-not-exist",
		"message":   "Hello",
	})
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.False(t, decodeResponse(t, resp).Success)
}

func TestSendMessageMissingSessionID(t *testing.T) {
	r, _ := setupRouter()

	resp := postJSON(t, r, "/chat/message", map[string]string{"message": "Hello"})
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSendMessageInvalidBody(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/chat/message", bytes.NewReader([]byte("not json")))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestTranscript(t *testing.T) {
	r, svc := setupRouter()
	session, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	_, err = svc.SendMessage(context.Background(), session.ID, "Hello")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/chat/sessions/"+session.ID+"/messages", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var data struct {
		Messages []chatmodel.Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &data))
	require.Len(t, data.Messages, 2)
	assert.Equal(t, chatmodel.TypeUser, data.Messages[0].Type)
	assert.Equal(t, chatmodel.TypeAssistant, data.Messages[1].Type)
}

func TestTranscriptUnknownSession(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/chat/sessions/missing/messages", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusNotFound, resp.Code)
}

// Mirrors the frontend's first-visit flow: open a session, say hello, then
// trip the empty-message validation on the same session.
func TestSessionScenario(t *testing.T) {
	r, _ := setupRouter()

	resp := postJSON(t, r, "/chat/sessions", map[string]any{})
	require.Equal(t, http.StatusCreated, resp.Code)

	var session chatmodel.Session
	require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &session))

	resp = postJSON(t, r, "/chat/message", map[string]string{
		"sessionId": session.ID,
		"message":   "Hello",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	require.True(t, decodeResponse(t, resp).Success)

	resp = postJSON(t, r, "/chat/message", map[string]string{
		"sessionId": session.ID,
		"message":   "",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.False(t, decodeResponse(t, resp).Success)
}
