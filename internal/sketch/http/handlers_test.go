package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rebeat-kr/souvenir-backend/internal/sketch/session"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewHandler(session.NewStore(time.Hour)).Register(r.Group("/sketch"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createSession(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/sketch/sessions", map[string]any{
		"width": 40, "height": 30, "scale": 1, "origin_x": 100, "origin_y": 50,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func exportPayload(t *testing.T, r *gin.Engine, id string) *string {
	t.Helper()

	w := doJSON(t, r, http.MethodGet, "/sketch/sessions/"+id+"/export", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Payload *string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Payload
}

func TestSketchFlow_DrawAndExport(t *testing.T) {
	r := setupRouter(t)
	id := createSession(t, r)

	assert.Nil(t, exportPayload(t, r, id), "fresh session exports no payload")

	events := []map[string]any{
		{"kind": "down", "mouse": map[string]any{"x": 110, "y": 60}},
		{"kind": "move", "mouse": map[string]any{"x": 125, "y": 70}},
		{"kind": "up"},
	}
	for _, ev := range events {
		w := doJSON(t, r, http.MethodPost, "/sketch/sessions/"+id+"/events", ev)
		require.Equal(t, http.StatusOK, w.Code)
	}

	payload := exportPayload(t, r, id)
	require.NotNil(t, payload)
	assert.True(t, strings.HasPrefix(*payload, "data:image/png;base64,"))
}

func TestSketchFlow_TouchEvents(t *testing.T) {
	r := setupRouter(t)
	id := createSession(t, r)

	events := []map[string]any{
		{"kind": "down", "touches": []map[string]any{{"x": 110, "y": 60}, {"x": 300, "y": 300}}},
		{"kind": "move", "touches": []map[string]any{{"x": 120, "y": 65}}},
		{"kind": "up", "touches": []map[string]any{}},
	}
	for _, ev := range events {
		w := doJSON(t, r, http.MethodPost, "/sketch/sessions/"+id+"/events", ev)
		require.Equal(t, http.StatusOK, w.Code)
	}

	require.NotNil(t, exportPayload(t, r, id))
}

func TestSketchFlow_ClearDropsExport(t *testing.T) {
	r := setupRouter(t)
	id := createSession(t, r)

	doJSON(t, r, http.MethodPost, "/sketch/sessions/"+id+"/events", map[string]any{"kind": "down", "mouse": map[string]any{"x": 110, "y": 60}})
	doJSON(t, r, http.MethodPost, "/sketch/sessions/"+id+"/events", map[string]any{"kind": "up"})
	require.NotNil(t, exportPayload(t, r, id))

	w := doJSON(t, r, http.MethodPost, "/sketch/sessions/"+id+"/clear", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Nil(t, exportPayload(t, r, id))
}

func TestSketchColorAndWidth(t *testing.T) {
	r := setupRouter(t)
	id := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/sketch/sessions/"+id+"/color", map[string]any{"name": "red"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/sketch/sessions/"+id+"/color", map[string]any{"name": "magenta"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/sketch/sessions/"+id+"/width", map[string]any{"preset": "large"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/sketch/sessions/"+id+"/width", map[string]any{"preset": "huge"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSketchUnknownEventKind(t *testing.T) {
	r := setupRouter(t)
	id := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/sketch/sessions/"+id+"/events", map[string]any{"kind": "hover"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSketchSessionNotFound(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/sketch/sessions/ghost/clear", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSketchDelete(t *testing.T) {
	r := setupRouter(t)
	id := createSession(t, r)

	w := doJSON(t, r, http.MethodDelete, "/sketch/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/sketch/sessions/"+id+"/export", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
