package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rebeat-kr/souvenir-backend/internal/sketch/session"
)

// Handler serves the sketch session endpoints.
type Handler struct {
	store *session.Store
}

// NewHandler creates a new sketch Handler.
func NewHandler(store *session.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	sess := h.store.Create(req.Width, req.Height, req.Scale, req.OriginX, req.OriginY)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "session_id": sess.ID})
}

func (h *Handler) event(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if err := sess.Pointer(req.Kind, req.pointerEvent()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) setColor(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req colorReq
	if err := c.ShouldBindJSON(&req); err != nil || !sess.SetColor(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown color"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) setWidth(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req widthReq
	if err := c.ShouldBindJSON(&req); err != nil || !sess.SetWidth(req.Preset) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown width preset"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) clear(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	sess.Clear()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// export returns the last stroke-completion payload, or a null payload when
// nothing has been drawn (or the canvas was cleared).
func (h *Handler) export(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	payload, has := sess.Payload()
	if !has {
		c.JSON(http.StatusOK, gin.H{"ok": true, "payload": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "payload": payload})
}

func (h *Handler) delete(c *gin.Context) {
	h.store.Delete(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) session(c *gin.Context) (*session.Session, bool) {
	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "session not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return nil, false
	}
	return sess, true
}
