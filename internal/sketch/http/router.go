package http

import "github.com/gin-gonic/gin"

// Register registers the sketch session routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.create)
	rg.POST("/sessions/:id/events", h.event)
	rg.POST("/sessions/:id/color", h.setColor)
	rg.POST("/sessions/:id/width", h.setWidth)
	rg.POST("/sessions/:id/clear", h.clear)
	rg.GET("/sessions/:id/export", h.export)
	rg.DELETE("/sessions/:id", h.delete)
}
