package http

import "github.com/gin-gonic/gin"

// Register registers the souvenir routes.
func (h *Handler) Register(rg *gin.RouterGroup, generateMiddleware ...gin.HandlerFunc) {
	rg.POST("/ideas", append(generateMiddleware, h.generate)...)
	rg.GET("/orders/:id", h.get)
	rg.POST("/orders/:id/select", h.selectIdea)
}
