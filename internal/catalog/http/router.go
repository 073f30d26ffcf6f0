package http

import "github.com/gin-gonic/gin"

// Register registers the catalog routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/albums", h.listAlbums)
	rg.GET("/activities", h.listActivities)
	rg.GET("/activities/:id", h.getActivity)
}
