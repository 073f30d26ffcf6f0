package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rebeat-kr/souvenir-backend/internal/catalog/repository"
)

// Handler serves the catalog browsing endpoints.
type Handler struct {
	repo *repository.CatalogRepository
}

// NewHandler creates a new catalog Handler.
func NewHandler(repo *repository.CatalogRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) listAlbums(c *gin.Context) {
	albums, err := h.repo.ListAlbums(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "albums": albums})
}

func (h *Handler) listActivities(c *gin.Context) {
	activities, err := h.repo.ListActivities(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "activities": activities})
}

func (h *Handler) getActivity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid activity id"})
		return
	}

	activity, err := h.repo.GetActivity(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "activity": activity})
}
