package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rebeat-kr/souvenir-backend/internal/souvenir/domain"
	"github.com/rebeat-kr/souvenir-backend/internal/souvenir/repository"
)

// IdeaGenerator runs the two-phase idea generation for a submitted request.
type IdeaGenerator interface {
	GenerateIdeas(ctx context.Context, req domain.SouvenirRequest) ([]domain.SouvenirIdea, error)
}

// Handler serves the souvenir order endpoints.
type Handler struct {
	ideas  IdeaGenerator
	orders *repository.OrderRepository
}

// NewHandler creates a new souvenir Handler.
func NewHandler(ideas IdeaGenerator, orders *repository.OrderRepository) *Handler {
	return &Handler{ideas: ideas, orders: orders}
}

// generate handles a form submission: it records the order, runs the
// two-phase generation, and returns either all five ideas or one
// categorized error. The caller retries by resubmitting.
func (h *Handler) generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err := req.validate(time.Now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	order := &domain.SouvenirOrder{
		Request: req.toDomain(),
		Status:  domain.StatusPending,
	}
	if err := h.orders.Create(ctx, order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	ideas, err := h.ideas.GenerateIdeas(ctx, order.Request)
	if err != nil {
		log.Printf("[souvenir] order=%s generation failed: %v", order.OrderID, err)
		order.Status = domain.StatusFailed
		order.FailureReason = domain.UserMessage(err)
		if uerr := h.orders.Update(ctx, order); uerr != nil {
			log.Printf("[souvenir] order=%s status update failed: %v", order.OrderID, uerr)
		}
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "order_id": order.OrderID, "error": order.FailureReason})
		return
	}

	order.Status = domain.StatusGenerated
	order.Ideas = ideas
	if err := h.orders.Update(ctx, order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "order_id": order.OrderID, "ideas": ideas})
}

func (h *Handler) get(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "order": order})
}

// selectIdea finalizes an order on one of its generated ideas.
func (h *Handler) selectIdea(c *gin.Context) {
	var req selectReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Index == nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	ctx := c.Request.Context()
	order, err := h.orders.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	if order.Status != domain.StatusGenerated && order.Status != domain.StatusSelected {
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": domain.ErrOrderNotReady.Error()})
		return
	}
	if *req.Index < 0 || *req.Index >= len(order.Ideas) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": domain.ErrInvalidSelection.Error()})
		return
	}

	order.Status = domain.StatusSelected
	order.SelectedIndex = req.Index
	if err := h.orders.Update(ctx, order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "order": order, "selected": order.SelectedIdea()})
}
