package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VGuerra123/TiendaOnline-sub000/internal/api/middleware"
	"github.com/VGuerra123/TiendaOnline-sub000/internal/domain"
	"github.com/VGuerra123/TiendaOnline-sub000/internal/service"
	"github.com/VGuerra123/TiendaOnline-sub000/pkg/errors"
)

// AddLinesRequest is the payload for POST /v1/cart/lines
type AddLinesRequest struct {
	Lines []AddLineItem `json:"lines" binding:"required,min=1"`
}

type AddLineItem struct {
	VariantID string `json:"variant_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateLinesRequest is the payload for PATCH /v1/cart/lines. Quantities
// are absolute, not deltas; use DELETE to remove lines.
type UpdateLinesRequest struct {
	Lines []UpdateLineItem `json:"lines" binding:"required,min=1"`
}

type UpdateLineItem struct {
	LineID   string `json:"line_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"min=0"`
}

// RemoveLinesRequest is the payload for DELETE /v1/cart/lines
type RemoveLinesRequest struct {
	LineIDs []string `json:"line_ids" binding:"required,min=1"`
}

// HandleGetCart handles GET /v1/cart
func HandleGetCart(svc *service.CartService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing session"})
			return
		}

		cart, err := svc.GetCart(c.Request.Context(), sessionID)
		if err != nil {
			respondCartError(c, logger, "get cart", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": cart})
	}
}

// HandleAddLines handles POST /v1/cart/lines. The cart is created lazily
// on the session's first add.
func HandleAddLines(svc *service.CartService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing session"})
			return
		}

		var req AddLinesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		lines := make([]domain.CartLineInput, 0, len(req.Lines))
		for _, l := range req.Lines {
			lines = append(lines, domain.CartLineInput{VariantID: l.VariantID, Quantity: l.Quantity})
		}

		cart, err := svc.AddLines(c.Request.Context(), sessionID, lines)
		if err != nil {
			respondCartError(c, logger, "add lines", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": cart})
	}
}

// HandleUpdateLines handles PATCH /v1/cart/lines
func HandleUpdateLines(svc *service.CartService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing session"})
			return
		}

		var req UpdateLinesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		lines := make([]domain.CartLineUpdate, 0, len(req.Lines))
		for _, l := range req.Lines {
			lines = append(lines, domain.CartLineUpdate{LineID: l.LineID, Quantity: l.Quantity})
		}

		cart, err := svc.UpdateLines(c.Request.Context(), sessionID, lines)
		if err != nil {
			respondCartError(c, logger, "update lines", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": cart})
	}
}

// HandleRemoveLines handles DELETE /v1/cart/lines
func HandleRemoveLines(svc *service.CartService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing session"})
			return
		}

		var req RemoveLinesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		cart, err := svc.RemoveLines(c.Request.Context(), sessionID, req.LineIDs)
		if err != nil {
			respondCartError(c, logger, "remove lines", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": cart})
	}
}

// respondCartError maps the client error taxonomy onto HTTP statuses.
// Cart errors surface to the user because they block checkout.
func respondCartError(c *gin.Context, logger *zap.Logger, op string, err error) {
	switch e := err.(type) {
	case *errors.ErrNotConfigured:
		logger.Error("Cart operation rejected, storefront not configured", zap.String("op", op))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": e.Error()})
	case *errors.ErrValidation:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": e.Error()})
	case *errors.ErrRemoteValidation:
		// Platform rejection (e.g. out of stock); messages shown verbatim
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": e.Error(), "messages": e.Messages})
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrTransport:
		logger.Error("Cart operation transport failure", zap.String("op", op), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "commerce platform unreachable"})
	default:
		logger.Error("Cart operation failed", zap.String("op", op), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
