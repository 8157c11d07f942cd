package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mroncal/coffee_ledger_app/internal/apperrors"
	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	portssvc "github.com/mroncal/coffee_ledger_app/internal/core/ports/services"
	"github.com/mroncal/coffee_ledger_app/internal/dto"
	"github.com/mroncal/coffee_ledger_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// purchaseHandler handles HTTP requests for the purchase event log.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
	authzService    portssvc.AuthzSvcFacade
}

func newPurchaseHandler(ps portssvc.PurchaseSvcFacade, as portssvc.AuthzSvcFacade) *purchaseHandler {
	return &purchaseHandler{
		purchaseService: ps,
		authzService:    as,
	}
}

// registerPurchaseRoutes registers the purchase event routes.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade, authzService portssvc.AuthzSvcFacade) {
	h := newPurchaseHandler(purchaseService, authzService)

	rg.POST("/users/:id/purchases", h.createPurchase) // Own or admin
	rg.DELETE("/purchases/:id", h.deletePurchase)
}

// createPurchase godoc
// @Summary Record a purchase
// @Description Appends a purchase to the account's event log. Quantity defaults to 1 when omitted.
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to record purchase"
// @Security BearerAuth
// @Router /users/{id}/purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	targetUserID := c.Param("id")

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	actingUser, err := h.authzService.Authorize(ctx, actingUserID, domain.ActiveAccount)
	if err != nil {
		respondAuthzError(c, err)
		return
	}
	if actingUserID != targetUserID && !actingUser.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(ctx, targetUserID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid purchase details"})
		default:
			logger.Error("Failed to record purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record purchase"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// deletePurchase godoc
// @Summary Delete a purchase
// @Description Removes one purchase from the event log, which retroactively raises the account balance.
// @Tags purchases
// @Produce  json
// @Param   id path string true "Purchase ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to delete purchase"
// @Security BearerAuth
// @Router /purchases/{id} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	purchaseID := c.Param("id")

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	// Deletion only demands an authenticated subject.
	if _, err := h.authzService.Authorize(ctx, actingUserID); err != nil {
		respondAuthzError(c, err)
		return
	}

	if err := h.purchaseService.DeletePurchase(ctx, purchaseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		} else {
			logger.Error("Failed to delete purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete purchase"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
