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

// depositHandler handles HTTP requests for the deposit event log.
type depositHandler struct {
	depositService portssvc.DepositSvcFacade
	authzService   portssvc.AuthzSvcFacade
}

func newDepositHandler(ds portssvc.DepositSvcFacade, as portssvc.AuthzSvcFacade) *depositHandler {
	return &depositHandler{
		depositService: ds,
		authzService:   as,
	}
}

// registerDepositRoutes registers the deposit event routes.
func registerDepositRoutes(rg *gin.RouterGroup, depositService portssvc.DepositSvcFacade, authzService portssvc.AuthzSvcFacade) {
	h := newDepositHandler(depositService, authzService)

	rg.POST("/users/:id/deposits", h.createDeposit) // Own or admin
	rg.DELETE("/deposits/:id", h.deleteDeposit)
}

// createDeposit godoc
// @Summary Record a deposit
// @Description Appends a strictly positive credit to the account's event log.
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   deposit body dto.CreateDepositRequest true "Deposit details"
// @Success 201 {object} dto.DepositResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to record deposit"
// @Security BearerAuth
// @Router /users/{id}/deposits [post]
func (h *depositHandler) createDeposit(c *gin.Context) {
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

	var req dto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	deposit, err := h.depositService.CreateDeposit(ctx, targetUserID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deposit details"})
		default:
			logger.Error("Failed to record deposit", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record deposit"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToDepositResponse(deposit))
}

// deleteDeposit godoc
// @Summary Delete a deposit
// @Description Removes one deposit from the event log, which retroactively lowers the account balance.
// @Tags deposits
// @Produce  json
// @Param   id path string true "Deposit ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Failure 500 {object} map[string]string "Failed to delete deposit"
// @Security BearerAuth
// @Router /deposits/{id} [delete]
func (h *depositHandler) deleteDeposit(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	depositID := c.Param("id")

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

	if err := h.depositService.DeleteDeposit(ctx, depositID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deposit not found"})
		} else {
			logger.Error("Failed to delete deposit", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete deposit"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
