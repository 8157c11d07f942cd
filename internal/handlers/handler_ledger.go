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

// noTransactionsMessage is returned instead of an empty list so clients can
// render the first-use state differently from a filtered-out history.
const noTransactionsMessage = "no transactions yet"

// ledgerHandler serves the derived per-account views: balance and history.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	authzService  portssvc.AuthzSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade, as portssvc.AuthzSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
		authzService:  as,
	}
}

// registerLedgerRoutes registers the derived-view routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, authzService portssvc.AuthzSvcFacade) {
	h := newLedgerHandler(ledgerService, authzService)

	users := rg.Group("/users")
	{
		users.GET("/:id/balance", h.getBalance)           // Own or admin
		users.GET("/:id/transactions", h.getTransactions) // Own or admin
	}
}

// authorizeAccountAccess runs the gate for the acting user and checks the
// self-or-admin ownership rule against the target account. It writes the
// error response itself and reports success via the boolean.
func (h *ledgerHandler) authorizeAccountAccess(c *gin.Context, targetUserID string) bool {
	ctx := c.Request.Context()

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return false
	}
	actingUser, err := h.authzService.Authorize(ctx, actingUserID, domain.ActiveAccount)
	if err != nil {
		respondAuthzError(c, err)
		return false
	}
	if actingUserID != targetUserID && !actingUser.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return false
	}
	return true
}

// getBalance godoc
// @Summary Get an account balance
// @Description Returns deposits minus purchases over the account's full history
// @Tags ledger
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Security BearerAuth
// @Router /users/{id}/balance [get]
func (h *ledgerHandler) getBalance(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	targetUserID := c.Param("id")

	if !h.authorizeAccountAccess(c, targetUserID) {
		return
	}

	balance, err := h.ledgerService.ComputeBalance(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logger.Error("Failed to compute balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{UserID: targetUserID, Balance: balance})
}

// getTransactions godoc
// @Summary Get an account's transaction history
// @Description Returns the account's purchases and deposits merged, most recent first. An account with no events yet gets an explicit marker instead of an empty list.
// @Tags ledger
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.TransactionHistoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to assemble history"
// @Security BearerAuth
// @Router /users/{id}/transactions [get]
func (h *ledgerHandler) getTransactions(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	targetUserID := c.Param("id")

	if !h.authorizeAccountAccess(c, targetUserID) {
		return
	}

	history, err := h.ledgerService.TransactionHistory(ctx, targetUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNoTransactions):
			c.JSON(http.StatusOK, dto.TransactionHistoryResponse{
				Transactions: []dto.TransactionResponse{},
				Message:      noTransactionsMessage,
			})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			logger.Error("Failed to assemble transaction history", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assemble history"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionHistoryResponse(history))
}
