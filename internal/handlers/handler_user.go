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

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService   portssvc.UserSvcFacade
	ledgerService portssvc.LedgerSvcFacade
	authzService  portssvc.AuthzSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, ls portssvc.LedgerSvcFacade, as portssvc.AuthzSvcFacade) *userHandler {
	return &userHandler{
		userService:   us,
		ledgerService: ls,
		authzService:  as,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, ledgerService portssvc.LedgerSvcFacade, authzService portssvc.AuthzSvcFacade) {
	h := newUserHandler(userService, ledgerService, authzService)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)                // Admin only
		users.GET("/:id", h.getUser)              // Own or admin
		users.PATCH("/:id/active", h.setActive)   // Admin only
		users.DELETE("/:id", h.deleteUser)        // Admin only
	}
}

// respondAuthzError translates an authorization gate failure into an HTTP
// response. Any error not produced by the gate maps to 500.
func respondAuthzError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is disabled"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Authorization check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
	}
}

// listUsers godoc
// @Summary List users with balances
// @Description Retrieves all users together with their current balances (admin only)
// @Tags users
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list users"
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	// Admin rights are a separate axis from account state; a deactivated
	// admin keeps them.
	if _, err := h.authzService.Authorize(ctx, actingUserID, domain.AdminRole); err != nil {
		respondAuthzError(c, err)
		return
	}

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	users, err := h.userService.ListUsers(ctx, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	resp := dto.ListUsersResponse{Users: make([]dto.UserWithBalanceResponse, 0, len(users))}
	for i := range users {
		balance, err := h.ledgerService.ComputeBalance(ctx, users[i].UserID)
		if err != nil {
			logger.Error("Failed to compute balance for listing",
				slog.String("target_user_id", users[i].UserID),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
			return
		}
		resp.Users = append(resp.Users, dto.UserWithBalanceResponse{
			UserResponse: dto.ToUserResponse(&users[i]),
			Balance:      balance,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// getUser godoc
// @Summary Get a user by ID
// @Description Retrieves details for a specific user. Users see themselves; admins see anyone.
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to retrieve user"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
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

	user, err := h.userService.GetUserByID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logger.Error("Failed to get user from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// setActive godoc
// @Summary Enable or disable an account
// @Description Sets the active flag on a user (admin only). Disabling takes effect on the user's next request.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   active body dto.SetActiveRequest true "Desired active state"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to update user"
// @Security BearerAuth
// @Router /users/{id}/active [patch]
func (h *userHandler) setActive(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	targetUserID := c.Param("id")

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if _, err := h.authzService.Authorize(ctx, actingUserID, domain.AdminRole); err != nil {
		respondAuthzError(c, err)
		return
	}

	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.SetUserActive(ctx, targetUserID, *req.Active)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logger.Error("Failed to update active flag", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deleteUser godoc
// @Summary Delete a user
// @Description Hard-deletes a user and all their purchases and deposits (admin only)
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to delete user"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	targetUserID := c.Param("id")

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if _, err := h.authzService.Authorize(ctx, actingUserID, domain.AdminRole); err != nil {
		respondAuthzError(c, err)
		return
	}

	if err := h.userService.DeleteUser(ctx, targetUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logger.Error("Failed to delete user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
