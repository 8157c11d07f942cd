package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	portssvc "github.com/mroncal/coffee_ledger_app/internal/core/ports/services"
	"github.com/mroncal/coffee_ledger_app/internal/dto"
	"github.com/mroncal/coffee_ledger_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// configHandler handles HTTP requests for the runtime configuration table.
type configHandler struct {
	configService portssvc.ConfigSvcFacade
	authzService  portssvc.AuthzSvcFacade
}

func newConfigHandler(cs portssvc.ConfigSvcFacade, as portssvc.AuthzSvcFacade) *configHandler {
	return &configHandler{
		configService: cs,
		authzService:  as,
	}
}

// registerConfigRoutes registers the configuration routes.
func registerConfigRoutes(rg *gin.RouterGroup, configService portssvc.ConfigSvcFacade, authzService portssvc.AuthzSvcFacade) {
	h := newConfigHandler(configService, authzService)

	configs := rg.Group("/configs")
	{
		configs.GET("", h.listConfigs)      // Any active user
		configs.PUT("/:name", h.setConfig)  // Admin only
	}
}

// listConfigs godoc
// @Summary List configuration values
// @Description Returns all name/value configuration entries
// @Tags configs
// @Produce  json
// @Success 200 {object} dto.ListConfigsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list configs"
// @Security BearerAuth
// @Router /configs [get]
func (h *configHandler) listConfigs(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if _, err := h.authzService.Authorize(ctx, actingUserID, domain.ActiveAccount); err != nil {
		respondAuthzError(c, err)
		return
	}

	entries, err := h.configService.ListConfigs(ctx)
	if err != nil {
		logger.Error("Failed to list configs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list configs"})
		return
	}

	resp := dto.ListConfigsResponse{Configs: make([]dto.ConfigResponse, 0, len(entries))}
	for i := range entries {
		resp.Configs = append(resp.Configs, dto.ToConfigResponse(&entries[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// setConfig godoc
// @Summary Set a configuration value
// @Description Inserts or updates the value for a configuration name (admin only)
// @Tags configs
// @Accept  json
// @Produce  json
// @Param   name path string true "Config name"
// @Param   config body dto.SetConfigRequest true "Config value"
// @Success 200 {object} dto.ConfigResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to set config"
// @Security BearerAuth
// @Router /configs/{name} [put]
func (h *configHandler) setConfig(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	name := c.Param("name")

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if _, err := h.authzService.Authorize(ctx, actingUserID, domain.AdminRole); err != nil {
		respondAuthzError(c, err)
		return
	}

	var req dto.SetConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.configService.SetConfig(ctx, name, req.Value)
	if err != nil {
		logger.Error("Failed to set config", slog.String("name", name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set config"})
		return
	}

	c.JSON(http.StatusOK, dto.ToConfigResponse(entry))
}
