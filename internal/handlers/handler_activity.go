package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bussnote/bussnote_backend/internal/core/ports/services"
	"github.com/bussnote/bussnote_backend/internal/dto"
	"github.com/bussnote/bussnote_backend/internal/middleware"
)

// activityHandler handles HTTP requests for the audit trail feed.
type activityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

// newActivityHandler creates a new activityHandler.
func newActivityHandler(as portssvc.ActivitySvcFacade) *activityHandler {
	return &activityHandler{
		activityService: as,
	}
}

// registerActivityRoutes registers routes related to the activity feed.
func registerActivityRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := newActivityHandler(activityService)

	activities := rg.Group("/activities")
	{
		activities.GET("", h.listActivities)
	}
}

// listActivities godoc
// @Summary List recent activities
// @Description Retrieves the most recent audit trail entries, newest first
// @Tags activities
// @Produce  json
// @Param   limit query int false "Feed size" default(20)
// @Success 200 {object} dto.ListActivitiesResponse
// @Failure 500 {object} map[string]string "Failed to list activities"
// @Router /activities [get]
func (h *activityHandler) listActivities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListActivitiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	activities, err := h.activityService.ListRecent(c.Request.Context(), params.Limit)
	if err != nil {
		logger.Error("Failed to list activities", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activities"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListActivitiesResponse(activities))
}
