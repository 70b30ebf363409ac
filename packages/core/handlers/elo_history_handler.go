package handlers

import (
	"net/http"

	"zip-league-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

// EloHistoryHandler serves the ELO change feed. Changes are not stored on
// their own; the service derives them from match snapshots.
type EloHistoryHandler struct {
	eloHistoryService *services.EloHistoryService
}

func NewEloHistoryHandler(eloHistoryService *services.EloHistoryService) *EloHistoryHandler {
	return &EloHistoryHandler{
		eloHistoryService: eloHistoryService,
	}
}

// GetRecentEloChanges lists the latest per-player ELO movements
// @Summary Get recent ELO changes
// @Description Four entries per 2v2 match (one per player slot), newest match first. Each entry carries the snapshot ELO before the match, the ELO after it and the signed change.
// @Tags elo-history
// @Produce json
// @Param limit query int false "Number of player changes to retrieve" default(10) maximum(100)
// @Success 200 {array} models.EloChange
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /elo-history/recent [get]
func (h *EloHistoryHandler) GetRecentEloChanges(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	changes, err := h.eloHistoryService.GetRecentEloChanges(limit)
	if err != nil {
		respondError(c, err, "Failed to retrieve recent ELO changes")
		return
	}

	c.JSON(http.StatusOK, changes)
}
