package handlers

import (
	"net/http"

	"zip-league-api/packages/core/models"
	"zip-league-api/packages/core/rating"
	"zip-league-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
}

func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// CreatePlayer registers a new player
// @Summary Create a player
// @Description Create a player with default ratings
// @Tags players
// @Accept json
// @Produce json
// @Param player body models.CreatePlayerRequest true "Player data"
// @Success 201 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req models.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	player, err := h.playerService.CreatePlayer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create player")
		return
	}

	c.JSON(http.StatusCreated, player)
}

// GetPlayers retrieves the player rankings
// @Summary Get player rankings
// @Description Get all players ranked by ELO, skill score (with inactivity decay) or win percentage
// @Tags players
// @Produce json
// @Param sort query string false "Ranking key" Enums(elo,skill_score,win_percentage) default(elo)
// @Param direction query string false "Sort direction" Enums(asc,desc) default(desc)
// @Param page query int false "Page number (default: 1)" default(1)
// @Param per_page query int false "Items per page (default: 10, max: 100)" default(10)
// @Success 200 {object} models.PaginatedPlayersResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players [get]
func (h *PlayerHandler) GetPlayers(c *gin.Context) {
	key, err := rating.ParseRankingKey(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sort. Must be one of: elo, skill_score, win_percentage",
		})
		return
	}

	order, err := rating.ParseOrder(c.Query("direction"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid direction. Must be one of: asc, desc",
		})
		return
	}

	page, perPage, ok := parsePagination(c)
	if !ok {
		return
	}

	result, err := h.playerService.GetRankingsPage(key, order, page, perPage)
	if err != nil {
		respondError(c, err, "Failed to retrieve players")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPlayer retrieves a player by ID
// @Summary Get player by ID
// @Description Get a player with its rank, effective uncertainty and skill score
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Param sort query string false "Ranking key used for the rank" Enums(elo,skill_score,win_percentage) default(elo)
// @Success 200 {object} models.PlayerRanking
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid player ID",
		})
		return
	}

	key, err := rating.ParseRankingKey(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sort. Must be one of: elo, skill_score, win_percentage",
		})
		return
	}

	player, err := h.playerService.GetPlayerRanking(id, key)
	if err != nil {
		respondError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, player)
}

// GetPlayerHistory retrieves the rating progression of a player
// @Summary Get player rating history
// @Description Get ELO and skill progression over a period, rebuilt from match snapshots
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Param period query int false "Period (year), defaults to the current one"
// @Success 200 {object} models.PlayerHistory
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{id}/history [get]
func (h *PlayerHandler) GetPlayerHistory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid player ID",
		})
		return
	}

	period, ok := parsePeriod(c.Query("period"), h.playerService.CurrentPeriod())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid period parameter",
		})
		return
	}

	history, err := h.playerService.GetHistory(id, period)
	if err != nil {
		respondError(c, err, "Failed to retrieve player history")
		return
	}

	c.JSON(http.StatusOK, history)
}
