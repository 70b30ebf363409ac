package handlers

import (
	"crypto/subtle"
	"net/http"

	"zip-league-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

const AdminKeyHeader = "X-Admin-Key"

// RequireAdminKey rejects requests that do not carry the configured key.
func RequireAdminKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		given := c.GetHeader(AdminKeyHeader)
		if given == "" || subtle.ConstantTimeCompare([]byte(given), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Admin key required",
			})
			return
		}
		c.Next()
	}
}

type AdminHandler struct {
	recomputeService *services.RecomputeService
}

func NewAdminHandler(recomputeService *services.RecomputeService) *AdminHandler {
	return &AdminHandler{
		recomputeService: recomputeService,
	}
}

type RecomputeRequest struct {
	Period int `json:"period" example:"2025"`
}

// Recompute replays a period from scratch
// @Summary Recompute ratings
// @Description Reset every player and replay all matches of the period in date order. Defaults to the current period.
// @Tags admin
// @Security AdminKey
// @Accept json
// @Produce json
// @Param request body RecomputeRequest false "Period to recompute"
// @Success 200 {object} services.RecomputeResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/recompute [post]
func (h *AdminHandler) Recompute(c *gin.Context) {
	var req RecomputeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil || req.Period < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request body",
			})
			return
		}
	}
	if req.Period == 0 {
		req.Period = h.recomputeService.CurrentPeriod()
	}

	result, err := h.recomputeService.Recompute(c.Request.Context(), req.Period)
	if err != nil {
		respondError(c, err, "Failed to recompute ratings")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Verify checks stored ratings against a replay
// @Summary Verify ratings
// @Description Replay the period in memory and report stored values that differ. Nothing is written.
// @Tags admin
// @Security AdminKey
// @Produce json
// @Param period query int false "Period (year), defaults to the current one"
// @Success 200 {object} services.VerifyReport
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/verify [get]
func (h *AdminHandler) Verify(c *gin.Context) {
	period, ok := parsePeriod(c.Query("period"), h.recomputeService.CurrentPeriod())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid period parameter",
		})
		return
	}

	report, err := h.recomputeService.Verify(c.Request.Context(), period)
	if err != nil {
		respondError(c, err, "Failed to verify ratings")
		return
	}

	c.JSON(http.StatusOK, report)
}
