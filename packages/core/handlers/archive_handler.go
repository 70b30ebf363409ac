package handlers

import (
	"net/http"

	"zip-league-api/packages/core/models"
	"zip-league-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type ArchiveHandler struct {
	archiveService *services.ArchiveService
}

func NewArchiveHandler(archiveService *services.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{
		archiveService: archiveService,
	}
}

// GetArchives lists archived periods
// @Summary List archived periods
// @Description Get every archived period, newest first, with its statistics
// @Tags archives
// @Produce json
// @Success 200 {array} models.PeriodArchive
// @Failure 500 {object} map[string]string
// @Router /archives [get]
func (h *ArchiveHandler) GetArchives(c *gin.Context) {
	archives, err := h.archiveService.GetArchives()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve archives",
		})
		return
	}

	c.JSON(http.StatusOK, archives)
}

// GetArchive retrieves one archived period
// @Summary Get an archived period
// @Description Get an archive with its player snapshots ordered by frozen skill score
// @Tags archives
// @Produce json
// @Param period path int true "Period (year)"
// @Success 200 {object} models.PeriodArchive
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /archives/{period} [get]
func (h *ArchiveHandler) GetArchive(c *gin.Context) {
	period, ok := parsePeriod(c.Param("period"), 0)
	if !ok || period == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid period",
		})
		return
	}

	archive, err := h.archiveService.GetArchive(period)
	if err != nil {
		respondError(c, err, "Failed to retrieve archive")
		return
	}

	c.JSON(http.StatusOK, archive)
}

// ArchivePeriod archives a finished period
// @Summary Archive a period
// @Description Freeze a finished period: store statistics and player snapshots, then reset every player
// @Tags admin
// @Security AdminKey
// @Accept json
// @Produce json
// @Param archive body models.ArchivePeriodRequest true "Period to archive"
// @Success 201 {object} models.PeriodArchive
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/archives [post]
func (h *ArchiveHandler) ArchivePeriod(c *gin.Context) {
	var req models.ArchivePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Period <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	archive, err := h.archiveService.ArchivePeriod(c.Request.Context(), req.Period)
	if err != nil {
		respondError(c, err, "Failed to archive period")
		return
	}

	c.JSON(http.StatusCreated, archive)
}
