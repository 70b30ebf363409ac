package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"zip-league-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to status codes. Unknown errors are
// logged and answered with the generic message.
func respondError(c *gin.Context, err error, message string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, services.ErrPlayerNotFound),
		errors.Is(err, services.ErrMatchNotFound),
		errors.Is(err, services.ErrArchiveNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrPeriodArchived),
		errors.Is(err, services.ErrCurrentPeriod),
		errors.Is(err, services.ErrAlreadyArchived),
		errors.Is(err, services.ErrNotCurrentPeriod),
		errors.Is(err, services.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("%s: %v", message, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parsePeriod reads a period from raw, falling back when it is empty.
func parsePeriod(raw string, fallback int) (int, bool) {
	if raw == "" {
		return fallback, true
	}
	period, err := strconv.Atoi(raw)
	if err != nil || period <= 0 {
		return 0, false
	}
	return period, true
}

// parseLimit reads the limit of a "recent" feed: 10 by default, at most 100.
// It answers 400 itself when the value is unusable.
func parseLimit(c *gin.Context) (int, bool) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return 0, false
	}
	if limit > 100 {
		limit = 100
	}
	return limit, true
}

func parsePagination(c *gin.Context) (page, perPage int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page parameter"})
		return 0, 0, false
	}

	perPage, err = strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if err != nil || perPage < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid per_page parameter"})
		return 0, 0, false
	}

	// Limit per_page to maximum 100
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage, true
}
