package services

import (
	"time"

	"zip-league-api/packages/core/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db:  db,
		now: time.Now,
	}
}

func (s *StatsService) GetStats() (*models.Stats, error) {
	var totalPlayers int64
	var totalMatches int64
	var currentPeriodMatches int64
	var matchesLast7Days int64
	var matchesPrevious7Days int64

	now := s.now().UTC()
	currentPeriod := models.PeriodOf(now)

	// Count total players
	if err := s.db.Model(&models.Player{}).Count(&totalPlayers).Error; err != nil {
		return nil, err
	}

	// Count total matches
	if err := s.db.Model(&models.Match{}).Count(&totalMatches).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Match{}).
		Where("period = ?", currentPeriod).
		Count(&currentPeriodMatches).Error; err != nil {
		return nil, err
	}

	// Calculate date ranges
	last7DaysStart := now.AddDate(0, 0, -7)
	previous7DaysStart := now.AddDate(0, 0, -14)
	previous7DaysEnd := last7DaysStart

	// Count matches in the last 7 days
	if err := s.db.Model(&models.Match{}).
		Where("date_played >= ?", last7DaysStart).
		Count(&matchesLast7Days).Error; err != nil {
		return nil, err
	}

	// Count matches in the previous 7 days (7-14 days ago)
	if err := s.db.Model(&models.Match{}).
		Where("date_played >= ? AND date_played < ?", previous7DaysStart, previous7DaysEnd).
		Count(&matchesPrevious7Days).Error; err != nil {
		return nil, err
	}

	archivedPeriods := []int{}
	if err := s.db.Model(&models.PeriodArchive{}).
		Order("period DESC").
		Pluck("period", &archivedPeriods).Error; err != nil {
		return nil, err
	}

	stats := &models.Stats{
		TotalPlayers:         totalPlayers,
		TotalMatches:         totalMatches,
		CurrentPeriod:        currentPeriod,
		CurrentPeriodMatches: currentPeriodMatches,
		MatchesLast7Days:     matchesLast7Days,
		MatchesPrevious7Days: matchesPrevious7Days,
		ArchivedPeriods:      archivedPeriods,
	}

	return stats, nil
}
