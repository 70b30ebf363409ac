package store

import (
	"context"
	"errors"
	"fmt"

	"zip-league-api/packages/core/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// ratingsLockKey identifies the advisory lock that serializes period-wide
// rewrites against match application across processes.
const ratingsLockKey int64 = 0x7a6970

// Repository is the persistence used by the rating write path.
type Repository interface {
	// Transaction support
	WithTransaction(ctx context.Context, txFunc func(Repository) error) error
	// AcquireRatingsLock takes the cross-process period lock for the rest of
	// the current transaction. It is a no-op on databases without advisory
	// locks.
	AcquireRatingsLock(exclusive bool) error

	// Player methods
	CreatePlayer(player *models.Player) error
	FindPlayer(id uint) (*models.Player, error)
	EmailExists(email string) (bool, error)
	FindPlayersForUpdate(ids []uint) ([]models.Player, error)
	AllPlayers() ([]models.Player, error)
	AllPlayersForUpdate() ([]models.Player, error)
	SavePlayers(players []models.Player) error

	// Match methods
	FindMatchByKey(key uuid.UUID) (*models.Match, error)
	CreateMatch(match *models.Match) error
	UpdateReplayColumns(match *models.Match) error
	MatchesForPeriod(period int) ([]models.Match, error)
	CountMatchesAfter(period int) (int64, error)
	ReassignPeriods(after, to int, skip []int) (int64, error)

	// Archive methods
	ArchivedPeriods() ([]int, error)
	IsArchived(period int) (bool, error)
	CreateArchive(archive *models.PeriodArchive) error
}

// GormRepository implements Repository using GORM
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// WithTransaction runs txFunc against a repository bound to one transaction.
// The transaction is rolled back when txFunc returns an error or panics.
func (r *GormRepository) WithTransaction(ctx context.Context, txFunc func(Repository) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := txFunc(&GormRepository{db: tx}); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (r *GormRepository) AcquireRatingsLock(exclusive bool) error {
	if r.db.Dialector.Name() != "postgres" {
		return nil
	}
	fn := "pg_advisory_xact_lock_shared"
	if exclusive {
		fn = "pg_advisory_xact_lock"
	}
	if err := r.db.Exec("SELECT "+fn+"(?)", ratingsLockKey).Error; err != nil {
		return fmt.Errorf("acquire ratings lock: %w", err)
	}
	return nil
}

// Player Repository Methods

func (r *GormRepository) CreatePlayer(player *models.Player) error {
	if err := r.db.Create(player).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *GormRepository) FindPlayer(id uint) (*models.Player, error) {
	var player models.Player
	if err := r.db.First(&player, id).Error; err != nil {
		return nil, translate(err)
	}
	return &player, nil
}

func (r *GormRepository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Player{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindPlayersForUpdate locks the given players in ascending id order.
// Missing ids are simply absent from the result.
func (r *GormRepository) FindPlayersForUpdate(ids []uint) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *GormRepository) AllPlayers() ([]models.Player, error) {
	var players []models.Player
	if err := r.db.Order("id ASC").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *GormRepository) AllPlayersForUpdate() ([]models.Player, error) {
	var players []models.Player
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("id ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// SavePlayers writes the rating columns of every given player.
func (r *GormRepository) SavePlayers(players []models.Player) error {
	for i := range players {
		p := &players[i]
		err := r.db.Model(p).
			Select("elo_rating", "skill_mean", "skill_uncertainty",
				"matches_played", "matches_won", "matches_lost", "last_match_date").
			Updates(map[string]interface{}{
				"elo_rating":        p.EloRating,
				"skill_mean":        p.SkillMean,
				"skill_uncertainty": p.SkillUncertainty,
				"matches_played":    p.MatchesPlayed,
				"matches_won":       p.MatchesWon,
				"matches_lost":      p.MatchesLost,
				"last_match_date":   p.LastMatchDate,
			}).Error
		if err != nil {
			return fmt.Errorf("save player %d: %w", p.ID, err)
		}
	}
	return nil
}

// Match Repository Methods

func (r *GormRepository) FindMatchByKey(key uuid.UUID) (*models.Match, error) {
	var match models.Match
	if err := r.db.Where("idempotency_key = ?", key).First(&match).Error; err != nil {
		return nil, translate(err)
	}
	return &match, nil
}

func (r *GormRepository) CreateMatch(match *models.Match) error {
	if err := r.db.Omit(clause.Associations).Create(match).Error; err != nil {
		return translate(err)
	}
	return nil
}

// UpdateReplayColumns rewrites the columns a recompute owns and nothing else.
func (r *GormRepository) UpdateReplayColumns(match *models.Match) error {
	err := r.db.Model(match).
		Omit(clause.Associations).
		Select(models.ReplayColumns).
		Updates(match).Error
	if err != nil {
		return fmt.Errorf("update match %d: %w", match.ID, err)
	}
	return nil
}

// MatchesForPeriod returns a period's matches in replay order.
func (r *GormRepository) MatchesForPeriod(period int) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.Where("period = ?", period).
		Order("date_played ASC, id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	models.SortForReplay(matches)
	return matches, nil
}

// CountMatchesAfter counts matches tagged with a period later than period.
func (r *GormRepository) CountMatchesAfter(period int) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Match{}).Where("period > ?", period).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ReassignPeriods moves matches tagged with a period later than after to
// period to, leaving the periods listed in skip untouched.
func (r *GormRepository) ReassignPeriods(after, to int, skip []int) (int64, error) {
	q := r.db.Model(&models.Match{}).Where("period > ? AND period <> ?", after, to)
	if len(skip) > 0 {
		q = q.Where("period NOT IN ?", skip)
	}
	result := q.Update("period", to)
	return result.RowsAffected, result.Error
}

// Archive Repository Methods

func (r *GormRepository) ArchivedPeriods() ([]int, error) {
	var periods []int
	err := r.db.Model(&models.PeriodArchive{}).
		Order("period DESC").
		Pluck("period", &periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *GormRepository) IsArchived(period int) (bool, error) {
	var count int64
	if err := r.db.Model(&models.PeriodArchive{}).Where("period = ?", period).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateArchive inserts the archive together with its player snapshots.
func (r *GormRepository) CreateArchive(archive *models.PeriodArchive) error {
	if err := r.db.Create(archive).Error; err != nil {
		return translate(err)
	}
	return nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}
