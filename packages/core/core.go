package core

import (
	"log"

	"zip-league-api/packages/core/cron"
	"zip-league-api/packages/core/handlers"
	"zip-league-api/packages/core/rating"
	"zip-league-api/packages/core/services"
	"zip-league-api/packages/core/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Options configure the rating engines and the admin surface.
type Options struct {
	Skill          rating.SkillConfig
	Decay          rating.DecayConfig
	AdminAPIKey    string
	DriftCheckSpec string
}

func DefaultOptions() Options {
	return Options{
		Skill:          rating.DefaultSkillConfig(),
		Decay:          rating.DefaultDecayConfig(),
		DriftCheckSpec: "0 30 3 * * *",
	}
}

type Module struct {
	PlayerHandler     *handlers.PlayerHandler
	PlayerService     *services.PlayerService
	MatchHandler      *handlers.MatchHandler
	MatchService      *services.MatchService
	ArchiveHandler    *handlers.ArchiveHandler
	ArchiveService    *services.ArchiveService
	AdminHandler      *handlers.AdminHandler
	RecomputeService  *services.RecomputeService
	StatsHandler      *handlers.StatsHandler
	StatsService      *services.StatsService
	EloHistoryHandler *handlers.EloHistoryHandler
	EloHistoryService *services.EloHistoryService
	Scheduler         *cron.Scheduler
	adminAPIKey       string
}

func NewModule(db *gorm.DB, opts Options) *Module {
	repo := store.NewGormRepository(db)
	skill := rating.NewSkillEngine(opts.Skill)
	guard := services.NewPeriodGuard()

	playerService := services.NewPlayerService(db, repo, skill, opts.Decay)
	playerHandler := handlers.NewPlayerHandler(playerService)

	matchService := services.NewMatchService(db, repo, skill, guard)
	matchHandler := handlers.NewMatchHandler(matchService)

	archiveService := services.NewArchiveService(db, repo, skill, guard)
	archiveHandler := handlers.NewArchiveHandler(archiveService)

	recomputeService := services.NewRecomputeService(repo, skill, guard)
	adminHandler := handlers.NewAdminHandler(recomputeService)

	statsService := services.NewStatsService(db)
	statsHandler := handlers.NewStatsHandler(statsService)

	eloHistoryService := services.NewEloHistoryService(db)
	eloHistoryHandler := handlers.NewEloHistoryHandler(eloHistoryService)

	// Drift check runs nightly against the current period
	scheduler := cron.NewScheduler(recomputeService, opts.DriftCheckSpec)

	return &Module{
		PlayerHandler:     playerHandler,
		PlayerService:     playerService,
		MatchHandler:      matchHandler,
		MatchService:      matchService,
		ArchiveHandler:    archiveHandler,
		ArchiveService:    archiveService,
		AdminHandler:      adminHandler,
		RecomputeService:  recomputeService,
		StatsHandler:      statsHandler,
		StatsService:      statsService,
		EloHistoryHandler: eloHistoryHandler,
		EloHistoryService: eloHistoryService,
		Scheduler:         scheduler,
		adminAPIKey:       opts.AdminAPIKey,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	players := r.Group("/players")
	{
		players.GET("", m.PlayerHandler.GetPlayers)
		players.POST("", m.PlayerHandler.CreatePlayer)
		players.GET("/:id", m.PlayerHandler.GetPlayer)
		players.GET("/:id/history", m.PlayerHandler.GetPlayerHistory)
	}

	matches := r.Group("/matches")
	{
		matches.GET("", m.MatchHandler.GetMatches)
		matches.GET("/recent", m.MatchHandler.GetRecentMatches)
		matches.GET("/:id", m.MatchHandler.GetMatch)
		matches.POST("", m.MatchHandler.CreateMatch)
	}

	archives := r.Group("/archives")
	{
		archives.GET("", m.ArchiveHandler.GetArchives)
		archives.GET("/:period", m.ArchiveHandler.GetArchive)
	}

	eloHistory := r.Group("/elo-history")
	{
		eloHistory.GET("/recent", m.EloHistoryHandler.GetRecentEloChanges)
	}

	r.GET("/stats", m.StatsHandler.GetStats)

	if m.adminAPIKey == "" {
		log.Println("ADMIN_API_KEY not set, admin routes are disabled")
		return
	}

	admin := r.Group("/admin")
	admin.Use(handlers.RequireAdminKey(m.adminAPIKey))
	{
		admin.POST("/recompute", m.AdminHandler.Recompute)
		admin.GET("/verify", m.AdminHandler.Verify)
		admin.POST("/archives", m.ArchiveHandler.ArchivePeriod)
	}
}

// StartScheduler starts the cron scheduler for the drift check
func (m *Module) StartScheduler() error {
	log.Println("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping core module scheduler...")
	m.Scheduler.Stop()
}

// RunDriftCheckNow manually triggers the drift check
func (m *Module) RunDriftCheckNow() {
	log.Println("Manually triggering drift check...")
	m.Scheduler.RunNow()
}
