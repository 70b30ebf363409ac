package cron

import (
	"context"
	"log"

	"zip-league-api/packages/core/services"

	"github.com/robfig/cron/v3"
)

// DriftChecker is the part of the recompute service the scheduler uses.
type DriftChecker interface {
	CurrentPeriod() int
	Verify(ctx context.Context, period int) (*services.VerifyReport, error)
}

type Scheduler struct {
	cron    *cron.Cron
	spec    string
	checker DriftChecker
}

func NewScheduler(checker DriftChecker, spec string) *Scheduler {
	// Create cron with seconds precision and logging
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:    c,
		spec:    spec,
		checker: checker,
	}
}

// Start schedules the drift check and starts the scheduler
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	if _, err := s.cron.AddFunc(s.spec, s.runDriftCheck); err != nil {
		log.Printf("Error scheduling drift check job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop waits for a running job, then shuts the scheduler down
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	<-s.cron.Stop().Done()
	log.Println("Cron scheduler stopped")
}

// runDriftCheck replays the current period and logs any stored value that
// no longer matches the replay
func (s *Scheduler) runDriftCheck() {
	period := s.checker.CurrentPeriod()
	log.Printf("Running drift check for period %d...", period)

	report, err := s.checker.Verify(context.Background(), period)
	if err != nil {
		log.Printf("Error during drift check: %v", err)
		return
	}

	if report.Clean() {
		log.Printf("No drift in period %d (%d matches, %d players)",
			period, report.MatchesChecked, report.PlayersChecked)
		return
	}

	log.Printf("Found %d drifted values in period %d", len(report.Drifts), period)
	for _, d := range report.Drifts {
		log.Printf("  %s %d %s: stored %v, replayed %v", d.Kind, d.ID, d.Field, d.Stored, d.Replayed)
	}
}

// RunNow manually triggers the drift check
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering drift check...")
	s.runDriftCheck()
}
