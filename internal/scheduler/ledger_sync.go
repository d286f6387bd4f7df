package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/repository"
	"github.com/sellerpulse/marketplace-ledger-api/internal/config"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/ingesting"
	"github.com/sirupsen/logrus"
)

// LedgerSyncConfig holds the scheduling knobs for the nightly reconciliation.
type LedgerSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	SyncEnabled         bool
}

// LedgerSyncService runs the daily ledger reconciliation for every active
// project on a cron schedule.
type LedgerSyncService struct {
	scheduler           *gocron.Scheduler
	config              LedgerSyncConfig
	projectRepo         repository.ProjectRepository
	ingestService       ingesting.Ingestor
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewLedgerSyncService(
	projectRepo repository.ProjectRepository,
	ingestService ingesting.Ingestor,
	appConfig *config.Config,
) *LedgerSyncService {
	syncConfig := LedgerSyncConfig{
		CronSchedule:        appConfig.LedgerSync.CronSchedule,
		LookbackDays:        appConfig.LedgerSync.LookbackDays,
		RequestDelaySeconds: appConfig.LedgerSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.LedgerSync.Enabled,
	}

	if syncConfig.LookbackDays <= 0 {
		syncConfig.LookbackDays = 1
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("ledger sync scheduler configuration loaded")

	return &LedgerSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		projectRepo:   projectRepo,
		ingestService: ingestService,
	}
}

// Start registers the cron job and launches the scheduler. It returns
// immediately; the scheduler stops when the context is cancelled.
func (s *LedgerSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("ledger sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting ledger sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllProjects(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduling ledger sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping ledger sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllProjects reconciles the lookback window for every active project.
// Projects are processed sequentially so a misconfigured tenant cannot starve
// the marketplace API quota of the others.
func (s *LedgerSyncService) syncAllProjects(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("ledger sync already running, skipping this trigger")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	projects, err := s.projectRepo.ListActive(ctx)
	if err != nil {
		logrus.WithError(err).Error("listing active projects for ledger sync")
		return
	}

	if len(projects) == 0 {
		logrus.Info("no active projects found for ledger sync")
		return
	}

	dates := s.getDatesToProcess()
	logrus.WithFields(logrus.Fields{
		"projects":   len(projects),
		"days":       s.config.LookbackDays,
		"start_date": dates[0].Format(time.DateOnly),
		"end_date":   dates[len(dates)-1].Format(time.DateOnly),
	}).Info("ledger sync window")

	synced, failed := 0, 0

	for _, project := range projects {
		if ctx.Err() != nil {
			logrus.Info("ledger sync interrupted by shutdown")
			return
		}

		if s.syncProjectForDates(ctx, project.ID, dates) {
			synced++
		} else {
			failed++
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"synced":   synced,
		"failed":   failed,
		"days":     s.config.LookbackDays,
	}).Info("ledger sync completed")

	s.lastSyncCompletedAt = time.Now()
}

// getDatesToProcess returns the lookback window in chronological order,
// ending yesterday. Today is never synced because the marketplace has not
// settled it yet.
func (s *LedgerSyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().UTC().AddDate(0, 0, i-s.config.LookbackDays)
	}
	return dates
}

// syncProjectForDates runs the reconciliation for one project over every date
// in the window. It reports whether all dates succeeded.
func (s *LedgerSyncService) syncProjectForDates(ctx context.Context, projectID int, dates []time.Time) bool {
	ok := true

	for i, date := range dates {
		result, err := s.ingestService.SyncDay(ctx, projectID, date)
		if err != nil {
			ok = false

			fields := logrus.Fields{
				"project_id": projectID,
				"date":       date.Format(time.DateOnly),
			}

			switch {
			case errors.Is(err, ingesting.ErrRunActive):
				logrus.WithFields(fields).Warn("manual sync in progress, skipping scheduled run")
			case ingesting.IsConfigurationError(err):
				logrus.WithFields(fields).WithError(err).Warn("project has no usable seller configuration")
			default:
				logrus.WithFields(fields).WithError(err).Error("scheduled ledger sync failed")
			}

			// Configuration and auth problems apply to every date equally.
			if ingesting.IsConfigurationError(err) || ingesting.IsAuthenticationError(err) {
				break
			}
			continue
		}

		logrus.WithFields(logrus.Fields{
			"project_id": projectID,
			"date":       date.Format(time.DateOnly),
			"orders":     result.Orders,
			"revenue":    result.Revenue,
			"partial":    len(result.Errors) > 0,
		}).Info("scheduled ledger sync finished")

		if i < len(dates)-1 && s.config.RequestDelaySeconds > 0 {
			select {
			case <-ctx.Done():
				return ok
			case <-time.After(time.Duration(s.config.RequestDelaySeconds) * time.Second):
			}
		}
	}

	return ok
}
