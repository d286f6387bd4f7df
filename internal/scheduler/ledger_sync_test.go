package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/repository/mocks"
	"github.com/sellerpulse/marketplace-ledger-api/internal/config"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/ingesting"
	ingestmocks "github.com/sellerpulse/marketplace-ledger-api/internal/usecases/ingesting/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func schedulerConfig(lookbackDays int) *config.Config {
	return &config.Config{
		LedgerSync: config.LedgerSync{
			CronSchedule: "0 3 * * *",
			LookbackDays: lookbackDays,
			Enabled:      true,
		},
	}
}

func activeProjects(ids ...int) []*domain.Project {
	projects := make([]*domain.Project, 0, len(ids))
	for _, id := range ids {
		projects = append(projects, &domain.Project{ID: id, Active: true})
	}
	return projects
}

func TestLedgerSync_SyncsEveryActiveProjectOverTheWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	projectRepo := mocks.NewMockProjectRepository(ctrl)
	ingestor := ingestmocks.NewMockIngestor(ctrl)

	projectRepo.EXPECT().ListActive(gomock.Any()).Return(activeProjects(1, 2), nil)

	var seenDates []time.Time
	ingestor.EXPECT().
		SyncDay(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, date time.Time) (*domain.SyncResult, error) {
			seenDates = append(seenDates, date)
			return &domain.SyncResult{Orders: 1}, nil
		}).
		Times(4)

	service := NewLedgerSyncService(projectRepo, ingestor, schedulerConfig(2))
	service.syncAllProjects(context.Background())

	require.Len(t, seenDates, 4)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	for _, date := range seenDates {
		assert.True(t, date.Before(today), "scheduled sync must never touch today: %s", date)
	}
}

func TestLedgerSync_ConfigurationErrorStopsRemainingDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	projectRepo := mocks.NewMockProjectRepository(ctrl)
	ingestor := ingestmocks.NewMockIngestor(ctrl)

	projectRepo.EXPECT().ListActive(gomock.Any()).Return(activeProjects(7), nil)

	// A project without credentials fails identically for every date, so the
	// remaining dates in the window are not attempted.
	ingestor.EXPECT().
		SyncDay(gomock.Any(), 7, gomock.Any()).
		Return(nil, ingesting.NewConfigurationError("no seller configuration")).
		Times(1)

	service := NewLedgerSyncService(projectRepo, ingestor, schedulerConfig(3))
	service.syncAllProjects(context.Background())
}

func TestLedgerSync_RunActiveSkipsDateAndContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	projectRepo := mocks.NewMockProjectRepository(ctrl)
	ingestor := ingestmocks.NewMockIngestor(ctrl)

	projectRepo.EXPECT().ListActive(gomock.Any()).Return(activeProjects(3), nil)

	gomock.InOrder(
		ingestor.EXPECT().
			SyncDay(gomock.Any(), 3, gomock.Any()).
			Return(nil, ingesting.ErrRunActive),
		ingestor.EXPECT().
			SyncDay(gomock.Any(), 3, gomock.Any()).
			Return(&domain.SyncResult{Orders: 2}, nil),
	)

	service := NewLedgerSyncService(projectRepo, ingestor, schedulerConfig(2))
	service.syncAllProjects(context.Background())
}

func TestLedgerSync_OverlappingTriggerIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	projectRepo := mocks.NewMockProjectRepository(ctrl)
	ingestor := ingestmocks.NewMockIngestor(ctrl)

	service := NewLedgerSyncService(projectRepo, ingestor, schedulerConfig(1))

	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	// No ListActive or SyncDay expectations: the trigger must return without
	// touching either dependency.
	service.syncAllProjects(context.Background())
}

func TestLedgerSync_DisabledSchedulerDoesNotStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	projectRepo := mocks.NewMockProjectRepository(ctrl)
	ingestor := ingestmocks.NewMockIngestor(ctrl)

	cfg := schedulerConfig(1)
	cfg.LedgerSync.Enabled = false

	service := NewLedgerSyncService(projectRepo, ingestor, cfg)

	err := service.Start(context.Background())
	require.NoError(t, err)
}
