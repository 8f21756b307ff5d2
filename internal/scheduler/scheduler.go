// Package scheduler runs periodic jobs, currently the satellite hotspot sync.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// syncTimeout bounds one satellite sync run, including the FIRMS download.
const syncTimeout = 5 * time.Minute

type Scheduler struct {
	cron     *cron.Cron
	hotspots service.HotspotService
	logger   *logrus.Logger
}

// New builds a scheduler whose jobs are skipped while a previous run is still going.
func New(hotspots service.HotspotService, logger *logrus.Logger) *Scheduler {
	cronLogger := cron.PrintfLogger(logger)
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		hotspots: hotspots,
		logger:   logger,
	}
}

// ScheduleHotspotSync registers the satellite sync under a standard five-field cron spec.
func (s *Scheduler) ScheduleHotspotSync(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.runHotspotSync); err != nil {
		return fmt.Errorf("scheduler: invalid hotspot sync schedule %q: %w", spec, err)
	}
	s.logger.WithField("schedule", spec).Info("Hotspot sync scheduled")
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for a running job until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("Scheduler stopped before the running job finished")
	}
}

func (s *Scheduler) runHotspotSync() {
	log := s.logger.WithFields(logrus.Fields{
		"service": "scheduler",
		"method":  "runHotspotSync",
	})

	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	started := time.Now()
	result, err := s.hotspots.SyncHotspots(ctx)
	if err != nil {
		log.WithError(err).Error("Scheduled hotspot sync failed")
		return
	}
	log.WithFields(logrus.Fields{
		"fetched":  result.Fetched,
		"created":  len(result.Created),
		"duration": time.Since(started).String(),
	}).Info("Scheduled hotspot sync finished")
}
