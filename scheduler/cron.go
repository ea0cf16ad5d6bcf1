package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultCronSpec fires a dispatch cycle every minute, matching the cadence
// the mobile clients assume.
const DefaultCronSpec = "* * * * *"

// cycleTimeout caps one cron invocation. Overlapping cycles are tolerated by
// the dispatcher, this only stops a stuck cycle from piling up forever.
const cycleTimeout = time.Minute

// DispatchScheduler runs the dispatcher on a fixed cron cadence.
type DispatchScheduler struct {
	cronEngine *cron.Cron
	dispatcher *Dispatcher
	log        *logrus.Logger
	cronSpec   string
}

func NewDispatchScheduler(dispatcher *Dispatcher, log *logrus.Logger, cronSpec string) *DispatchScheduler {
	if cronSpec == "" {
		cronSpec = DefaultCronSpec
	}
	return &DispatchScheduler{
		cronEngine: cron.New(),
		dispatcher: dispatcher,
		log:        log,
		cronSpec:   cronSpec,
	}
}

func (s *DispatchScheduler) Start() error {
	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
		defer cancel()
		s.dispatcher.RunCycle(ctx, time.Now())
	})
	if err != nil {
		return err
	}

	s.cronEngine.Start()
	s.log.WithField("spec", s.cronSpec).Info("Dispatch scheduler started")
	return nil
}

func (s *DispatchScheduler) Stop() {
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.log.Info("Dispatch scheduler stopped")
}
