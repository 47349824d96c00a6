// Package scheduler runs the periodic analytics refresh.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"civicreport-be/analytics"

	"github.com/robfig/cron/v3"
)

const refreshTimeout = 2 * time.Minute

// Standard 5-field cron expressions: minute hour day-of-month month day-of-week.
var standardParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

type Refresher interface {
	Refresh(ctx context.Context, w analytics.Window) error
}

// AnalyticsSnapshot keeps the cached dashboard reports for one window warm.
type AnalyticsSnapshot struct {
	refresher Refresher
	window    analytics.Window
	cron      *cron.Cron
}

func NewAnalyticsSnapshot(r Refresher, w analytics.Window) *AnalyticsSnapshot {
	return &AnalyticsSnapshot{
		refresher: r,
		window:    w,
		cron:      cron.New(cron.WithParser(standardParser)),
	}
}

// Start schedules the refresh. An empty schedule leaves it disabled.
func (s *AnalyticsSnapshot) Start(schedule string) error {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		log.Println("Analytics snapshot disabled (ANALYTICS_SNAPSHOT_SCHEDULE not set)")
		return nil
	}

	if _, err := s.cron.AddFunc(schedule, s.RunOnce); err != nil {
		return fmt.Errorf("invalid analytics snapshot schedule %q: %w", schedule, err)
	}
	s.cron.Start()
	log.Printf("Analytics snapshot scheduled (cron: %s) for %s", schedule, s.window.Label())
	return nil
}

// Stop waits for a running refresh to finish.
func (s *AnalyticsSnapshot) Stop() {
	<-s.cron.Stop().Done()
}

func (s *AnalyticsSnapshot) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := s.refresher.Refresh(ctx, s.window); err != nil {
		log.Printf("Analytics snapshot error: %v", err)
	}
}

// Next reports when the refresh runs next; zero when not scheduled.
func (s *AnalyticsSnapshot) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}
