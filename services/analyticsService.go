package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"civicreport-be/analytics"
	"civicreport-be/metrics"
	"civicreport-be/models"
	"civicreport-be/store"
)

// Report names, also used in cache keys and metrics labels.
const (
	ReportDepartmentPerformance = "department-performance"
	ReportPeakHours             = "peak-hours"
	ReportLocationHotspots      = "location-hotspots"
	ReportCategoryDistribution  = "category-distribution"
	ReportResolutionTrends      = "resolution-trends"
	ReportOverview              = "overview"
)

// AnalyticsService loads the issues inside a window and reduces them into
// dashboard reports. Results are cached; cache failures only cost a recompute.
type AnalyticsService struct {
	issues store.IssueStore
	cache  Cache
	ttl    time.Duration
	limit  int
	now    func() time.Time
}

// NewAnalyticsService builds the service. cache may be nil to disable caching.
func NewAnalyticsService(issues store.IssueStore, cache Cache, ttl time.Duration, fetchLimit int) *AnalyticsService {
	return &AnalyticsService{
		issues: issues,
		cache:  cache,
		ttl:    ttl,
		limit:  fetchLimit,
		now:    time.Now,
	}
}

const cacheKeyPrefix = "analytics:"

func CacheKey(report string, w analytics.Window) string {
	return fmt.Sprintf("%s%s:%d", cacheKeyPrefix, report, w.Days)
}

// Invalidate drops the cached reports of every window so the next read
// recomputes them. Cache errors are logged only.
func (s *AnalyticsService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePrefix(ctx, cacheKeyPrefix); err != nil {
		log.Printf("Analytics cache invalidate: %v", err)
	}
}

func (s *AnalyticsService) DepartmentPerformance(ctx context.Context, w analytics.Window) (analytics.PerformanceReport, error) {
	return cachedReport(ctx, s, ReportDepartmentPerformance, w, analytics.DepartmentPerformanceOf)
}

func (s *AnalyticsService) PeakHours(ctx context.Context, w analytics.Window) (analytics.PeakHoursReport, error) {
	return cachedReport(ctx, s, ReportPeakHours, w, analytics.PeakHoursOf)
}

func (s *AnalyticsService) LocationHotspots(ctx context.Context, w analytics.Window) (analytics.HotspotsReport, error) {
	return cachedReport(ctx, s, ReportLocationHotspots, w, analytics.LocationHotspotsOf)
}

func (s *AnalyticsService) CategoryDistribution(ctx context.Context, w analytics.Window) (analytics.CategoryDistribution, error) {
	return cachedReport(ctx, s, ReportCategoryDistribution, w, analytics.CategoryDistributionOf)
}

func (s *AnalyticsService) ResolutionTrends(ctx context.Context, w analytics.Window) (analytics.ResolutionTrends, error) {
	return cachedReport(ctx, s, ReportResolutionTrends, w, analytics.ResolutionTrendsOf)
}

func (s *AnalyticsService) Overview(ctx context.Context, w analytics.Window) (analytics.Overview, error) {
	return cachedReport(ctx, s, ReportOverview, w, analytics.OverviewOf)
}

// Refresh recomputes every report for w from one fetch and overwrites the cache.
func (s *AnalyticsService) Refresh(ctx context.Context, w analytics.Window) error {
	issues, err := s.load(ctx, w)
	if err != nil {
		return err
	}

	reports := map[string]any{
		ReportDepartmentPerformance: analytics.DepartmentPerformanceOf(issues),
		ReportPeakHours:             analytics.PeakHoursOf(issues),
		ReportLocationHotspots:      analytics.LocationHotspotsOf(issues),
		ReportCategoryDistribution:  analytics.CategoryDistributionOf(issues),
		ReportResolutionTrends:      analytics.ResolutionTrendsOf(issues),
		ReportOverview:              analytics.OverviewOf(issues),
	}
	for report, value := range reports {
		s.store(ctx, CacheKey(report, w), value)
	}
	log.Printf("Analytics refreshed for %s (%d issues)", w.Label(), len(issues))
	return nil
}

func (s *AnalyticsService) load(ctx context.Context, w analytics.Window) ([]models.Issue, error) {
	now := s.now()
	issues, err := s.issues.FetchIssues(ctx, store.IssueQuery{
		Filter: store.IssueFilter{CreatedAfter: w.Cutoff(now)},
		Limit:  s.limit,
		Order:  store.NewestFirst,
	})
	if err != nil {
		return nil, err
	}
	return w.Apply(issues, now), nil
}

func (s *AnalyticsService) store(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		log.Printf("Analytics cache encode %s: %v", key, err)
		return
	}
	if err := s.cache.Set(ctx, key, payload, s.ttl); err != nil {
		log.Printf("Analytics cache write %s: %v", key, err)
	}
}

func cachedReport[T any](ctx context.Context, s *AnalyticsService, report string, w analytics.Window, reduce func([]models.Issue) T) (T, error) {
	key := CacheKey(report, w)
	if s.cache != nil {
		payload, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var cached T
			if err := json.Unmarshal(payload, &cached); err == nil {
				metrics.RecordAnalyticsCache(report, true)
				return cached, nil
			}
		case !errors.Is(err, ErrCacheMiss):
			log.Printf("Analytics cache read %s: %v", key, err)
		}
		metrics.RecordAnalyticsCache(report, false)
	}

	var zero T
	issues, err := s.load(ctx, w)
	if err != nil {
		return zero, err
	}
	result := reduce(issues)
	s.store(ctx, key, result)
	return result, nil
}
