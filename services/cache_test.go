package services

import (
	"context"
	"testing"
	"time"

	"civicreport-be/analytics"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestInvalidateSurvivesUnreachableRedis(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	cache := NewRedisCache(rdb)
	assert.Error(t, cache.DeletePrefix(context.Background(), cacheKeyPrefix))

	svc := NewAnalyticsService(nil, cache, time.Minute, 10)
	assert.NotPanics(t, func() { svc.Invalidate(context.Background()) })
}

func TestCacheKeysShareThePurgedPrefix(t *testing.T) {
	assert.Equal(t, "analytics:overview:30", CacheKey(ReportOverview, analytics.Window{Days: 30}))
	assert.Contains(t, CacheKey(ReportPeakHours, analytics.Window{Days: 7}), cacheKeyPrefix)
}
