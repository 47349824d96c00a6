package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"civicreport-be/apperrors"
	"civicreport-be/models"
	"civicreport-be/services"
	"civicreport-be/store/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func analyticsRouter(t *testing.T) (*gin.Engine, *mocks.MockIssueStore) {
	ctrl := gomock.NewController(t)
	issues := mocks.NewMockIssueStore(ctrl)
	ac := NewAnalyticsController(services.NewAnalyticsService(issues, nil, time.Minute, 1000))

	r := gin.New()
	r.GET("/analytics/category-distribution", ac.CategoryDistribution)
	r.GET("/analytics/peak-hours", ac.PeakHours)
	r.GET("/analytics/resolution-trends", ac.ResolutionTrends)
	return r, issues
}

func TestCategoryDistributionEndpoint(t *testing.T) {
	r, issues := analyticsRouter(t)
	now := time.Now().UTC()
	issues.EXPECT().FetchIssues(gomock.Any(), gomock.Any()).Return([]models.Issue{
		{Category: models.Roads, CreatedAt: now},
		{Category: models.Roads, CreatedAt: now},
		{Category: models.Water, CreatedAt: now},
	}, nil)

	w := perform(r, http.MethodGet, "/analytics/category-distribution?days=7", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "7 days", body["analysis_period"])
	assert.Equal(t, float64(3), body["total_issues"])
	data := body["data"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, "roads", data[0].(map[string]any)["category"])
	assert.Equal(t, 66.7, data[0].(map[string]any)["percentage"])
}

func TestAnalyticsDefaultsToThirtyDays(t *testing.T) {
	r, issues := analyticsRouter(t)
	issues.EXPECT().FetchIssues(gomock.Any(), gomock.Any()).Return(nil, nil)

	w := perform(r, http.MethodGet, "/analytics/peak-hours", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "30 days", body["analysis_period"])
	assert.Len(t, body["data"], 24)
	assert.Empty(t, body["busiest_hours"])
}

func TestAnalyticsRejectsBadWindow(t *testing.T) {
	r, _ := analyticsRouter(t)

	for _, days := range []string{"0", "-3", "abc"} {
		w := perform(r, http.MethodGet, "/analytics/peak-hours?days="+days, nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, days)
	}
}

func TestAnalyticsStoreOutageIs503(t *testing.T) {
	r, issues := analyticsRouter(t)
	issues.EXPECT().FetchIssues(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: server selection timeout", apperrors.ErrDataUnavailable))

	w := perform(r, http.MethodGet, "/analytics/resolution-trends", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
}
