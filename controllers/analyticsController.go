package controllers

import (
	"context"
	"fmt"
	"net/http"

	"civicreport-be/analytics"

	"github.com/gin-gonic/gin"
)

// AnalyticsReporter produces the dashboard reports for a window.
type AnalyticsReporter interface {
	DepartmentPerformance(ctx context.Context, w analytics.Window) (analytics.PerformanceReport, error)
	PeakHours(ctx context.Context, w analytics.Window) (analytics.PeakHoursReport, error)
	LocationHotspots(ctx context.Context, w analytics.Window) (analytics.HotspotsReport, error)
	CategoryDistribution(ctx context.Context, w analytics.Window) (analytics.CategoryDistribution, error)
	ResolutionTrends(ctx context.Context, w analytics.Window) (analytics.ResolutionTrends, error)
	Overview(ctx context.Context, w analytics.Window) (analytics.Overview, error)
}

type AnalyticsController struct {
	reports AnalyticsReporter
}

func NewAnalyticsController(reports AnalyticsReporter) *AnalyticsController {
	return &AnalyticsController{reports: reports}
}

// window reads ?days=, defaulting to 30.
func window(c *gin.Context) (analytics.Window, bool) {
	days, ok := queryInt(c, "days", analytics.DefaultWindowDays)
	if !ok {
		return analytics.Window{}, false
	}
	w, err := analytics.NewWindow(days)
	if err != nil {
		respondError(c, err)
		return analytics.Window{}, false
	}
	return w, true
}

func (a *AnalyticsController) DepartmentPerformance(c *gin.Context) {
	w, ok := window(c)
	if !ok {
		return
	}
	report, err := a.reports.DepartmentPerformance(c.Request.Context(), w)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, fmt.Sprintf("Department performance data for last %d days", w.Days), gin.H{
		"data":              report.Data,
		"total_departments": report.TotalDepartments,
		"analysis_period":   w.Label(),
	})
}

func (a *AnalyticsController) PeakHours(c *gin.Context) {
	w, ok := window(c)
	if !ok {
		return
	}
	report, err := a.reports.PeakHours(c.Request.Context(), w)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, fmt.Sprintf("Peak hours analysis for last %d days", w.Days), gin.H{
		"data":            report.Data,
		"busiest_hours":   report.BusiestHours,
		"total_issues":    report.TotalIssues,
		"analysis_period": w.Label(),
	})
}

func (a *AnalyticsController) LocationHotspots(c *gin.Context) {
	w, ok := window(c)
	if !ok {
		return
	}
	report, err := a.reports.LocationHotspots(c.Request.Context(), w)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, fmt.Sprintf("Location hotspots for last %d days", w.Days), gin.H{
		"data":            report.Data,
		"total_locations": report.TotalLocations,
		"analysis_period": w.Label(),
	})
}

func (a *AnalyticsController) CategoryDistribution(c *gin.Context) {
	w, ok := window(c)
	if !ok {
		return
	}
	report, err := a.reports.CategoryDistribution(c.Request.Context(), w)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, fmt.Sprintf("Category distribution for last %d days", w.Days), gin.H{
		"data":            report.Data,
		"total_issues":    report.TotalIssues,
		"analysis_period": w.Label(),
	})
}

func (a *AnalyticsController) ResolutionTrends(c *gin.Context) {
	w, ok := window(c)
	if !ok {
		return
	}
	report, err := a.reports.ResolutionTrends(c.Request.Context(), w)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, fmt.Sprintf("Resolution trends for last %d days", w.Days), gin.H{
		"data":            report,
		"analysis_period": w.Label(),
	})
}

func (a *AnalyticsController) Overview(c *gin.Context) {
	w, ok := window(c)
	if !ok {
		return
	}
	report, err := a.reports.Overview(c.Request.Context(), w)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, fmt.Sprintf("Analytics overview for last %d days", w.Days), gin.H{
		"data":            report,
		"analysis_period": w.Label(),
	})
}
