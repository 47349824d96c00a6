package analytics

import "civicreport-be/models"

type ResolutionTrends struct {
	TotalCreated       int      `json:"total_created"`
	TotalResolved      int      `json:"total_resolved"`
	TotalPending       int      `json:"total_pending"`
	TotalInProgress    int      `json:"total_in_progress"`
	ResolutionRate     float64  `json:"resolution_rate"`
	SatisfactionScore  float64  `json:"satisfaction_score"`
	AvgResolutionHours *float64 `json:"avg_resolution_hours"`
}

// ResolutionTrendsOf summarises the whole snapshot. Resolution time is the
// mean of ResolvedAt-CreatedAt over resolved issues carrying both stamps and
// stays nil without any.
func ResolutionTrendsOf(issues []models.Issue) ResolutionTrends {
	var t statusTally
	var hours float64
	timed := 0
	for i := range issues {
		issue := &issues[i]
		t.add(issue)
		if issue.Status != models.Resolved || issue.ResolvedAt == nil || issue.CreatedAt.IsZero() ||
			issue.ResolvedAt.Before(issue.CreatedAt) {
			continue
		}
		hours += issue.ResolvedAt.Sub(issue.CreatedAt).Hours()
		timed++
	}

	trends := ResolutionTrends{
		TotalCreated:      t.total,
		TotalResolved:     t.resolved,
		TotalPending:      t.pending,
		TotalInProgress:   t.inProgress,
		ResolutionRate:    t.resolutionRate(),
		SatisfactionScore: t.avgSatisfaction(),
	}
	if timed > 0 {
		avg := round1(hours / float64(timed))
		trends.AvgResolutionHours = &avg
	}
	return trends
}
