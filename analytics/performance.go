package analytics

import (
	"sort"

	"civicreport-be/models"
)

const defaultSatisfaction = 4.0

type DepartmentStats struct {
	Category        models.Category `json:"category"`
	Name            string          `json:"name"`
	Total           int             `json:"total"`
	Resolved        int             `json:"resolved"`
	Pending         int             `json:"pending"`
	InProgress      int             `json:"in_progress"`
	ResolutionRate  float64         `json:"resolution_rate"`
	AvgSatisfaction float64         `json:"avg_satisfaction"`
}

type PerformanceReport struct {
	Data             []DepartmentStats `json:"data"`
	TotalDepartments int               `json:"total_departments"`
}

// statusTally counts statuses and satisfaction ratings for one group of issues.
type statusTally struct {
	total, resolved, pending, inProgress int
	satisfactionSum                      float64
	satisfactionCount                    int
}

func (t *statusTally) add(issue *models.Issue) {
	t.total++
	switch status := issue.StatusOrUnknown(); {
	case status == models.Resolved:
		t.resolved++
	case status.IsPending():
		t.pending++
	case status.IsInProgress():
		t.inProgress++
	}
	if issue.CitizenSatisfactionRating != nil {
		t.satisfactionSum += *issue.CitizenSatisfactionRating
		t.satisfactionCount++
	}
}

func (t *statusTally) resolutionRate() float64 {
	return percent(t.resolved, t.total)
}

func (t *statusTally) avgSatisfaction() float64 {
	if t.satisfactionCount == 0 {
		return defaultSatisfaction
	}
	return round1(t.satisfactionSum / float64(t.satisfactionCount))
}

// DepartmentPerformanceOf rolls issues up per category, the unit each
// department is responsible for.
func DepartmentPerformanceOf(issues []models.Issue) PerformanceReport {
	var order []models.Category
	tallies := make(map[models.Category]*statusTally)
	for i := range issues {
		category := issues[i].CategoryOrUnknown()
		t, ok := tallies[category]
		if !ok {
			t = &statusTally{}
			tallies[category] = t
			order = append(order, category)
		}
		t.add(&issues[i])
	}

	stats := make([]DepartmentStats, 0, len(order))
	for _, category := range order {
		t := tallies[category]
		stats = append(stats, DepartmentStats{
			Category:        category,
			Name:            models.DepartmentName(category),
			Total:           t.total,
			Resolved:        t.resolved,
			Pending:         t.pending,
			InProgress:      t.inProgress,
			ResolutionRate:  t.resolutionRate(),
			AvgSatisfaction: t.avgSatisfaction(),
		})
	}
	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].Total > stats[b].Total
	})

	return PerformanceReport{Data: stats, TotalDepartments: len(stats)}
}
