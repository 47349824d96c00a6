package analytics

import (
	"strconv"

	"civicreport-be/models"
)

// Overview is the raw breakdown behind the admin dashboard cards.
type Overview struct {
	TotalIssues int                        `json:"total_issues"`
	ByCategory  map[models.Category]int    `json:"by_category"`
	ByStatus    map[models.IssueStatus]int `json:"by_status"`
	BySeverity  map[string]int             `json:"by_severity"`
}

func OverviewOf(issues []models.Issue) Overview {
	o := Overview{
		TotalIssues: len(issues),
		ByCategory:  make(map[models.Category]int),
		ByStatus:    make(map[models.IssueStatus]int),
		BySeverity:  make(map[string]int),
	}
	for i := range issues {
		issue := &issues[i]
		category := issue.CategoryOrUnknown()
		if !category.Valid() {
			category = models.UnknownCategory
		}
		o.ByCategory[category]++
		o.ByStatus[issue.StatusOrUnknown()]++

		severity := "unknown"
		if models.ValidSeverity(issue.SeverityLevel) {
			severity = strconv.Itoa(issue.SeverityLevel)
		}
		o.BySeverity[severity]++
	}
	return o
}
