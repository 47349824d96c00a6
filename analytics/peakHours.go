package analytics

import (
	"fmt"
	"sort"

	"civicreport-be/models"
)

const busiestHoursCount = 3

type HourBucket struct {
	Hour       string  `json:"hour"`
	Hour24     int     `json:"hour_24"`
	Issues     int     `json:"issues"`
	Percentage float64 `json:"percentage"`
}

type PeakHoursReport struct {
	Data         []HourBucket `json:"data"`
	BusiestHours []string     `json:"busiest_hours"`
	TotalIssues  int          `json:"total_issues"`
}

// PeakHoursOf buckets issues by UTC hour of creation. The report always has
// 24 buckets; issues without a creation time are skipped.
func PeakHoursOf(issues []models.Issue) PeakHoursReport {
	var counts [24]int
	total := 0
	for i := range issues {
		createdAt := issues[i].CreatedAt
		if createdAt.IsZero() {
			continue
		}
		counts[createdAt.UTC().Hour()]++
		total++
	}

	buckets := make([]HourBucket, 24)
	for hour := 0; hour < 24; hour++ {
		buckets[hour] = HourBucket{
			Hour:       fmt.Sprintf("%02d:00", hour),
			Hour24:     hour,
			Issues:     counts[hour],
			Percentage: percent(counts[hour], total),
		}
	}

	ranked := make([]HourBucket, len(buckets))
	copy(ranked, buckets)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Issues > ranked[b].Issues
	})
	busiest := make([]string, 0, busiestHoursCount)
	for _, bucket := range ranked[:busiestHoursCount] {
		if bucket.Issues > 0 {
			busiest = append(busiest, bucket.Hour)
		}
	}

	return PeakHoursReport{Data: buckets, BusiestHours: busiest, TotalIssues: total}
}
