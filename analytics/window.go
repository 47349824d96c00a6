// Package analytics reduces a snapshot of issues into dashboard aggregates.
// Every reducer is pure, tolerates malformed records and is safe on empty
// input.
package analytics

import (
	"fmt"
	"math"
	"time"

	"civicreport-be/apperrors"
	"civicreport-be/models"
)

const DefaultWindowDays = 30

// Window restricts an analysis to issues created in the last Days days.
type Window struct {
	Days int
}

func NewWindow(days int) (Window, error) {
	if days <= 0 {
		return Window{}, fmt.Errorf("%w: days must be greater than 0", apperrors.ErrInvalidArgument)
	}
	return Window{Days: days}, nil
}

// Cutoff is the earliest creation time inside the window.
func (w Window) Cutoff(now time.Time) time.Time {
	return now.UTC().AddDate(0, 0, -w.Days)
}

// Apply drops issues created before the cutoff. Issues without a creation
// time cannot be placed in the window and are dropped too.
func (w Window) Apply(issues []models.Issue, now time.Time) []models.Issue {
	cutoff := w.Cutoff(now)
	kept := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.CreatedAt.IsZero() || issue.CreatedAt.Before(cutoff) {
			continue
		}
		kept = append(kept, issue)
	}
	return kept
}

func (w Window) Label() string {
	return fmt.Sprintf("%d days", w.Days)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// percent returns part/total*100 rounded to one decimal, treating a zero total as 1.
func percent(part, total int) float64 {
	if total <= 0 {
		total = 1
	}
	return round1(float64(part) / float64(total) * 100)
}
