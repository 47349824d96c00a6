package services

import (
	"context"

	"civicreport-be/geo"
	"civicreport-be/metrics"
	"civicreport-be/store"
)

// NearbyService runs proximity searches over coordinate-bearing issues.
type NearbyService struct {
	issues         store.IssueStore
	candidateLimit int
}

func NewNearbyService(issues store.IssueStore, candidateLimit int) *NearbyService {
	return &NearbyService{issues: issues, candidateLimit: candidateLimit}
}

// FindNearby validates q before touching the store. The candidate cap only
// applies to issues inside the bounding box of the search circle.
func (s *NearbyService) FindNearby(ctx context.Context, q geo.Query) ([]geo.Result, error) {
	q = q.WithDefaults()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	box := geo.BoundingBox(q.Latitude, q.Longitude, q.RadiusKM)
	candidates, err := s.issues.FetchIssues(ctx, store.IssueQuery{
		Filter: store.IssueFilter{HasCoordinates: true, Within: &box},
		Limit:  s.candidateLimit,
		Order:  store.NewestFirst,
	})
	if err != nil {
		return nil, err
	}

	results, err := geo.FindNearby(q, candidates)
	if err != nil {
		return nil, err
	}
	metrics.RecordNearbySearch(len(results))
	return results, nil
}
