package geo

import (
	"fmt"
	"math"
	"sort"

	"civicreport-be/apperrors"
	"civicreport-be/models"
)

const (
	DefaultRadiusKM = 10.0
	DefaultLimit    = 100
)

// Query is a proximity search around an origin point
type Query struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKM  float64 `json:"radius_km"`
	Limit     int     `json:"limit"`
}

// WithDefaults fills a zero radius or limit with the service defaults.
func (q Query) WithDefaults() Query {
	if q.RadiusKM == 0 {
		q.RadiusKM = DefaultRadiusKM
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	return q
}

func (q Query) Validate() error {
	if math.IsNaN(q.RadiusKM) || q.RadiusKM <= 0 {
		return fmt.Errorf("%w: radius_km must be greater than 0", apperrors.ErrInvalidArgument)
	}
	if q.Limit <= 0 {
		return fmt.Errorf("%w: limit must be greater than 0", apperrors.ErrInvalidArgument)
	}
	return nil
}

// Result is an issue annotated with its distance from the query origin
type Result struct {
	models.Issue
	DistanceKM float64 `json:"distance_km"`
}

// FindNearby keeps the candidates within q.RadiusKM of the origin, nearest
// first, at most q.Limit of them. Candidates without both coordinates are
// skipped. Equal distances keep their input order.
func FindNearby(q Query, candidates []models.Issue) ([]Result, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	type ranked struct {
		index    int
		distance float64
	}
	within := make([]ranked, 0, len(candidates))
	for i := range candidates {
		lat, lon, ok := candidates[i].Coordinates()
		if !ok {
			continue
		}
		d := DistanceKM(q.Latitude, q.Longitude, lat, lon)
		if math.IsNaN(d) || d > q.RadiusKM {
			continue
		}
		// rounding must not report a distance beyond the radius that admitted it
		within = append(within, ranked{index: i, distance: math.Min(roundTo(d, 2), q.RadiusKM)})
	}

	sort.SliceStable(within, func(a, b int) bool {
		return within[a].distance < within[b].distance
	})
	if len(within) > q.Limit {
		within = within[:q.Limit]
	}

	results := make([]Result, 0, len(within))
	for _, r := range within {
		results = append(results, Result{Issue: candidates[r.index], DistanceKM: r.distance})
	}
	return results, nil
}

func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
