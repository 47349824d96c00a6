package analytics

import (
	"sort"
	"strconv"
	"strings"

	"civicreport-be/models"
)

const (
	MaxHotspots        = 20
	UnknownLocation    = "Unknown Location"
	defaultAvgSeverity = 2.0
)

type Hotspot struct {
	Location    string                  `json:"location"`
	IssuesCount int                     `json:"issues_count"`
	Latitude    *float64                `json:"latitude"`
	Longitude   *float64                `json:"longitude"`
	TopCategory models.Category         `json:"top_category"`
	Categories  map[models.Category]int `json:"categories"`
	Severities  map[string]int          `json:"severities"`
	AvgSeverity float64                 `json:"avg_severity"`
}

type HotspotsReport struct {
	Data           []Hotspot `json:"data"`
	TotalLocations int       `json:"total_locations"`
}

type locationGroup struct {
	label      string
	count      int
	latitude   *float64
	longitude  *float64
	categories *orderedCounter[models.Category]
	severities map[int]int
}

// LocationHotspotsOf groups issues by their exact location label and ranks the
// busiest MaxHotspots locations.
func LocationHotspotsOf(issues []models.Issue) HotspotsReport {
	var order []*locationGroup
	groups := make(map[string]*locationGroup)

	for i := range issues {
		issue := &issues[i]
		label := issue.Location
		if strings.TrimSpace(label) == "" {
			label = UnknownLocation
		}

		g, ok := groups[label]
		if !ok {
			g = &locationGroup{
				label:      label,
				latitude:   issue.Latitude,
				longitude:  issue.Longitude,
				categories: newOrderedCounter[models.Category](),
				severities: make(map[int]int),
			}
			groups[label] = g
			order = append(order, g)
		}

		g.count++
		g.categories.add(issue.CategoryOrUnknown(), 1)
		if models.ValidSeverity(issue.SeverityLevel) {
			g.severities[issue.SeverityLevel]++
		}
	}

	hotspots := make([]Hotspot, 0, len(order))
	for _, g := range order {
		top, _ := g.categories.top()
		hotspots = append(hotspots, Hotspot{
			Location:    g.label,
			IssuesCount: g.count,
			Latitude:    g.latitude,
			Longitude:   g.longitude,
			TopCategory: top,
			Categories:  g.categories.values,
			Severities:  severityLabels(g.severities),
			AvgSeverity: weightedSeverity(g.severities),
		})
	}
	sort.SliceStable(hotspots, func(a, b int) bool {
		return hotspots[a].IssuesCount > hotspots[b].IssuesCount
	})

	report := HotspotsReport{TotalLocations: len(hotspots), Data: hotspots}
	if len(hotspots) > MaxHotspots {
		report.Data = hotspots[:MaxHotspots]
	}
	return report
}

// weightedSeverity is Σ(level×count)/Σ(count), or 2.0 without severity data.
func weightedSeverity(severities map[int]int) float64 {
	weighted, n := 0, 0
	for level, count := range severities {
		weighted += level * count
		n += count
	}
	if n == 0 {
		return defaultAvgSeverity
	}
	return float64(weighted) / float64(n)
}

func severityLabels(severities map[int]int) map[string]int {
	labels := make(map[string]int, len(severities))
	for level, count := range severities {
		labels[strconv.Itoa(level)] = count
	}
	return labels
}
