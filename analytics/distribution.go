package analytics

import (
	"sort"

	"civicreport-be/models"
)

type CategoryShare struct {
	Category   models.Category `json:"category"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

type CategoryDistribution struct {
	Data        []CategoryShare `json:"data"`
	TotalIssues int             `json:"total_issues"`
}

// CategoryDistributionOf counts issues per category. Missing and unrecognized
// categories are counted as "unknown".
func CategoryDistributionOf(issues []models.Issue) CategoryDistribution {
	counts := newOrderedCounter[models.Category]()
	for i := range issues {
		category := issues[i].CategoryOrUnknown()
		if !category.Valid() {
			category = models.UnknownCategory
		}
		counts.add(category, 1)
	}

	total := len(issues)
	shares := make([]CategoryShare, 0, len(counts.keys))
	for _, category := range counts.keys {
		count := counts.values[category]
		shares = append(shares, CategoryShare{
			Category:   category,
			Count:      count,
			Percentage: percent(count, total),
		})
	}
	sort.SliceStable(shares, func(a, b int) bool {
		return shares[a].Count > shares[b].Count
	})

	return CategoryDistribution{Data: shares, TotalIssues: total}
}

// orderedCounter counts keys and remembers first-seen order for tie breaks.
type orderedCounter[K comparable] struct {
	keys   []K
	values map[K]int
}

func newOrderedCounter[K comparable]() *orderedCounter[K] {
	return &orderedCounter[K]{values: make(map[K]int)}
}

func (c *orderedCounter[K]) add(key K, n int) {
	if _, seen := c.values[key]; !seen {
		c.keys = append(c.keys, key)
	}
	c.values[key] += n
}

// top returns the key with the highest count, the first-seen one on ties.
func (c *orderedCounter[K]) top() (K, bool) {
	var best K
	bestCount := -1
	for _, key := range c.keys {
		if c.values[key] > bestCount {
			best, bestCount = key, c.values[key]
		}
	}
	return best, bestCount >= 0
}
