// Package filter provides the in-memory search and ordering used by the
// review history view.
package filter

import (
	"sort"
	"strings"

	"github.com/critapp/crit/internal/models"
)

// Match returns the reviews whose language or filename contains term,
// case-insensitively. An empty term returns the input slice unchanged and
// unreordered. The input is never mutated; a missing filename never matches
// a non-empty term.
func Match(reviews []models.Review, term string) []models.Review {
	if term == "" {
		return reviews
	}
	needle := strings.ToLower(term)

	var out []models.Review
	for _, r := range reviews {
		if strings.Contains(strings.ToLower(string(r.Language)), needle) ||
			(r.Filename != "" && strings.Contains(strings.ToLower(r.Filename), needle)) {
			out = append(out, r)
		}
	}
	return out
}

// SortNewestFirst returns a copy of reviews ordered by timestamp descending,
// with ties broken by ID ascending. The service does not guarantee list
// order, so views that display in recency order sort explicitly.
func SortNewestFirst(reviews []models.Review) []models.Review {
	out := make([]models.Review, len(reviews))
	copy(out, reviews)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
