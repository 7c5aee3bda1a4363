package models

import (
	"fmt"
	"time"
)

// Severity is the urgency of an issue as reported by the analysis service.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Issue is a single finding within a category result.
type Issue struct {
	Severity   Severity `json:"severity"`
	Line       *int     `json:"line,omitempty"` // 1-based source line, nil when not tied to a line
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion"`
}

// CategoryResult is one scored analysis dimension of a review.
type CategoryResult struct {
	Category string  `json:"category"`
	Score    int     `json:"score"`
	Issues   []Issue `json:"issues"`
}

// Review is one complete analysis result for a submitted code snippet.
// Reviews are immutable once created: the only lifecycle events are
// creation via submission and deletion.
type Review struct {
	ID           string           `json:"id"`
	Code         string           `json:"code,omitempty"` // omitted by the service in list responses
	Language     Language         `json:"language"`
	Filename     string           `json:"filename,omitempty"`
	Timestamp    time.Time        `json:"timestamp"`
	Status       string           `json:"status,omitempty"`
	OverallScore int              `json:"overall_score"`
	Results      []CategoryResult `json:"results"`
}

// Validate checks the review's score invariants: OverallScore and every
// category score in [0,100], and category labels pairwise distinct.
func (r *Review) Validate() error {
	if r.OverallScore < 0 || r.OverallScore > 100 {
		return fmt.Errorf("overall_score %d out of range [0,100]", r.OverallScore)
	}
	seen := make(map[string]bool, len(r.Results))
	for _, res := range r.Results {
		if res.Score < 0 || res.Score > 100 {
			return fmt.Errorf("category %q score %d out of range [0,100]", res.Category, res.Score)
		}
		if seen[res.Category] {
			return fmt.Errorf("duplicate category %q", res.Category)
		}
		seen[res.Category] = true
	}
	return nil
}

// ReviewSummary is the projection of a review shown in a list entry.
type ReviewSummary struct {
	ID           string
	Language     Language
	Filename     string
	Timestamp    time.Time
	OverallScore int
	TopResults   []CategoryResult
}

// Summary returns the list-entry projection: identity fields plus the
// first four category results.
func (r *Review) Summary() ReviewSummary {
	top := r.Results
	if len(top) > 4 {
		top = top[:4]
	}
	return ReviewSummary{
		ID:           r.ID,
		Language:     r.Language,
		Filename:     r.Filename,
		Timestamp:    r.Timestamp,
		OverallScore: r.OverallScore,
		TopResults:   top,
	}
}
