package api

import (
	"hash/fnv"

	"github.com/critapp/crit/internal/models"
)

// The stub fabricates analysis results: no model is consulted. Scores are
// derived from a hash of the submitted code so resubmitting the same
// snippet yields the same review, which makes the stub usable in
// end-to-end tests.

var categories = []string{"Code Quality", "Security", "Performance", "Best Practices"}

// cannedIssue is one template finding the stub attaches to low-scoring
// categories.
type cannedIssue struct {
	severity   models.Severity
	message    string
	suggestion string
}

var cannedIssues = map[string][]cannedIssue{
	"Code Quality": {
		{models.SeverityMedium, "function is longer than 50 lines", "split it into smaller helpers"},
		{models.SeverityLow, "variable name does not convey intent", "rename to describe the value it holds"},
	},
	"Security": {
		{models.SeverityHigh, "input reaches a sink without sanitization", "validate and escape external input"},
		{models.SeverityCritical, "credentials appear in source", "load secrets from the environment"},
	},
	"Performance": {
		{models.SeverityMedium, "inefficient loop over a growing collection", "hoist the invariant work out of the loop"},
		{models.SeverityLow, "repeated allocation in a hot path", "reuse a buffer across iterations"},
	},
	"Best Practices": {
		{models.SeverityLow, "error return value is ignored", "handle or propagate the error"},
		{models.SeverityMedium, "magic number without explanation", "extract a named constant"},
	},
}

// fabricateResults produces the four category results for a submission.
func fabricateResults(code string) ([]models.CategoryResult, int) {
	results := make([]models.CategoryResult, 0, len(categories))
	total := 0

	for _, category := range categories {
		score := categoryScore(code, category)
		total += score

		issues := []models.Issue{}
		pool := cannedIssues[category]
		if score < 80 {
			line := 1 + int(hash(code+category+"line")%20)
			issue := pool[0]
			issues = append(issues, models.Issue{
				Severity:   issue.severity,
				Line:       &line,
				Message:    issue.message,
				Suggestion: issue.suggestion,
			})
		}
		if score < 55 {
			issue := pool[1]
			issues = append(issues, models.Issue{
				Severity:   issue.severity,
				Message:    issue.message,
				Suggestion: issue.suggestion,
			})
		}

		results = append(results, models.CategoryResult{
			Category: category,
			Score:    score,
			Issues:   issues,
		})
	}

	// Overall is the integer mean of the category scores.
	return results, total / len(categories)
}

// categoryScore maps code+category deterministically into [40,100].
func categoryScore(code, category string) int {
	return 40 + int(hash(code+category)%61)
}

func hash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
