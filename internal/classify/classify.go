package classify

import "github.com/critapp/crit/internal/models"

// Band is a four-level quality classification derived from a 0-100 score.
// It drives display only; scores themselves come from the analysis service.
type Band string

const (
	BandGood     Band = "good"     // score >= 80
	BandFair     Band = "fair"     // 60 <= score < 80
	BandPoor     Band = "poor"     // 40 <= score < 60
	BandCritical Band = "critical" // score < 40
)

// ScoreBand maps a score to its quality band. The same thresholds apply to
// a review's overall score and to individual category scores.
func ScoreBand(score int) Band {
	switch {
	case score >= 80:
		return BandGood
	case score >= 60:
		return BandFair
	case score >= 40:
		return BandPoor
	default:
		return BandCritical
	}
}

// Class is the display classification of an issue severity.
type Class string

const (
	ClassCritical Class = "critical"
	ClassHigh     Class = "high"
	ClassMedium   Class = "medium"
	ClassLow      Class = "low"
)

// SeverityClass maps a severity to its display class. Unrecognized
// severities fall through to the low class so that forward-incompatible
// values from the analysis service render rather than error.
func SeverityClass(s models.Severity) Class {
	switch s {
	case models.SeverityCritical:
		return ClassCritical
	case models.SeverityHigh:
		return ClassHigh
	case models.SeverityMedium:
		return ClassMedium
	default:
		return ClassLow
	}
}
