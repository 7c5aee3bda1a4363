package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/critapp/crit/internal/models"
)

func sample() []models.Review {
	return []models.Review{
		{ID: "a", Language: models.LanguageGo},
		{ID: "b", Language: models.LanguagePython, Filename: "x.py"},
		{ID: "c", Language: models.LanguageJavaScript, Filename: "app.js"},
	}
}

func TestMatch_EmptyTermReturnsInputUnchanged(t *testing.T) {
	in := sample()
	out := Match(in, "")
	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
}

func TestMatch_CaseInsensitive(t *testing.T) {
	in := sample()
	upper := Match(in, "PY")
	lower := Match(in, "py")
	assert.Equal(t, upper, lower)
	require.Len(t, lower, 1)
	assert.Equal(t, "b", lower[0].ID)
}

func TestMatch_LanguageOrFilename(t *testing.T) {
	in := sample()

	// "go" matches language only
	out := Match(in, "go")
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)

	// "app" matches filename only
	out = Match(in, "app")
	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].ID)
}

func TestMatch_MissingFilenameNeverMatches(t *testing.T) {
	in := []models.Review{{ID: "a", Language: models.LanguageGo}}
	assert.Empty(t, Match(in, "x.py"))
}

func TestMatch_DoesNotMutateInput(t *testing.T) {
	in := sample()
	_ = Match(in, "py")
	assert.Equal(t, "a", in[0].ID)
	assert.Len(t, in, 3)
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	in := []models.Review{
		{ID: "old", Timestamp: base.Add(-time.Hour)},
		{ID: "new", Timestamp: base.Add(time.Hour)},
		{ID: "mid", Timestamp: base},
	}

	out := SortNewestFirst(in)
	require.Len(t, out, 3)
	assert.Equal(t, "new", out[0].ID)
	assert.Equal(t, "mid", out[1].ID)
	assert.Equal(t, "old", out[2].ID)

	// input order untouched
	assert.Equal(t, "old", in[0].ID)
}

func TestSortNewestFirst_TieBreakByID(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	in := []models.Review{
		{ID: "b", Timestamp: ts},
		{ID: "a", Timestamp: ts},
	}

	out := SortNewestFirst(in)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
}
