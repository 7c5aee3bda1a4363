package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_OK(t *testing.T) {
	r := &Review{
		ID:           "r1",
		Language:     LanguagePython,
		OverallScore: 72,
		Results: []CategoryResult{
			{Category: "Security", Score: 90},
			{Category: "Performance", Score: 54},
		},
	}
	assert.NoError(t, r.Validate())
}

func TestValidate_ScoreBounds(t *testing.T) {
	r := &Review{OverallScore: 101}
	assert.Error(t, r.Validate())

	r = &Review{OverallScore: -1}
	assert.Error(t, r.Validate())

	r = &Review{
		OverallScore: 50,
		Results:      []CategoryResult{{Category: "Security", Score: 120}},
	}
	assert.Error(t, r.Validate())
}

func TestValidate_DuplicateCategory(t *testing.T) {
	r := &Review{
		OverallScore: 50,
		Results: []CategoryResult{
			{Category: "Security", Score: 80},
			{Category: "Security", Score: 60},
		},
	}
	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Security")
}

func TestSummary_TruncatesToFourCategories(t *testing.T) {
	r := &Review{
		ID:           "r1",
		Language:     LanguageGo,
		Filename:     "main.go",
		Timestamp:    time.Now().UTC(),
		OverallScore: 88,
		Results: []CategoryResult{
			{Category: "Code Quality", Score: 90},
			{Category: "Security", Score: 85},
			{Category: "Performance", Score: 80},
			{Category: "Best Practices", Score: 95},
			{Category: "Extra", Score: 70},
		},
	}

	s := r.Summary()
	assert.Equal(t, "r1", s.ID)
	assert.Equal(t, 88, s.OverallScore)
	require.Len(t, s.TopResults, 4)
	assert.Equal(t, "Code Quality", s.TopResults[0].Category)
	assert.Equal(t, "Best Practices", s.TopResults[3].Category)
}

func TestSummary_FewerThanFour(t *testing.T) {
	r := &Review{Results: []CategoryResult{{Category: "Security", Score: 50}}}
	assert.Len(t, r.Summary().TopResults, 1)
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		filename string
		want     Language
		ok       bool
	}{
		{"app.js", LanguageJavaScript, true},
		{"App.JSX", LanguageJavaScript, true},
		{"index.ts", LanguageTypeScript, true},
		{"view.tsx", LanguageTypeScript, true},
		{"script.py", LanguagePython, true},
		{"Main.java", LanguageJava, true},
		{"util.cpp", LanguageCPP, true},
		{"util.cc", LanguageCPP, true},
		{"util.c", LanguageCPP, true},
		{"Program.cs", LanguageCSharp, true},
		{"main.go", LanguageGo, true},
		{"lib.rs", LanguageRust, true},
		{"index.php", LanguagePHP, true},
		{"app.rb", LanguageRuby, true},
		{"View.swift", LanguageSwift, true},
		{"Main.kt", LanguageKotlin, true},
		{"notes.txt", "", false},
		{"Makefile", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			lang, ok := DetectLanguage(tt.filename)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, lang)
		})
	}
}

func TestLanguageValid(t *testing.T) {
	assert.True(t, LanguagePython.Valid())
	assert.True(t, LanguageKotlin.Valid())
	assert.False(t, Language("cobol").Valid())
	assert.False(t, Language("").Valid())
}
