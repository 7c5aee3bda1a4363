package models

import (
	"path/filepath"
	"strings"
)

// Language identifies the programming language of a submission.
type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguagePython     Language = "python"
	LanguageJava       Language = "java"
	LanguageCPP        Language = "cpp"
	LanguageCSharp     Language = "csharp"
	LanguageGo         Language = "go"
	LanguageRust       Language = "rust"
	LanguagePHP        Language = "php"
	LanguageRuby       Language = "ruby"
	LanguageSwift      Language = "swift"
	LanguageKotlin     Language = "kotlin"
)

// Languages lists the accepted languages in display order.
func Languages() []Language {
	return []Language{
		LanguageJavaScript, LanguageTypeScript, LanguagePython, LanguageJava,
		LanguageCPP, LanguageCSharp, LanguageGo, LanguageRust,
		LanguagePHP, LanguageRuby, LanguageSwift, LanguageKotlin,
	}
}

// Valid reports whether l is one of the accepted languages.
func (l Language) Valid() bool {
	for _, known := range Languages() {
		if l == known {
			return true
		}
	}
	return false
}

// extLanguages maps lowercase file extensions (without the dot) to languages.
var extLanguages = map[string]Language{
	"js":    LanguageJavaScript,
	"jsx":   LanguageJavaScript,
	"ts":    LanguageTypeScript,
	"tsx":   LanguageTypeScript,
	"py":    LanguagePython,
	"java":  LanguageJava,
	"cpp":   LanguageCPP,
	"cc":    LanguageCPP,
	"c":     LanguageCPP,
	"cs":    LanguageCSharp,
	"go":    LanguageGo,
	"rs":    LanguageRust,
	"php":   LanguagePHP,
	"rb":    LanguageRuby,
	"swift": LanguageSwift,
	"kt":    LanguageKotlin,
}

// DetectLanguage infers a language from a filename's extension.
// The second return value is false when the extension is unknown.
func DetectLanguage(filename string) (Language, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	lang, ok := extLanguages[ext]
	return lang, ok
}
