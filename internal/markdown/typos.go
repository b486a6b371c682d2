package markdown

import (
	"regexp"
)

// typoFix pairs a compiled case-insensitive misspelling pattern with its
// exact-case correction.
type typoFix struct {
	pattern *regexp.Regexp
	fix     string
}

// typoFixes is the known misspelling table for skill descriptions. Matching is
// case-insensitive; replacements use the exact casing given here. The set is
// non-overlapping, so application order does not affect the result.
var typoFixes = []typoFix{
	{regexp.MustCompile(`(?i)Manangement`), "Management"},
	{regexp.MustCompile(`(?i)Terrafomr`), "Terraform"},
	{regexp.MustCompile(`(?i)Proffesional`), "Professional"},
	{regexp.MustCompile(`(?i)Proffestional`), "Professional"},
	{regexp.MustCompile(`(?i)Infrastrucure`), "Infrastructure"},
	{regexp.MustCompile(`(?i)Infastrucure`), "Infrastructure"},
	{regexp.MustCompile(`(?i)mananged`), "managed"},
}

// FixTypos corrects every occurrence of every known misspelling in text.
func FixTypos(text string) string {
	if text == "" {
		return text
	}
	for _, t := range typoFixes {
		text = t.pattern.ReplaceAllString(text, t.fix)
	}
	return text
}
