package md2docx

import (
	"html"
	"regexp"

	"github.com/dlclark/regexp2"
)

// Inline patterns, applied in declaration order. Each is non-greedy.
// Emphasis needs lookaround to skip asterisks left over from strong
// markers, which RE2 cannot express, so it uses regexp2.
var (
	strongPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	emphasisPattern = regexp2.MustCompile(`(?<!\*)\*(?!\*)(.+?)(?<!\*)\*(?!\*)`, regexp2.None)
	strikePattern   = regexp.MustCompile(`~~(.+?)~~`)
	linkPattern     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	codePattern     = regexp.MustCompile("`([^`]+)`")
)

// Inline escapes text for HTML and rewrites inline markers into tags:
// **strong**, *em*, ~~s~~, [label](url) and `code`, in that order.
func Inline(text string) string {
	if text == "" {
		return ""
	}
	text = html.EscapeString(text)
	text = strongPattern.ReplaceAllString(text, "<strong>${1}</strong>")
	text = replaceEmphasis(text)
	text = strikePattern.ReplaceAllString(text, "<s>${1}</s>")
	text = linkPattern.ReplaceAllString(text, `<a href="${2}">${1}</a>`)
	text = codePattern.ReplaceAllString(text, "<code>${1}</code>")
	return text
}

// replaceEmphasis wraps single-asterisk spans in <em>.
// regexp2 only fails on match timeout, which is not configured; the input is
// returned unchanged if it ever does.
func replaceEmphasis(text string) string {
	out, err := emphasisPattern.Replace(text, "<em>$1</em>", -1, -1)
	if err != nil {
		return text
	}
	return out
}
