package md2docx

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Heading markers, longest first so "### " is never read as "## ".
var headingMarkers = []struct {
	prefix string
	kind   Kind
}{
	{"### ", KindH3},
	{"## ", KindH2},
	{"# ", KindH1},
}

// List markers. \p{Zs} admits the ideographic space U+3000 after the marker.
var (
	unorderedMarker = regexp.MustCompile(`^[*-][\s\p{Zs}]+`)
	orderedMarker   = regexp.MustCompile(`^(\d+)\.[\s\p{Zs}]+`)
)

// Parse splits text into one Element per line.
// Lines are classified independently: adjacent paragraphs and list items are
// never joined. A trailing newline ends the last line rather than opening an
// empty one, so "a\n" yields a single paragraph.
func Parse(text string) []Element {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	elements := make([]Element, 0, len(lines))
	for _, line := range lines {
		elements = append(elements, parseLine(line))
	}
	return elements
}

// parseLine classifies a single line. First matching rule wins.
func parseLine(raw string) Element {
	line := strings.TrimRightFunc(raw, unicode.IsSpace)
	if line == "" {
		return Element{Kind: KindEmpty}
	}

	for _, m := range headingMarkers {
		if strings.HasPrefix(line, m.prefix) {
			return Element{Kind: m.kind, Text: strings.TrimSpace(line[len(m.prefix):])}
		}
	}

	if loc := unorderedMarker.FindStringIndex(line); loc != nil {
		return Element{Kind: KindListItem, ListKind: Unordered, Text: line[loc[1]:]}
	}

	if m := orderedMarker.FindStringSubmatchIndex(line); m != nil {
		n, err := strconv.Atoi(line[m[2]:m[3]])
		if err != nil {
			n = 0
		}
		return Element{Kind: KindListItem, ListKind: Ordered, Number: n, Text: line[m[1]:]}
	}

	return Element{Kind: KindParagraph, Text: line}
}
