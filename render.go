package md2docx

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// documentTemplate wraps generated CSS and body markup in a standalone
// HTML document. Margins are declared twice: Word and WPS read the body
// margin, LibreOffice reads @page.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body {
    margin: 2cm 2cm 2cm 2cm;
}
@page {
    margin: 2cm;
}
%s</style>
</head>
<body>
%s</body>
</html>
`

// defaultTitle is used when the document has no level-one heading.
const defaultTitle = "Document"

// emptyParagraph keeps blank source lines visible in the output.
const emptyParagraph = "<p>&nbsp;</p>"

// listPadding substitutes for first-line indent on list containers.
const listPadding = "2em"

// latinAliases maps common Chinese font names to the names Word and
// LibreOffice register on non-Chinese systems.
var latinAliases = map[string]string{
	"黑体":        "SimHei",
	"宋体":        "SimSun",
	"仿宋":        "FangSong",
	"仿宋_GB2312": "FangSong_GB2312",
	"楷体":        "KaiTi",
	"楷体_GB2312": "KaiTi_GB2312",
	"微软雅黑":      "Microsoft YaHei",
	"方正小标宋简体":   "FZXiaoBiaoSong-B05S",
	"华文中宋":      "STZhongsong",
}

// sansFamilies fall back to sans-serif instead of serif.
var sansFamilies = map[string]bool{
	"黑体":   true,
	"微软雅黑": true,
}

// RenderOptions tunes body generation.
type RenderOptions struct {
	// MergeLists puts consecutive list items of the same kind in one
	// container. By default every item is its own single-item list.
	MergeLists bool

	// KeepNumbering emits start="N" on ordered lists whose first item was
	// numbered N in the source, so standalone items keep their numbers.
	KeepNumbering bool
}

// Render produces a complete HTML document for elements using styles.
// Every styled kind must be present in styles.
func Render(styles StyleSet, elements []Element, opts RenderOptions) (string, error) {
	css, err := BuildCSS(styles)
	if err != nil {
		return "", err
	}

	body, err := renderBody(elements, opts)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(documentTemplate, html.EscapeString(documentTitle(elements)), css, body), nil
}

// BuildCSS generates one rule per styled kind, in StyleKinds order.
func BuildCSS(styles StyleSet) (string, error) {
	if err := styles.Complete(); err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, k := range StyleKinds {
		if k == KindListItem {
			writeListRule(&buf, styles[k])
			continue
		}
		writeBlockRule(&buf, k, styles[k])
	}
	return buf.String(), nil
}

// writeBlockRule writes the rule for a heading or paragraph selector.
func writeBlockRule(buf *strings.Builder, k Kind, s ElementStyle) {
	weight := "normal"
	if k.IsHeading() {
		weight = "bold"
	}

	fmt.Fprintf(buf, "%s {\n", k)
	fmt.Fprintf(buf, "    font-family: %s;\n", fontStack(s.Font.Family))
	fmt.Fprintf(buf, "    font-size: %spt;\n", formatNumber(s.Font.Size))
	fmt.Fprintf(buf, "    font-weight: %s;\n", weight)
	fmt.Fprintf(buf, "    text-align: %s;\n", s.Paragraph.Align)
	fmt.Fprintf(buf, "    line-height: %spt;\n", formatNumber(s.Paragraph.LineSpacing))
	fmt.Fprintf(buf, "    margin-top: %spt;\n", formatNumber(s.Paragraph.SpaceBefore))
	fmt.Fprintf(buf, "    margin-bottom: %spt;\n", formatNumber(s.Paragraph.SpaceAfter))
	if s.Paragraph.FirstLineIndent > 0 {
		fmt.Fprintf(buf, "    text-indent: %sem;\n", formatNumber(s.Paragraph.FirstLineIndent))
	}
	buf.WriteString("}\n")
}

// writeListRule writes the shared rule for ul and ol containers.
func writeListRule(buf *strings.Builder, s ElementStyle) {
	buf.WriteString("ul, ol {\n")
	fmt.Fprintf(buf, "    font-family: %s;\n", fontStack(s.Font.Family))
	fmt.Fprintf(buf, "    font-size: %spt;\n", formatNumber(s.Font.Size))
	fmt.Fprintf(buf, "    text-align: %s;\n", s.Paragraph.Align)
	fmt.Fprintf(buf, "    line-height: %spt;\n", formatNumber(s.Paragraph.LineSpacing))
	buf.WriteString("    margin-top: 0;\n")
	buf.WriteString("    margin-bottom: 0;\n")
	fmt.Fprintf(buf, "    padding-left: %s;\n", listPadding)
	buf.WriteString("}\n")
}

// fontStack builds a font-family value: the family, its Latin alias when
// known, then a generic family.
func fontStack(family string) string {
	parts := []string{quoteCSS(family)}
	if alias, ok := latinAliases[family]; ok {
		parts = append(parts, quoteCSS(alias))
	}
	generic := "serif"
	if sansFamilies[family] {
		generic = "sans-serif"
	}
	parts = append(parts, generic)
	return strings.Join(parts, ", ")
}

// quoteCSS returns s as a double-quoted CSS string.
func quoteCSS(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	return `"` + s + `"`
}

// formatNumber prints v without trailing zeros: 16 -> "16", 56.7 -> "56.7".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// renderBody emits one line of markup per element, or per merged list run.
func renderBody(elements []Element, opts RenderOptions) (string, error) {
	var buf strings.Builder
	for i := 0; i < len(elements); i++ {
		el := elements[i]
		switch el.Kind {
		case KindEmpty:
			buf.WriteString(emptyParagraph)
		case KindH1, KindH2, KindH3, KindParagraph:
			fmt.Fprintf(&buf, "<%s>%s</%s>", el.Kind, Inline(el.Text), el.Kind)
		case KindListItem:
			n := 1
			if opts.MergeLists {
				n = listRun(elements[i:])
			}
			writeList(&buf, elements[i:i+n], opts)
			i += n - 1
		default:
			return "", fmt.Errorf("%w: %d at element %d", ErrUnknownElement, el.Kind, i)
		}
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}

// listRun counts the leading list items sharing the first item's list kind.
func listRun(elements []Element) int {
	n := 1
	for n < len(elements) &&
		elements[n].Kind == KindListItem &&
		elements[n].ListKind == elements[0].ListKind {
		n++
	}
	return n
}

// writeList writes items inside a single ul or ol container.
func writeList(buf *strings.Builder, items []Element, opts RenderOptions) {
	first := items[0]
	tag := first.ListKind.tag()

	buf.WriteString("<" + tag)
	if opts.KeepNumbering && first.ListKind == Ordered && first.Number > 1 {
		fmt.Fprintf(buf, ` start="%d"`, first.Number)
	}
	buf.WriteString(">")
	for _, it := range items {
		buf.WriteString("<li>" + Inline(it.Text) + "</li>")
	}
	buf.WriteString("</" + tag + ">")
}

// documentTitle returns the raw text of the first h1, markers stripped.
func documentTitle(elements []Element) string {
	for _, el := range elements {
		if el.Kind == KindH1 && el.Text != "" {
			return stripMarkers(el.Text)
		}
	}
	return defaultTitle
}

// stripMarkers removes the inline markers recognised by Inline.
func stripMarkers(s string) string {
	s = strongPattern.ReplaceAllString(s, "${1}")
	if plain, err := emphasisPattern.Replace(s, "$1", -1, -1); err == nil {
		s = plain
	}
	s = strikePattern.ReplaceAllString(s, "${1}")
	s = linkPattern.ReplaceAllString(s, "${1}")
	s = codePattern.ReplaceAllString(s, "${1}")
	return s
}
