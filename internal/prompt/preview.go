package prompt

import (
	"strconv"

	"github.com/alnah/go-md2docx"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Palette for terminal output.
const (
	colorTitle  = "#FF6188"
	colorBorder = "#5B595C"
	colorDim    = "#727072"
	colorOK     = "#A9DC76"
)

// Shared terminal styles.
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorTitle))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorOK))

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorTitle)).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// previewHeaders label the columns of Preview.
var previewHeaders = []string{"元素", "字体", "字号", "行距", "段前", "段后", "对齐", "首行缩进"}

// Preview renders styles under title as a table, one row per kind in
// rendering order. Point values print without unit; indent is in characters.
func Preview(title string, styles md2docx.StyleSet) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(colorBorder))).
		Headers(previewHeaders...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, k := range md2docx.StyleKinds {
		st, ok := styles[k]
		if !ok {
			continue
		}
		t.Row(
			st.Name,
			st.Font.Family,
			num(st.Font.Size),
			num(st.Paragraph.LineSpacing),
			num(st.Paragraph.SpaceBefore),
			num(st.Paragraph.SpaceAfter),
			string(st.Paragraph.Align),
			num(st.Paragraph.FirstLineIndent),
		)
	}
	return TitleStyle.Render("=== "+title+" ===") + "\n" + t.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
