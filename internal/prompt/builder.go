package prompt

import (
	"errors"
	"fmt"

	"github.com/alnah/go-md2docx"
)

func positive(maxValue float64) func(float64) bool {
	return func(v float64) bool { return v > 0 && v <= maxValue }
}

func nonNegative(maxValue float64) func(float64) bool {
	return func(v float64) bool { return v >= 0 && v <= maxValue }
}

// section lists the questions asked for one kind.
type section struct {
	kind   md2docx.Kind
	title  string
	indent bool // ask for first-line indent instead of space after
}

// sections are asked in order; h3 and li always keep base values.
var sections = []section{
	{kind: md2docx.KindH1, title: "一级标题"},
	{kind: md2docx.KindH2, title: "二级标题"},
	{kind: md2docx.KindParagraph, title: "正文", indent: true},
}

// BuildStyles asks for font and paragraph values of h1, h2 and p, using base
// for defaults and for the kinds not asked about. base is the run's default
// set: the built-in styles, or those styles with the config file applied.
// If the input closes midway the answers are discarded and a copy of base
// is returned.
func (p *Prompter) BuildStyles(base md2docx.StyleSet) (md2docx.StyleSet, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}

	fmt.Fprintln(p.out, "\n=== 样式配置 ===")
	fmt.Fprintln(p.out, "请输入各元素的样式参数（直接回车使用默认值）")

	out := base.Clone()
	for _, sec := range sections {
		st, err := p.askSection(sec, base[sec.kind])
		if errors.Is(err, ErrAborted) {
			return base.Clone(), nil
		}
		if err != nil {
			return nil, err
		}
		out[sec.kind] = st
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Prompter) askSection(sec section, st md2docx.ElementStyle) (md2docx.ElementStyle, error) {
	fmt.Fprintf(p.out, "\n【%s】\n", sec.title)

	var err error
	if st.Font.Family, err = p.Ask("字体", st.Font.Family); err != nil {
		return st, err
	}
	if st.Font.Size, err = p.AskFloat("字号/磅", st.Font.Size, positive(md2docx.MaxFontSize)); err != nil {
		return st, err
	}
	if st.Paragraph.Align, err = p.AskAlign("对齐", st.Paragraph.Align); err != nil {
		return st, err
	}
	if st.Paragraph.LineSpacing, err = p.AskFloat("行距/磅", st.Paragraph.LineSpacing, positive(md2docx.MaxLineSpacing)); err != nil {
		return st, err
	}
	if sec.indent {
		st.Paragraph.FirstLineIndent, err = p.AskFloat("首行缩进/字符", st.Paragraph.FirstLineIndent, nonNegative(md2docx.MaxIndent))
	} else {
		st.Paragraph.SpaceAfter, err = p.AskFloat("段后/磅", st.Paragraph.SpaceAfter, nonNegative(md2docx.MaxSpacing))
	}
	return st, err
}
