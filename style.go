package md2docx

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Align is the horizontal alignment of a paragraph.
type Align string

// Paragraph alignments.
const (
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "justify"
)

// Aligns lists the accepted alignments.
var Aligns = []Align{AlignLeft, AlignCenter, AlignRight, AlignJustify}

// ParseAlign returns the Align named by s, if any.
func ParseAlign(s string) (Align, bool) {
	for _, a := range Aligns {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// Style value bounds in points (sizes, spacing) or characters (indent).
const (
	MaxFontSize    = 200.0
	MaxLineSpacing = 500.0
	MaxSpacing     = 500.0
	MaxIndent      = 20.0
)

// PageMarginPoints is the fixed page margin (2 cm) on all four sides.
const PageMarginPoints = 56.7

// FontSpec describes the font used by an element kind.
type FontSpec struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"` // points
}

// Validate checks the font family is set and the size is within bounds.
func (f FontSpec) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Family, validation.Required),
		validation.Field(&f.Size, validation.Required, validation.Min(0.0).Exclusive(), validation.Max(MaxFontSize)),
	)
}

// ParagraphSpec describes paragraph-level formatting.
type ParagraphSpec struct {
	LineSpacing     float64 `json:"lineSpacing"` // points
	SpaceBefore     float64 `json:"spaceBefore"` // points
	SpaceAfter      float64 `json:"spaceAfter"`  // points
	Align           Align   `json:"align"`
	FirstLineIndent float64 `json:"firstLineIndent"` // character widths, 0 = none
}

// Validate checks spacing, indent and alignment values.
func (p ParagraphSpec) Validate() error {
	aligns := make([]any, len(Aligns))
	for i, a := range Aligns {
		aligns[i] = a
	}
	return validation.ValidateStruct(&p,
		validation.Field(&p.LineSpacing, validation.Required, validation.Min(0.0).Exclusive(), validation.Max(MaxLineSpacing)),
		validation.Field(&p.SpaceBefore, validation.Min(0.0), validation.Max(MaxSpacing)),
		validation.Field(&p.SpaceAfter, validation.Min(0.0), validation.Max(MaxSpacing)),
		validation.Field(&p.Align, validation.Required, validation.In(aligns...)),
		validation.Field(&p.FirstLineIndent, validation.Min(0.0), validation.Max(MaxIndent)),
	)
}

// ElementStyle is the complete formatting of one element kind.
type ElementStyle struct {
	Name      string        `json:"name"`
	Font      FontSpec      `json:"font"`
	Paragraph ParagraphSpec `json:"paragraph"`
}

// Validate checks the nested font and paragraph specs.
func (e ElementStyle) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Font),
		validation.Field(&e.Paragraph),
	)
}

// StyleSet maps every styled kind to its formatting.
// Build one with DefaultStyles and treat it as read-only afterwards.
type StyleSet map[Kind]ElementStyle

// DefaultStyles returns the built-in official-document styles.
func DefaultStyles() StyleSet {
	return StyleSet{
		KindH1: {
			Name: "一级标题",
			Font: FontSpec{Family: "黑体", Size: 16},
			Paragraph: ParagraphSpec{
				LineSpacing: 30,
				SpaceBefore: 0,
				SpaceAfter:  12,
				Align:       AlignCenter,
			},
		},
		KindH2: {
			Name: "二级标题",
			Font: FontSpec{Family: "黑体", Size: 16},
			Paragraph: ParagraphSpec{
				LineSpacing: 30,
				SpaceBefore: 12,
				SpaceAfter:  12,
				Align:       AlignLeft,
			},
		},
		KindH3: {
			Name: "三级标题",
			Font: FontSpec{Family: "黑体", Size: 16},
			Paragraph: ParagraphSpec{
				LineSpacing: 28,
				SpaceBefore: 6,
				SpaceAfter:  6,
				Align:       AlignLeft,
			},
		},
		KindParagraph: {
			Name: "正文",
			Font: FontSpec{Family: "仿宋_GB2312", Size: 16},
			Paragraph: ParagraphSpec{
				LineSpacing:     28,
				Align:           AlignJustify,
				FirstLineIndent: 2,
			},
		},
		KindListItem: {
			Name: "列表",
			Font: FontSpec{Family: "仿宋_GB2312", Size: 16},
			Paragraph: ParagraphSpec{
				LineSpacing: 28,
				Align:       AlignJustify,
			},
		},
	}
}

// DefaultStyle returns the built-in style of a single kind.
func DefaultStyle(k Kind) (ElementStyle, bool) {
	s, ok := DefaultStyles()[k]
	return s, ok
}

// Clone returns an independent copy of the set.
func (s StyleSet) Clone() StyleSet {
	out := make(StyleSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Complete returns ErrMissingStyle naming the first styled kind absent from s.
func (s StyleSet) Complete() error {
	for _, k := range StyleKinds {
		if _, ok := s[k]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingStyle, k)
		}
	}
	return nil
}

// Validate checks the set is complete and every style is within bounds.
// Errors wrap ErrMissingStyle or ErrInvalidStyle and name the kind.
func (s StyleSet) Validate() error {
	if err := s.Complete(); err != nil {
		return err
	}
	for _, k := range StyleKinds {
		if err := s[k].Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidStyle, k, err)
		}
	}
	return nil
}
