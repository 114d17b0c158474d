package md2docx

// Kind identifies the category of a parsed element.
// The set is closed: every switch over Kind covers all values below.
type Kind int

// Element kinds in document order of precedence.
const (
	KindEmpty Kind = iota
	KindH1
	KindH2
	KindH3
	KindParagraph
	KindListItem
)

// StyleKinds lists the kinds that carry a style, in rendering order.
var StyleKinds = []Kind{KindH1, KindH2, KindH3, KindParagraph, KindListItem}

// String returns the style key of the kind ("h1", "p", "li", ...).
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindH1:
		return "h1"
	case KindH2:
		return "h2"
	case KindH3:
		return "h3"
	case KindParagraph:
		return "p"
	case KindListItem:
		return "li"
	}
	return "unknown"
}

// IsHeading reports whether the kind is h1, h2 or h3.
func (k Kind) IsHeading() bool {
	return k == KindH1 || k == KindH2 || k == KindH3
}

// ParseKind maps a style key back to its Kind.
// Only keys of styled kinds are accepted.
func ParseKind(key string) (Kind, bool) {
	for _, k := range StyleKinds {
		if k.String() == key {
			return k, true
		}
	}
	return KindEmpty, false
}

// ListKind distinguishes bulleted from numbered list items.
type ListKind int

// List kinds.
const (
	Unordered ListKind = iota
	Ordered
)

// tag returns the HTML container element for the list kind.
func (l ListKind) tag() string {
	if l == Ordered {
		return "ol"
	}
	return "ul"
}

// String returns "unordered" or "ordered".
func (l ListKind) String() string {
	if l == Ordered {
		return "ordered"
	}
	return "unordered"
}

// Element is one parsed line of the source document.
type Element struct {
	Kind     Kind
	Text     string   // raw text, inline markers kept; empty for KindEmpty
	ListKind ListKind // only meaningful for KindListItem
	Number   int      // source number of an ordered item, 0 if unknown
}
