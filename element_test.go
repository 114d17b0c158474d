package md2docx

import "testing"

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindEmpty, "empty"},
		{KindH1, "h1"},
		{KindH2, "h2"},
		{KindH3, "h3"},
		{KindParagraph, "p"},
		{KindListItem, "li"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestKind_IsHeading(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{KindH1, KindH2, KindH3} {
		if !k.IsHeading() {
			t.Errorf("%s.IsHeading() = false", k)
		}
	}
	for _, k := range []Kind{KindEmpty, KindParagraph, KindListItem} {
		if k.IsHeading() {
			t.Errorf("%s.IsHeading() = true", k)
		}
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range StyleKinds {
		if got, ok := ParseKind(k.String()); !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k, got, ok)
		}
	}
	for _, key := range []string{"empty", "h4", "", "P"} {
		if _, ok := ParseKind(key); ok {
			t.Errorf("ParseKind(%q) ok = true, want false", key)
		}
	}
}

func TestListKind(t *testing.T) {
	t.Parallel()

	if Unordered.tag() != "ul" || Ordered.tag() != "ol" {
		t.Errorf("tags = %q, %q", Unordered.tag(), Ordered.tag())
	}
	if Unordered.String() != "unordered" || Ordered.String() != "ordered" {
		t.Errorf("strings = %q, %q", Unordered, Ordered)
	}
}
