package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/alnah/go-md2docx"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

// ---------------------------------------------------------------------------
// TestAsk - Free-text answers
// ---------------------------------------------------------------------------

func TestAsk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"answer", "楷体\n", "楷体", nil},
		{"empty keeps default", "\n", "黑体", nil},
		{"whitespace keeps default", "   \n", "黑体", nil},
		{"last line without newline", "宋体", "宋体", nil},
		{"closed input aborts", "", "", ErrAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, out := newTestPrompter(tt.input)
			got, err := p.Ask("字体", "黑体")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Ask() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "字体 (默认: 黑体): ") {
				t.Errorf("question = %q, want label and default", out.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAskYesNo - Confirmation answers
// ---------------------------------------------------------------------------

func TestAskYesNo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"y", "y\n", false, true},
		{"YES uppercase", "YES\n", false, true},
		{"chinese yes", "是\n", false, true},
		{"n", "n\n", true, false},
		{"no", "no\n", true, false},
		{"chinese no", "否\n", true, false},
		{"empty keeps default true", "\n", true, true},
		{"empty keeps default false", "\n", false, false},
		{"closed input keeps default", "", true, true},
		{"invalid then valid", "maybe\ny\n", false, true},
		{"three invalid keeps default", "a\nb\nc\ny\n", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, _ := newTestPrompter(tt.input)
			got, err := p.AskYesNo("使用默认样式?", tt.def)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("AskYesNo() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("suffix reflects default", func(t *testing.T) {
		t.Parallel()

		p, out := newTestPrompter("\n\n")
		_, _ = p.AskYesNo("q", true)
		_, _ = p.AskYesNo("q", false)
		if !strings.Contains(out.String(), "q [Y/n]: ") || !strings.Contains(out.String(), "q [y/N]: ") {
			t.Errorf("output = %q, want both suffixes", out.String())
		}
	})

	t.Run("nil reader keeps default", func(t *testing.T) {
		t.Parallel()

		p := New(nil, io.Discard)
		got, err := p.AskYesNo("q", true)
		if err != nil || !got {
			t.Errorf("AskYesNo() = %v, %v; want true, nil", got, err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestAskFloat - Numeric answers with bounds
// ---------------------------------------------------------------------------

func TestAskFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr error
	}{
		{"integer", "22\n", 22, nil},
		{"decimal", "10.5\n", 10.5, nil},
		{"empty keeps default", "\n", 16, nil},
		{"retry after text", "big\n18\n", 18, nil},
		{"retry after out of range", "0\n-3\n12\n", 12, nil},
		{"gives up after max attempts", "x\ny\nz\n", 0, md2docx.ErrInvalidStyle},
		{"closed input aborts", "", 0, ErrAborted},
		{"closed after invalid aborts", "x\n", 0, ErrAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, _ := newTestPrompter(tt.input)
			got, err := p.AskFloat("字号/磅", 16, positive(md2docx.MaxFontSize))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("AskFloat() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAskAlign - Alignment answers
// ---------------------------------------------------------------------------

func TestAskAlign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    md2docx.Align
		wantErr error
	}{
		{"center", "center\n", md2docx.AlignCenter, nil},
		{"case insensitive", "Right\n", md2docx.AlignRight, nil},
		{"empty keeps default", "\n", md2docx.AlignJustify, nil},
		{"retry after unknown", "middle\nleft\n", md2docx.AlignLeft, nil},
		{"gives up", "a\nb\nc\n", "", md2docx.ErrInvalidStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, _ := newTestPrompter(tt.input)
			got, err := p.AskAlign("对齐", md2docx.AlignJustify)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("AskAlign() = %q, want %q", got, tt.want)
			}
		})
	}
}
