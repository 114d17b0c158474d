package charset

import (
	"errors"
	"testing"
)

// Notes:
// - Fixtures are byte literals so the test file itself stays UTF-8.
// - "公文" in GBK/GB18030 is B9 AB CE C4; those bytes are invalid UTF-8,
//   which is what Detect relies on.

var (
	gbkGongwen  = []byte{0xB9, 0xAB, 0xCE, 0xC4}
	utf8Gongwen = []byte("公文")
)

// ---------------------------------------------------------------------------
// TestNormalize - Encoding Names
// ---------------------------------------------------------------------------

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"empty means utf-8", "", UTF8, nil},
		{"utf-8", "utf-8", UTF8, nil},
		{"utf8 alias", "UTF8", UTF8, nil},
		{"gb18030", "GB18030", GB18030, nil},
		{"gbk", "gbk", GBK, nil},
		{"gb2312 alias", "gb2312", GBK, nil},
		{"cp936 alias", "cp936", GBK, nil},
		{"auto", " auto ", Auto, nil},
		{"unknown", "latin1", "", ErrUnknownEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Normalize(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDecode - Decoding
// ---------------------------------------------------------------------------

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		encoding string
		want     string
		wantErr  error
	}{
		{"utf-8 passthrough", utf8Gongwen, "", "公文", nil},
		{"utf-8 BOM dropped", append([]byte{0xEF, 0xBB, 0xBF}, utf8Gongwen...), UTF8, "公文", nil},
		{"gbk", gbkGongwen, GBK, "公文", nil},
		{"gb18030", gbkGongwen, GB18030, "公文", nil},
		{"auto detects utf-8", utf8Gongwen, Auto, "公文", nil},
		{"auto detects gb18030", gbkGongwen, Auto, "公文", nil},
		{"auto with BOM", append([]byte{0xEF, 0xBB, 0xBF}, utf8Gongwen...), Auto, "公文", nil},
		{"invalid utf-8", gbkGongwen, UTF8, "", ErrDecode},
		{"unknown encoding", utf8Gongwen, "ebcdic", "", ErrUnknownEncoding},
		{"empty input", nil, "", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(tt.data, tt.encoding)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDetect - Sniffing
// ---------------------------------------------------------------------------

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"ascii", []byte("# Title"), UTF8},
		{"utf-8 chinese", utf8Gongwen, UTF8},
		{"gbk chinese", gbkGongwen, GB18030},
		{"empty", nil, UTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Detect(tt.data); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}
