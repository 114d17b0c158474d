// Package charset decodes source documents into UTF-8 text.
//
// Official documents authored on Chinese Windows systems are frequently saved
// as GBK or GB18030, so the decoder accepts those alongside UTF-8 and offers
// an "auto" mode that sniffs the input.
package charset

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names accepted by Decode.
const (
	Auto    = "auto"
	UTF8    = "utf-8"
	GB18030 = "gb18030"
	GBK     = "gbk"
)

// Names lists the accepted encoding names, in help-text order.
var Names = []string{UTF8, GB18030, GBK, Auto}

// ErrUnknownEncoding is returned for names outside Names.
var ErrUnknownEncoding = errors.New("unknown encoding")

// ErrDecode is returned when the input is not valid in the chosen encoding.
var ErrDecode = errors.New("decoding input")

// utf8BOM prefixes UTF-8 files written by Notepad and WPS.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Normalize lowercases name and maps aliases to their canonical name.
// The empty string means UTF-8.
func Normalize(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "gb18030":
		return GB18030, nil
	case "gbk", "gb2312", "cp936":
		return GBK, nil
	case "auto":
		return Auto, nil
	}
	return "", fmt.Errorf("%w: %q (accepted: %s)", ErrUnknownEncoding, name, strings.Join(Names, ", "))
}

// Decode converts data from the named encoding to a UTF-8 string.
// A leading UTF-8 byte order mark is dropped in every mode.
func Decode(data []byte, name string) (string, error) {
	canonical, err := Normalize(name)
	if err != nil {
		return "", err
	}

	if canonical == Auto {
		canonical = Detect(data)
	}

	switch canonical {
	case UTF8:
		data = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: input is not valid UTF-8 (try --encoding auto)", ErrDecode)
		}
		return string(data), nil
	case GB18030:
		return decodeWith(simplifiedchinese.GB18030, data)
	default:
		return decodeWith(simplifiedchinese.GBK, data)
	}
}

// Detect guesses the encoding of data: UTF-8 when it carries a BOM or is
// valid UTF-8, GB18030 otherwise. GB18030 is a superset of GBK and GB2312.
func Detect(data []byte) string {
	if bytes.HasPrefix(data, utf8BOM) || utf8.Valid(data) {
		return UTF8
	}
	return GB18030
}

func decodeWith(enc encoding.Encoding, data []byte) (string, error) {
	// BOMOverride keeps a stray UTF-8 BOM from being read as GBK bytes.
	dec := unicode.BOMOverride(enc.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return strings.TrimPrefix(string(out), "\uFEFF"), nil
}
