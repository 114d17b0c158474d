// Package prompt asks the user for style overrides on a terminal.
//
// Every question has a default that an empty answer accepts. When the input
// closes before the questions are done, the caller gets the built-in styles.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-md2docx"
)

// MaxAttempts is how often an invalid answer is asked again.
const MaxAttempts = 3

// Sentinel errors.
var (
	// ErrAborted means the input closed before an answer was read.
	ErrAborted = errors.New("prompt: input closed")
	// ErrTooManyAttempts wraps md2docx.ErrInvalidStyle after MaxAttempts bad answers.
	ErrTooManyAttempts = fmt.Errorf("%w: too many invalid answers", md2docx.ErrInvalidStyle)
)

// Prompter reads answers line by line. A nil reader behaves as closed input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter reading from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{out: out}
	if in != nil {
		p.in = bufio.NewReader(in)
	}
	return p
}

// readLine prints question and returns the trimmed answer. A final line
// without newline is still an answer; only a bare EOF aborts.
func (p *Prompter) readLine(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if p.in == nil {
		return "", ErrAborted
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Ask returns the answer, or def when the answer is empty.
func (p *Prompter) Ask(label, def string) (string, error) {
	answer, err := p.readLine(fmt.Sprintf("  %s (默认: %s): ", label, def))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// AskYesNo accepts y, yes, 是, n, no and 否 in any case. Closed input
// returns def rather than an error.
func (p *Prompter) AskYesNo(question string, def bool) (bool, error) {
	suffix := " [y/N]: "
	if def {
		suffix = " [Y/n]: "
	}
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		answer, err := p.readLine(question + suffix)
		if errors.Is(err, ErrAborted) {
			return def, nil
		}
		if err != nil {
			return def, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes", "是":
			return true, nil
		case "n", "no", "否":
			return false, nil
		}
		fmt.Fprintln(p.out, "请输入 y/yes/是 或 n/no/否")
	}
	return def, nil
}

// AskFloat asks for a number and checks it with valid before accepting it.
func (p *Prompter) AskFloat(label string, def float64, valid func(float64) bool) (float64, error) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		answer, err := p.readLine(fmt.Sprintf("  %s (默认: %s): ", label, strconv.FormatFloat(def, 'f', -1, 64)))
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return def, nil
		}
		v, perr := strconv.ParseFloat(answer, 64)
		if perr == nil && valid(v) {
			return v, nil
		}
		fmt.Fprintf(p.out, "  无效的数值: %q\n", answer)
	}
	return 0, fmt.Errorf("%w: %s", ErrTooManyAttempts, label)
}

// AskAlign asks for one of left, center, right or justify.
func (p *Prompter) AskAlign(label string, def md2docx.Align) (md2docx.Align, error) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		answer, err := p.readLine(fmt.Sprintf("  %s (默认: %s): ", label, def))
		if err != nil {
			return "", err
		}
		if answer == "" {
			return def, nil
		}
		if a, ok := md2docx.ParseAlign(strings.ToLower(answer)); ok {
			return a, nil
		}
		fmt.Fprintf(p.out, "  对齐方式须为 left/center/right/justify: %q\n", answer)
	}
	return "", fmt.Errorf("%w: %s", ErrTooManyAttempts, label)
}
