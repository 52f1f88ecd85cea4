// Package console wraps interactive terminal I/O for the demos.
//
// Two read styles are offered, mirroring how a terminal program usually
// mixes them:
//
//   - ReadLine is LINE-oriented. It consumes everything up to and
//     including the next '\n'.
//   - ReadInt / ReadFloat are TOKEN-oriented. They skip leading
//     whitespace, read one run of non-space bytes, and leave the byte
//     that ended the token (usually '\n') in the buffer.
//
// Because token reads leave the newline behind, a ReadLine issued right
// after a ReadInt returns "" (the rest of the number's line). Callers
// that need the next full line must call ReadLine twice.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentinel errors. Match them with errors.Is.
var (
	// ErrInvalidNumber is returned when a token cannot be parsed as the
	// requested numeric type.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrLineTooLong is returned when a line is longer than the limit
	// passed to ReadLine.
	ErrLineTooLong = errors.New("line too long")
)

// Console reads answers from in and writes prompts to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Console over the given reader and prompt writer.
// If in is already a *bufio.Reader it is used as-is so no buffered
// input is lost between callers.
func New(in io.Reader, out io.Writer) *Console {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Console{in: br, out: out}
}

// Prompt writes text exactly as given (no trailing newline).
func (c *Console) Prompt(text string) error {
	if _, err := io.WriteString(c.out, text); err != nil {
		return fmt.Errorf("console.Prompt: write: %w", err)
	}
	return nil
}

// ReadLine returns the next line without its line terminator ("\n" or
// "\r\n"). A final line with no newline is accepted.
//
// limit counts BYTES, the way a fixed char buffer does: 30 'é' are 60
// bytes. If the line is longer than limit the whole line is still
// consumed and ErrLineTooLong is returned along with the longest prefix
// of at most limit bytes that does not split a UTF-8 sequence.
// limit <= 0 means no limit.
func (c *Console) ReadLine(limit int) (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("console.ReadLine: read: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if limit > 0 && len(line) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		return line[:cut], ErrLineTooLong
	}
	return line, nil
}

// ReadInt reads the next whitespace-delimited token as a base-10 int.
func (c *Console) ReadInt() (int, error) {
	tok, err := c.token()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("console.ReadInt: %q: %w", tok, ErrInvalidNumber)
	}
	return n, nil
}

// ReadFloat reads the next whitespace-delimited token as a float64.
func (c *Console) ReadFloat() (float64, error) {
	tok, err := c.token()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("console.ReadFloat: %q: %w", tok, ErrInvalidNumber)
	}
	return f, nil
}

// token skips leading whitespace and returns the following run of
// non-space runes. The delimiter that ends the run is unread.
func (c *Console) token() (string, error) {
	var sb strings.Builder

	for {
		r, _, err := c.in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if sb.Len() == 0 {
					return "", io.EOF
				}
				return sb.String(), nil
			}
			return "", fmt.Errorf("console.token: read: %w", err)
		}

		if unicode.IsSpace(r) {
			if sb.Len() == 0 {
				continue // still skipping leading whitespace
			}
			// Leave the delimiter for the next read.
			if err := c.in.UnreadRune(); err != nil {
				return "", fmt.Errorf("console.token: unread: %w", err)
			}
			return sb.String(), nil
		}

		sb.WriteRune(r)
	}
}
