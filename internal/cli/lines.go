package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// lineReader yields lines of any length from r without their line endings.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// Next returns the next line. ok is false once the input is exhausted;
// a final line without a trailing newline is still returned.
func (l *lineReader) Next() (line string, ok bool, err error) {
	line, err = l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", false, nil
			}
			return strings.TrimRight(line, "\r\n"), true, nil
		}
		return "", false, err
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}

// readUntilBlank collects lines until a blank line follows some text or the
// input ends. Blank lines before any text are skipped.
func readUntilBlank(r io.Reader) ([]string, error) {
	var lines []string
	lr := newLineReader(r)
	for {
		line, ok, err := lr.Next()
		if err != nil || !ok {
			return lines, err
		}
		if line != "" {
			lines = append(lines, line)
			continue
		}
		if len(lines) > 0 {
			return lines, nil
		}
	}
}

// readLines reads a whole UTF-8 text file and splits it into lines. A
// trailing newline does not start an extra line, so an empty file has none.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	for i, line := range lines {
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("decode %s: invalid UTF-8 on line %d", path, i+1)
		}
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}
