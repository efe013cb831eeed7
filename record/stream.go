package record

import (
	"bufio"
	"fmt"
	"io"
)

// maxLine bounds a single stream line. Records grow with path length;
// even a 200-face path stays far below this.
const maxLine = 8 << 20

// EachLine streams r line by line, invoking fn with the 1-based line
// number and the line bytes (newline stripped). Blank lines are skipped.
// The byte slice is only valid during the call. An error from fn aborts
// the stream and is returned as-is.
func EachLine(r io.Reader, fn func(lineNum int, line []byte) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), maxLine)

	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := fn(lineNum, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("record: read line %d: %w", lineNum+1, err)
	}

	return nil
}
