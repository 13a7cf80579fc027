package cmd

import (
	"bufio"
	"context"
	"io"
	"strings"
)

type lineResult struct {
	line string
	err  error
}

// lineReader reads input on its own goroutine so a prompt can give up on
// cancellation while the underlying read is still blocked.
type lineReader struct {
	lines <-chan lineResult
}

func newLineReader(in io.Reader) *lineReader {
	lines := make(chan lineResult)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- lineResult{line: strings.TrimRight(scanner.Text(), "\r")}
		}
		if err := scanner.Err(); err != nil {
			lines <- lineResult{err: err}
		}
	}()

	return &lineReader{lines: lines}
}

// Next returns the next line, io.EOF once input is exhausted, or ctx.Err().
func (r *lineReader) Next(ctx context.Context) (string, error) {
	select {
	case res, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
