// Package console implements the interactive command dispatcher that drives
// the repayment heap from a line-oriented terminal session.
package console

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

type line struct {
	text string
	err  error
}

// lineReader reads lines on a background goroutine so a blocked read can
// be abandoned when the context is cancelled.
type lineReader struct {
	lines chan line
	done  chan struct{}
	once  sync.Once
}

func newLineReader(in io.Reader) *lineReader {
	r := &lineReader{
		lines: make(chan line),
		done:  make(chan struct{}),
	}
	go r.loop(in)
	return r
}

func (r *lineReader) loop(in io.Reader) {
	defer close(r.lines)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case r.lines <- line{text: strings.TrimRight(scanner.Text(), "\r")}:
		case <-r.done:
			return
		}
	}

	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	select {
	case r.lines <- line{err: err}:
	case <-r.done:
	}
}

// ReadLine returns the next line without its terminator.
// Returns io.EOF once input is exhausted, or ctx.Err() if cancelled first.
func (r *lineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// Close stops the reader goroutine at its next line boundary.
func (r *lineReader) Close() {
	r.once.Do(func() { close(r.done) })
}
