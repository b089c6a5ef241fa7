package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

const maxLineBytes = 1 << 20

type lineResult struct {
	line string
	err  error
}

// Prompter reads user input one line at a time. Reads happen on a
// background goroutine so a blocked read can be abandoned through ctx.
type Prompter struct {
	in  io.Reader
	out io.Writer

	once  sync.Once
	lines chan lineResult
	err   error // sticky once the reader ends
}

// NewPrompter writes prompts to out and reads answers from in.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    in,
		out:   out,
		lines: make(chan lineResult, 1),
	}
}

func (p *Prompter) start() {
	go func() {
		sc := bufio.NewScanner(p.in)
		sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
		for sc.Scan() {
			p.lines <- lineResult{line: strings.TrimRight(sc.Text(), "\r")}
		}
		err := sc.Err()
		if err == nil {
			err = io.EOF
		}
		p.lines <- lineResult{err: err}
	}()
}

// ReadLine prints prompt and waits for a line. It returns io.EOF once the
// input is exhausted and ctx.Err() when ctx ends first.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	p.once.Do(p.start)
	if p.err != nil {
		return "", p.err
	}
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-p.lines:
		if r.err != nil {
			p.err = r.err
			return "", r.err
		}
		return r.line, nil
	}
}

// Pause waits for the user to press Enter.
func (p *Prompter) Pause(ctx context.Context, prompt string) error {
	_, err := p.ReadLine(ctx, prompt)
	return err
}
