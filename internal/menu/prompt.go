package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Prompter writes prompts and reads answers one line at a time. Reads honour
// context cancellation even while the underlying reader is blocked.
type Prompter struct {
	out   io.Writer
	lines chan string
	errc  chan error
	stop  chan struct{}
	once  sync.Once
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		out:   out,
		lines: make(chan string),
		errc:  make(chan error, 1),
		stop:  make(chan struct{}),
	}
	go p.scan(in)
	return p
}

func (p *Prompter) scan(in io.Reader) {
	defer close(p.lines)

	// Lines have no length limit; a pasted description can be long.
	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			select {
			case p.lines <- line:
			case <-p.stop:
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				p.errc <- err
			}
			return
		}
	}
}

// Ask prints prompt without a newline and returns the next input line. It
// returns io.EOF once input is exhausted and ctx.Err() when ctx is done.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			select {
			case err := <-p.errc:
				return "", err
			default:
				return "", io.EOF
			}
		}
		return line, nil
	}
}

// Println writes a line of output.
func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes formatted output followed by a newline.
func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format+"\n", a...)
}

// Close releases the reading goroutine.
func (p *Prompter) Close() {
	p.once.Do(func() { close(p.stop) })
}
