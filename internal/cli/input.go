package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads interactive input line by line. Commands receive it
// through the App so tests can script the whole dialog.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a new prompter over the given reader and writer
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Prompt prints a label and reads one line of input, trimmed of
// surrounding whitespace. Reaching end of input returns io.EOF.
func (p *Prompter) Prompt(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
