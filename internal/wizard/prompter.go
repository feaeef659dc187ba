package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads answers from a line-oriented input stream and writes prompts
// to an output stream. Both are injected so the full interactive flow can be
// driven from tests with scripted input.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter wraps the given reader and writer.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), out: w}
}

// Select presents a numbered menu and returns the selected index. Invalid or
// out-of-range input re-prompts until a valid choice arrives; only a read
// failure (e.g. closed stdin) returns an error.
func (p *Prompter) Select(prompt string, items []string) (int, error) {
	return p.SelectDefault(prompt, items, -1)
}

// SelectDefault behaves like Select but accepts empty input as the given
// default index when defaultIdx is in range. With a negative defaultIdx,
// empty input is invalid and re-prompts.
func (p *Prompter) SelectDefault(prompt string, items []string, defaultIdx int) (int, error) {
	hasDefault := defaultIdx >= 0 && defaultIdx < len(items)

	for {
		fmt.Fprintf(p.out, "\n%s\n", prompt)
		for i, item := range items {
			fmt.Fprintf(p.out, "  %d) %s\n", i+1, item)
		}
		if hasDefault {
			fmt.Fprintf(p.out, "Enter number [1-%d] (default %d): ", len(items), defaultIdx+1)
		} else {
			fmt.Fprintf(p.out, "Enter number [1-%d]: ", len(items))
		}

		line, err := p.reader.ReadString('\n')
		if err != nil && line == "" {
			return 0, fmt.Errorf("reading selection: %w", err)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" && hasDefault {
			return defaultIdx, nil
		}

		num, convErr := strconv.Atoi(trimmed)
		if convErr == nil && num >= 1 && num <= len(items) {
			return num - 1, nil
		}

		fmt.Fprintf(p.out, "Invalid choice %q: enter a number between 1 and %d.\n",
			trimmed, len(items))
		if err != nil {
			return 0, fmt.Errorf("reading selection: %w", err)
		}
	}
}

// Input prints the prompt and returns one trimmed line. Empty input is
// allowed.
func (p *Prompter) Input(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// InputDefault behaves like Input but substitutes def when the answer is
// empty.
func (p *Prompter) InputDefault(prompt, def string) (string, error) {
	display := prompt
	if def != "" {
		display = fmt.Sprintf("%s [%s]", prompt, def)
	}
	answer, err := p.Input(display)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question. Only "y" or "Y" is affirmative; anything
// else, including empty input, answers no.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
