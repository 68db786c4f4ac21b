package configstore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/nomoos/prismq-idea/logger"
)

// WithInput overrides the reader answers are read from. Defaults to
// os.Stdin.
func WithInput(r io.Reader) Option {
	return func(s *Store) { s.input = r }
}

// WithOutput overrides the writer prompts are printed to. Defaults to
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Store) { s.output = w }
}

// WithInteractive forces interactive mode on or off instead of
// detecting a terminal on stdin.
func WithInteractive(interactive bool) Option {
	return func(s *Store) { s.interactive = &interactive }
}

// PromptIfMissing returns the stored value for key if present.
// Otherwise, when running attached to a terminal, it prompts for a
// value, stores the answer (or fallback when the answer is empty), and
// returns it. In non-interactive runs the fallback is stored and
// returned without prompting; with no fallback it warns and returns "".
func (s *Store) PromptIfMissing(key, prompt, fallback string) (string, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}

	if !s.isInteractive() {
		if fallback == "" {
			s.log.Warn("configuration key not set and input is not interactive",
				logger.String("key", key),
			)
			return "", nil
		}
		if err := s.Set(key, fallback); err != nil {
			return "", err
		}
		return fallback, nil
	}

	if _, err := fmt.Fprintf(s.output, "%s: ", prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	answer, err := readLine(s.input)
	if err != nil {
		return "", fmt.Errorf("read answer: %w", err)
	}
	if answer == "" {
		answer = fallback
	}
	if answer == "" {
		return "", nil
	}
	if err := s.Set(key, answer); err != nil {
		return "", err
	}
	return answer, nil
}

// isInteractive reports whether prompting is possible: the forced
// setting when given, otherwise a terminal check on stdin.
func (s *Store) isInteractive() bool {
	if s.interactive != nil {
		return *s.interactive
	}
	return isatty.IsTerminal(os.Stdin.Fd())
}

// readLine reads one line, tolerating a final line without a newline.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
