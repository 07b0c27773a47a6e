// Package repl runs the plain line-mode assistant session: one prompt,
// one command line, one reply block per iteration.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/smileynet/rolo/internal/command"
)

// Session is a line-oriented read-eval-print session over a Dispatcher.
type Session struct {
	dispatcher *command.Dispatcher
	in         io.Reader
	out        io.Writer
	prompt     string
	greeting   string
}

// Option configures a Session.
type Option func(*Session)

// WithIO sets the session's input and output streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Session) {
		s.in = in
		s.out = out
	}
}

// WithPrompt sets the text printed before each read.
func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// WithGreeting sets the banner printed when the session starts.
func WithGreeting(greeting string) Option {
	return func(s *Session) {
		s.greeting = greeting
	}
}

// New creates a Session over d. By default it reads stdin, writes stdout,
// and uses the stock assistant texts.
func New(d *command.Dispatcher, opts ...Option) *Session {
	s := &Session{
		dispatcher: d,
		in:         os.Stdin,
		out:        os.Stdout,
		prompt:     "Enter a command: ",
		greeting:   "Welcome to the assistant bot!",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops reading command lines until the quit command or end of input.
// Every reply, including error translations, is printed as ordinary output;
// only a failed read returns an error.
func (s *Session) Run() error {
	_, _ = fmt.Fprintln(s.out, s.greeting)

	scanner := bufio.NewScanner(s.in)
	for {
		_, _ = fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("repl: reading input: %w", err)
			}
			// End of input closes the session like a quit command would,
			// minus the farewell.
			return nil
		}

		res := s.dispatcher.Dispatch(scanner.Text())
		_, _ = fmt.Fprintln(s.out, res.Output)
		if res.Quit {
			return nil
		}
	}
}
