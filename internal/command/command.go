// Package command parses assistant command lines and dispatches them to
// handlers over a contact book. Handler failures never escape: they are
// translated to the user-facing reply strings at the dispatch boundary.
package command

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/smileynet/rolo/internal/book"
)

// Sentinel errors raised by handlers and translated by Dispatch.
var (
	// ErrBadInput marks missing or malformed name/phone/birthday input.
	ErrBadInput = errors.New("command: need name and phone")
	// ErrBadFormat marks a wrong argument count for a lookup command.
	ErrBadFormat = errors.New("command: invalid command format")
)

// NotFoundError reports a lookup for a contact that is not in the book.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command: contact %q not found", e.Name)
}

// Result is the outcome of dispatching one command line.
type Result struct {
	Output string // Reply text to show the user.
	Quit   bool   // True when the session should end.
}

// Dispatcher routes parsed command lines to handlers over a single Book.
type Dispatcher struct {
	book *book.Book
	log  *zap.Logger
	now  func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used to trace dispatched commands.
func WithLogger(log *zap.Logger) Option {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// WithClock sets the time source for the birthdays command.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// New creates a Dispatcher over b.
func New(b *book.Book, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		book: b,
		log:  zap.NewNop(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch parses line, runs the matching handler, and returns the reply.
// Unknown commands and handler failures become reply text, never errors.
func (d *Dispatcher) Dispatch(line string) Result {
	cmd, args := Parse(line)
	d.log.Debug("dispatch", zap.String("command", cmd), zap.Int("args", len(args)))

	var (
		out string
		err error
	)
	switch cmd {
	case "hello":
		out = "How can I help you?"
	case "add":
		out, err = d.addContact(args)
	case "change":
		out, err = d.changeContact(args)
	case "phone":
		out, err = d.showPhone(args)
	case "all":
		out = d.showAll()
	case "add-birthday":
		out, err = d.addBirthday(args)
	case "show-birthday":
		out, err = d.showBirthday(args)
	case "birthdays":
		out = d.birthdays()
	case "close", "exit":
		return Result{Output: "Good bye!", Quit: true}
	default:
		out = "Invalid command."
	}

	if err != nil {
		d.log.Debug("handler failed", zap.String("command", cmd), zap.Error(err))
		out = translate(err)
	}
	return Result{Output: out}
}

// translate maps a handler error to its user-facing reply string.
func translate(err error) string {
	var nf *NotFoundError
	switch {
	case errors.As(err, &nf):
		return fmt.Sprintf("Contact '%s' not found.", nf.Name)
	case errors.Is(err, ErrBadFormat):
		return "Invalid command format."
	default:
		// Bad arity and every field validation failure read the same to
		// the user.
		return "Give me name and phone please."
	}
}
