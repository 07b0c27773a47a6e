package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/rolo/internal/book"
	"github.com/smileynet/rolo/internal/command"
	"github.com/smileynet/rolo/internal/config"
	"github.com/smileynet/rolo/internal/logging"
	"github.com/smileynet/rolo/internal/repl"
	"github.com/smileynet/rolo/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolo.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Assist  AssistCmd        `cmd:"" default:"1" help:"Start the interactive assistant session."`
	Exec    ExecCmd          `cmd:"" help:"Dispatch a single assistant command and exit."`
}

// AssistCmd runs the interactive assistant: a Bubble Tea session on a TTY,
// a plain line-mode session otherwise.
type AssistCmd struct {
	Plain    bool   `help:"Force plain line mode even if stdout is a TTY."`
	LogFile  string `help:"Write a JSON debug log to this file."`
	LogLevel string `help:"Log level for --log-file (debug, info, warn, error)."`
}

// Run executes the assist command.
func (a *AssistCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("assist: %w", err)
	}

	// Apply CLI flag overrides.
	if a.Plain {
		cfg.UI.Plain = true
	}
	if a.LogFile != "" {
		cfg.Log.File = a.LogFile
	}
	if a.LogLevel != "" {
		cfg.Log.Level = a.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("assist: %w", err)
	}

	log, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("assist: %w", err)
	}
	defer func() { _ = log.Sync() }()

	dispatcher := command.New(book.New(), command.WithLogger(log))

	if cfg.UI.Plain || !isTTY(os.Stdout) {
		session := repl.New(dispatcher,
			repl.WithPrompt(cfg.REPL.Prompt),
			repl.WithGreeting(cfg.REPL.Greeting),
		)
		return session.Run()
	}

	return tui.Run(dispatcher,
		tui.WithGreeting(cfg.REPL.Greeting),
		tui.WithPrompt(cfg.REPL.Prompt),
	)
}

// ExecCmd dispatches one assistant command against a fresh book and prints
// the reply. Meant for scripting and quick checks; the book is empty each
// run, so lookups only make sense after adds in the same line-language.
type ExecCmd struct {
	Tokens []string `arg:"" name:"command" help:"Command tokens, e.g. add John 1234567890."`
}

// Run executes the exec command.
func (e *ExecCmd) Run() error {
	dispatcher := command.New(book.New())
	return e.run(os.Stdout, dispatcher)
}

// run dispatches with the given dispatcher, enabling testable wiring.
func (e *ExecCmd) run(w io.Writer, dispatcher *command.Dispatcher) error {
	res := dispatcher.Dispatch(strings.Join(e.Tokens, " "))
	_, _ = fmt.Fprintln(w, res.Output)
	return nil
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolo/config.yaml"),
		".rolo.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Exit codes.
const (
	exitSuccess = 0
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
