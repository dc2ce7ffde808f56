package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"calc-app/prompt"
	"calc-app/session"
	"calc-app/trace"
)

//
// cli/app.go (package cli)
// ------------------------
// This package owns the command line: flags, logging setup, and wiring the
// session to the terminal. Arithmetic lives in `calc`, line input in
// `prompt`, and the loop itself in `session`.
//

// App holds the streams the calculator talks to.
type App struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// New constructs an App bound to the process's standard streams.
func New() *App {
	return &App{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
}

// WithIO replaces the streams; tests use it to script a session.
func (a *App) WithIO(in io.Reader, out, errOut io.Writer) *App {
	a.in, a.out, a.errOut = in, out, errOut
	return a
}

type options struct {
	color    bool
	clear    bool
	logText  bool
	logLevel string
	traceID  string
}

const longHelp = `Calc

Interactive calculator. Enter two numbers and an operator; the result is
printed and you are asked whether to go again.

Operators:
  +  add plus
  -  sub subtract minus
  *  x mul multiply times
  /  div divide

Notes:
  * Invalid input is reported and asked for again.
  * Division by zero is reported and the calculation starts over.
  * The program ends when you answer n/no, or when input is closed.
  * Logs are written to stderr; results to stdout.`

func (a *App) command() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "calc",
		Short:         "Interactive two-operand calculator",
		Long:          longHelp,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := a.configureLogging(cmd.Context(), opts)
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSession(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.color, "color", false, "colorize results and errors")
	f.BoolVar(&opts.clear, "clear", false, "clear the screen before each calculation")

	pf := cmd.PersistentFlags()
	pf.BoolVar(&opts.logText, "logtext", false, "use plain text logs instead of JSON")
	pf.StringVar(&opts.logLevel, "loglevel", "warn", "log level (debug|info|warn|error)")
	pf.StringVar(&opts.traceID, "traceid", "", "external TraceID (overrides auto-generated)")

	return cmd
}

// configureLogging installs the default slog logger and stamps the TraceID
// onto the returned context so every *Context log line carries it.
func (a *App) configureLogging(parent context.Context, opts options) (context.Context, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return parent, fmt.Errorf("invalid --loglevel %q: %w", opts.logLevel, err)
	}

	var handler slog.Handler
	hopts := &slog.HandlerOptions{Level: level}
	if opts.logText {
		handler = slog.NewTextHandler(a.errOut, hopts)
	} else {
		handler = slog.NewJSONHandler(a.errOut, hopts)
	}
	slog.SetDefault(slog.New(trace.NewHandler(handler)))

	ctx, _ := trace.NewWithID(parent, opts.traceID)
	return ctx, nil
}

func (a *App) runSession(ctx context.Context, in io.Reader, out io.Writer, opts options) error {
	printer := NewPrinter(out, opts.color, opts.clear)
	s := session.New(prompt.New(in, out), printer)

	slog.InfoContext(ctx, "session starting", "color", opts.color, "clear", opts.clear)
	if err := s.Run(ctx); err != nil {
		slog.ErrorContext(ctx, "session failed", "error", err)
		return err
	}
	return nil
}

// fillBareTraceID rewrites a --traceid given without a value into
// --traceid=, so a missing value falls back to a generated id instead of
// failing flag parsing.
func fillBareTraceID(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--traceid" && (i+1 == len(args) || strings.HasPrefix(args[i+1], "-")) {
			out = append(out, "--traceid=")
			continue
		}
		out = append(out, a)
	}
	return out
}

// Run executes the calculator with the given command-line args.
// Returns an error for flag problems or fatal input failures, which main() reports.
func (a *App) Run(ctx context.Context, args []string) error {
	cmd := a.command()
	cmd.SetArgs(fillBareTraceID(args))
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)
	return cmd.ExecuteContext(ctx)
}
