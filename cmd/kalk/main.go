package main

// kalk evaluates arithmetic expressions from the command line.

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/MikMuellerDev/kalk/internal/kalk"
	"github.com/MikMuellerDev/kalk/internal/logger"
)

// Exit statuses follow sysexits.h
const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitNoInput  = 66
	exitSoftware = 70
	exitIOErr    = 74
)

type options struct {
	Expression  []string `arg:"" optional:"" sep:"none" name:"expression" help:"Arithmetic expression to evaluate."`
	File        string   `short:"f" type:"path" placeholder:"FILE" help:"Evaluate every non-blank line of FILE."`
	Interactive bool     `short:"i" help:"Read expressions from standard input, one per line."`
	Tree        bool     `env:"KALK_TREE" help:"Also print the parsed expression tree."`
	Color       string   `enum:"auto,always,never" default:"auto" env:"KALK_COLOR" help:"When to color the output: auto, always or never."`
	LogLevel    string   `enum:"debug,info,warn,warning,error,none" default:"none" env:"KALK_LOG_LEVEL" help:"Log level for diagnostics on stderr."`
	Workers     int      `short:"j" default:"4" env:"KALK_WORKERS" help:"Number of expressions evaluated in parallel with --file."`
}

type styles struct {
	input  lipgloss.Style
	result lipgloss.Style
}

func newStyles(w io.Writer, color string, isTTY bool) styles {
	r := lipgloss.NewRenderer(w)
	switch {
	case color == "always":
		r.SetColorProfile(termenv.ANSI)
	case color == "never" || !isTTY:
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		// the input is echoed verbatim, tabs included
		input:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("8")).TabWidth(lipgloss.NoTabConversion),
		result: r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	status := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, isTTY)
	stop()
	os.Exit(status)
}

func run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout, stderr io.Writer,
	isTTY bool,
) int {
	var opts options
	exited := -1
	parser, err := kong.New(
		&opts,
		kong.Name("kalk"),
		kong.Description("Evaluate an arithmetic expression with +, -, *, / and parentheses."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(status int) { exited = status }),
	)
	if err != nil {
		panic(err)
	}
	_, err = parser.Parse(expressionArgs(args))
	if exited >= 0 {
		// --help
		return exited
	}
	if err != nil {
		return usageError(stderr, err.Error())
	}

	modes := 0
	if len(opts.Expression) > 0 {
		modes++
	}
	if opts.File != "" {
		modes++
	}
	if opts.Interactive {
		modes++
	}
	switch {
	case modes > 1:
		return usageError(stderr, "an expression, --file and --interactive are mutually exclusive")
	case modes == 0 || (len(opts.Expression) > 0 && len(opts.Expression) != 1):
		return usageError(stderr, fmt.Sprintf(
			"expected exactly 1 argument but %d were given", len(opts.Expression)))
	}

	log := logger.New(stderr, opts.LogLevel)
	calc := kalk.New(log)
	st := newStyles(stdout, opts.Color, isTTY)
	reporter := kalk.NewSimpleReporter(stderr)

	switch {
	case opts.File != "":
		return runFile(ctx, opts, calc, st, reporter, stdout, stderr)
	case opts.Interactive:
		return runPrompt(stdin, opts, calc, st, reporter, stdout, stderr)
	default:
		runOne(opts.Expression[0], opts, calc, st, reporter, stdout)
		return exitStatus(reporter)
	}
}

// expressionArgs puts "--" in front of a last argument that reads as an
// expression with a leading sign, such as "-5 + 3" or "-(1)", so kong takes it
// as the positional instead of a flag.
func expressionArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	last := args[len(args)-1]
	if len(last) < 2 || last[0] != '-' {
		return args
	}
	switch c := last[1]; {
	case c >= '0' && c <= '9', c == '(', c == '.', c == ' ', c == '\t', c == '+':
	case c == '-' && len(last) > 2 && !isFlagRune(last[2]):
	default:
		return args
	}
	for _, arg := range args[:len(args)-1] {
		if arg == "--" {
			return args
		}
	}
	out := make([]string, 0, len(args)+1)
	out = append(out, args[:len(args)-1]...)
	return append(out, "--", last)
}

func isFlagRune(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// runOne evaluates a single expression, printing the result or reporting the
// failure
func runOne(
	input string,
	opts options,
	calc *kalk.Calculator,
	st styles,
	reporter kalk.Reporter,
	stdout io.Writer,
) {
	expr, value, err := calc.EvaluateTree(input)
	if err != nil {
		reporter.Report(computeError(input, err))
		return
	}
	printResult(stdout, st, input, value)
	if opts.Tree {
		printer := kalk.TreePrinter{}
		fmt.Fprintf(stdout, " %s\n", printer.Print(expr))
	}
}

// Run the interpreter in REPL mode
func runPrompt(
	stdin io.Reader,
	opts options,
	calc *kalk.Calculator,
	st styles,
	reporter kalk.Reporter,
	stdout, stderr io.Writer,
) int {
	s := bufio.NewScanner(stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Fprint(stdout, "> ")
		if !s.Scan() {
			break
		}
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		runOne(line, opts, calc, st, reporter, stdout)
		reporter.Reset()
	}
	fmt.Fprintln(stdout)
	if err := s.Err(); err != nil {
		fmt.Fprintf(stderr, "kalk: %v\n", err)
		return exitIOErr
	}
	return exitOK
}

// Evaluate every line of a file in parallel, printing results in file order
func runFile(
	ctx context.Context,
	opts options,
	calc *kalk.Calculator,
	st styles,
	reporter kalk.Reporter,
	stdout, stderr io.Writer,
) int {
	content, err := os.ReadFile(opts.File)
	if err != nil {
		fmt.Fprintf(stderr, "kalk: %v\n", err)
		return exitNoInput
	}

	var inputs []string
	for _, line := range strings.Split(string(content), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			inputs = append(inputs, line)
		}
	}

	outcomes, err := calc.EvaluateAll(ctx, inputs, opts.Workers)
	if err != nil {
		fmt.Fprintf(stderr, "kalk: %v\n", err)
		return exitSoftware
	}
	for _, o := range outcomes {
		if o.Err != nil {
			reporter.Report(computeError(o.Input, o.Err))
			continue
		}
		printResult(stdout, st, o.Input, o.Value)
	}
	return exitStatus(reporter)
}

func printResult(w io.Writer, st styles, input string, value float64) {
	fmt.Fprintf(
		w,
		" %s = %s\n",
		st.input.Render(input),
		st.result.Render(kalk.FormatResult(value)),
	)
}

func computeError(input string, err error) error {
	return fmt.Errorf("Could not compute `%s`: Error: %w", input, err)
}

func exitStatus(reporter kalk.Reporter) int {
	switch {
	case reporter.HadFatalError():
		return exitSoftware
	case reporter.HadError():
		return exitDataErr
	}
	return exitOK
}

func usageError(stderr io.Writer, msg string) int {
	fmt.Fprintf(stderr, "kalk: error: %s\n", msg)
	fmt.Fprintln(stderr, "Usage: kalk [flags] <expression>")
	return exitUsage
}
