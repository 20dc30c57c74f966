package kalk

import (
	"context"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/alecthomas/repr"
)

// Calculator runs the scan, parse and evaluate pipeline. It keeps no state
// between runs, so one Calculator can serve any number of goroutines.
type Calculator struct {
	logger *slog.Logger
}

// New creates a calculator logging to logger. A nil logger discards
// everything.
func New(logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Calculator{logger}
}

// Parse scans and parses input without evaluating it.
func (c *Calculator) Parse(input string) (*Expression, error) {
	scanner := NewScanner([]rune(input))
	tokens, err := scanner.Scan()
	if err != nil {
		c.logger.Debug("scan failed", "input", input, "error", err)
		return nil, err
	}
	c.logger.Debug("scanned", "input", input, "tokens", len(tokens))

	parser := NewParser(tokens)
	expr, err := parser.Parse()
	if err != nil {
		c.logger.Debug("parse failed", "input", input, "error", err)
		return nil, err
	}
	if c.logger.Enabled(context.Background(), slog.LevelDebug) {
		c.logger.Debug("parsed", "input", input, "tree", repr.String(expr))
	}
	return expr, nil
}

// Evaluate computes the value of input. The error is a *ScanError for a
// character that can not start a token and a *ParseError for everything the
// grammar rejects.
func (c *Calculator) Evaluate(input string) (float64, error) {
	_, value, err := c.EvaluateTree(input)
	return value, err
}

// EvaluateTree is Evaluate that also hands back the parsed tree.
func (c *Calculator) EvaluateTree(input string) (*Expression, float64, error) {
	expr, err := c.Parse(input)
	if err != nil {
		return nil, 0, err
	}
	value := NewInterpreter().Run(expr)
	c.logger.Debug("evaluated", "input", input, "value", value)
	return expr, value, nil
}

// FormatResult renders a value with the fewest digits that read back to the
// same float64.
func FormatResult(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
