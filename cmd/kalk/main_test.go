package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runArgs(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr strings.Builder
	status := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr, false)
	return status, stdout.String(), stderr.String()
}

func TestRunSingleExpression(t *testing.T) {
	testCases := []struct {
		args []string
		out  string
	}{
		{[]string{"2 + 3 * 4"}, " 2 + 3 * 4 = 14\n"},
		{[]string{"(2 + 3) * 4"}, " (2 + 3) * 4 = 20\n"},
		{[]string{"3.14 * 2"}, " 3.14 * 2 = 6.28\n"},
		{[]string{"1 / 0"}, " 1 / 0 = inf\n"},
		{[]string{"--", "-5 + 3"}, " -5 + 3 = -2\n"},
		{[]string{"-5 + 3"}, " -5 + 3 = -2\n"},
		{[]string{"-(2 + 3)"}, " -(2 + 3) = -5\n"},
		{[]string{"--color=never", "-2*3"}, " -2*3 = -6\n"},
		{[]string{"--tree", "1 - 2"}, " 1 - 2 = -1\n (- 1 2)\n"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		status, out, errOut := runArgs(t, "", tc.args...)

		assert.Equal(exitOK, status, tc.args)
		assert.Equal(tc.out, out)
		assert.Empty(errOut)
	}
}

func TestRunArgumentCount(t *testing.T) {
	assert := assert.New(t)

	status, _, errOut := runArgs(t, "")
	assert.Equal(exitUsage, status)
	assert.Contains(errOut, "expected exactly 1 argument but 0 were given")

	status, _, errOut = runArgs(t, "", "1", "2")
	assert.Equal(exitUsage, status)
	assert.Contains(errOut, "expected exactly 1 argument but 2 were given")

	status, _, errOut = runArgs(t, "", "-i", "1")
	assert.Equal(exitUsage, status)
	assert.Contains(errOut, "mutually exclusive")
}

func TestRunReportsErrors(t *testing.T) {
	assert := assert.New(t)

	status, out, errOut := runArgs(t, "", "(1 + 2")
	assert.Equal(exitDataErr, status)
	assert.Empty(out)
	assert.Equal("Could not compute `(1 + 2`: Error: Error at end: Expect ')' after expression.\n", errOut)

	status, out, errOut = runArgs(t, "", "1 + a")
	assert.Equal(exitSoftware, status)
	assert.Empty(out)
	assert.Equal("Could not compute `1 + a`: Error: Syntax error: invalid character: `a` at position 4\n", errOut)
}

func TestRunInteractive(t *testing.T) {
	assert := assert.New(t)

	status, out, errOut := runArgs(t, "1+1\n\n2*\n3\n", "-i")

	assert.Equal(exitOK, status)
	assert.Equal("> "+" 1+1 = 2\n"+"> "+"> "+"> "+" 3 = 3\n"+"> "+"\n", out)
	assert.Contains(errOut, "Could not compute `2*`")
}

func TestRunFile(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "exprs.txt")
	assert.NoError(os.WriteFile(path, []byte("1+1\n\n2*3\r\nx\n"), 0644))

	status, out, errOut := runArgs(t, "", "-f", path, "-j", "2")

	assert.Equal(exitSoftware, status)
	assert.Equal(" 1+1 = 2\n 2*3 = 6\n", out)
	assert.Contains(errOut, "invalid character: `x` at position 0")

	status, _, errOut = runArgs(t, "", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(exitNoInput, status)
	assert.NotEmpty(errOut)
}

func TestRunColor(t *testing.T) {
	_, out, _ := runArgs(t, "", "--color=always", "1+1")
	assert.Contains(t, out, "\x1b[")

	_, out, _ = runArgs(t, "", "--color=never", "1+1")
	assert.Equal(t, " 1+1 = 2\n", out)
}

func TestRunEnvironment(t *testing.T) {
	t.Setenv("KALK_COLOR", "sometimes")
	status, _, _ := runArgs(t, "", "1+1")
	assert.Equal(t, exitUsage, status)

	t.Setenv("KALK_COLOR", "never")
	t.Setenv("KALK_TREE", "true")
	status, out, _ := runArgs(t, "", "2*3")
	assert.Equal(t, exitOK, status)
	assert.Equal(t, " 2*3 = 6\n (* 2 3)\n", out)
}

func TestRunDebugLogging(t *testing.T) {
	status, _, errOut := runArgs(t, "", "--log-level=debug", "1+1")

	assert.Equal(t, exitOK, status)
	assert.Contains(t, errOut, "msg=parsed")
	assert.Contains(t, errOut, "msg=evaluated")
	assert.Contains(t, errOut, "value=2")
}

func TestRunLogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error", "none"} {
		status, out, _ := runArgs(t, "", "--log-level="+level, "1+1")
		assert.Equal(t, exitOK, status, level)
		assert.Equal(t, " 1+1 = 2\n", out, level)
	}
}

func TestRunLeadingSignNeedsNoSeparator(t *testing.T) {
	assert := assert.New(t)

	status, _, errOut := runArgs(t, "", "--5")
	assert.Equal(exitDataErr, status)
	assert.Contains(errOut, "Error at '-' (position 1): Expect number or '('.")

	status, _, errOut = runArgs(t, "", "-x")
	assert.Equal(exitUsage, status)
	assert.Contains(errOut, "unknown flag")
}

func TestExpressionArgs(t *testing.T) {
	testCases := []struct {
		args     []string
		expected []string
	}{
		{[]string{"-5"}, []string{"--", "-5"}},
		{[]string{"--tree", "- 5"}, []string{"--tree", "--", "- 5"}},
		{[]string{"--", "-5"}, []string{"--", "-5"}},
		{[]string{"--tree"}, []string{"--tree"}},
		{[]string{"-i"}, []string{"-i"}},
		{[]string{"1 - 2"}, []string{"1 - 2"}},
		{[]string{}, []string{}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.expected, expressionArgs(tc.args), tc.args)
	}
}

func TestRunHelp(t *testing.T) {
	status, out, _ := runArgs(t, "", "--help")

	assert.Equal(t, exitOK, status)
	assert.Contains(t, out, "Usage: kalk")
}
