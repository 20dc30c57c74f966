package kalk

import (
	"fmt"
	"io"
)

// Reporter defines the interface for structures that can display errors to the
// user. A reporter separates error reporting code from error displaying code.
type Reporter interface {
	Report(err error)
	Reset()
	HadError() bool
	HadFatalError() bool
}

// SimpleReporter writes errors as-is to the inner writer
type SimpleReporter struct {
	writer      io.Writer
	hadErr      bool
	hadFatalErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, false, false}
}

func (reporter *SimpleReporter) Report(err error) {
	if IsFatal(err) {
		reporter.hadFatalErr = true
	} else {
		reporter.hadErr = true
	}
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadFatalErr = false
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadFatalError() bool {
	return reporter.hadFatalErr
}
