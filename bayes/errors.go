package bayes

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrRefit is returned when Fit is called on a classifier that already holds statistics.
	ErrRefit = errors.New("classifier already fitted; construct a new one to refit")
	// ErrNotFitted is returned when predicting with a classifier that was never fitted.
	ErrNotFitted = errors.New("classifier has not been fitted")
	// ErrEmptyTraining is returned when Fit receives no records.
	ErrEmptyTraining = errors.New("no training records")
)

// IOError reports a data file that could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("unable to read %s: %v", e.Path, e.Err) }

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a malformed line in a data file.
type ParseError struct {
	Path  string
	Line  int
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s:%d: %s (%q)", e.Path, e.Line, e.Msg, e.Token)
	}
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// DomainError reports a statistics lookup or score that cannot be computed.
type DomainError struct {
	Class Class
	Index int
	Len   int
	Msg   string
}

func (e *DomainError) Error() string {
	switch {
	case e.Msg != "" && e.Class == 0:
		return e.Msg
	case e.Msg != "":
		return fmt.Sprintf("%v: %s", e.Class, e.Msg)
	}
	return fmt.Sprintf("%v: statistics index %d out of range (have %d entries)", e.Class, e.Index, e.Len)
}

type errList []error

func (err errList) Error() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Errors Found:\n")
	for _, e := range err {
		fmt.Fprintf(&buf, "\t%v\n", e)
	}
	return buf.String()
}
