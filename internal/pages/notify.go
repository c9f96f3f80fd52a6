// Package pages holds the state behind each hrctl screen. A page keeps the
// last list it loaded and reports every outcome through a Notifier.
package pages

import (
	"errors"
	"fmt"
	"io"

	"github.com/adamanr/hrdesk/internal/client"
	"github.com/fatih/color"
)

type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

type Notifier interface {
	Notify(level Level, msg string)
}

// ConsoleNotifier prints one coloured line per notice.
type ConsoleNotifier struct {
	out io.Writer
}

func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (n *ConsoleNotifier) Notify(level Level, msg string) {
	var c *color.Color
	switch level {
	case LevelSuccess:
		c = color.New(color.FgGreen)
	case LevelError:
		c = color.New(color.FgRed, color.Bold)
	default:
		c = color.New(color.FgCyan)
	}

	_, _ = c.Fprintln(n.out, msg)
}

// errorText picks what the user sees for err. Server messages are shown as
// sent; transport failures fall back to a fixed message.
func errorText(err error, fallback string) string {
	if errors.Is(err, client.ErrUnauthorized) {
		return client.ErrUnauthorized.Error()
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Status != 0 && apiErr.Message != "" {
		return apiErr.Message
	}

	return fallback
}

// ErrReported marks errors the user has already seen as a notice. Callers
// should only turn them into an exit status.
var ErrReported = errors.New("already reported")

type reportedError struct {
	err error
}

func (e reportedError) Error() string {
	return e.err.Error()
}

func (e reportedError) Unwrap() []error {
	return []error{e.err, ErrReported}
}

// reported wraps err so that errors.Is(err, ErrReported) holds.
func reported(err error) error {
	return reportedError{err: err}
}

// report sends exactly one error notice for err and returns it wrapped with
// the fallback for the caller's exit status.
func report(n Notifier, err error, fallback string) error {
	n.Notify(LevelError, errorText(err, fallback))
	return reported(fmt.Errorf("%s: %w", fallback, err))
}

// invalid reports a client-side validation failure.
func invalid(n Notifier, err error) error {
	n.Notify(LevelError, err.Error())
	return reported(err)
}

var (
	_ EmployeesAPI   = (*client.Client)(nil)
	_ AddEmployeeAPI = (*client.Client)(nil)
	_ VacationsAPI   = (*client.Client)(nil)
	_ ContractsAPI   = (*client.Client)(nil)
	_ ProfileAPI     = (*client.Client)(nil)
	_ AnalyticsAPI   = (*client.Client)(nil)
)
