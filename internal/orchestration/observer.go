package orchestration

import (
	"fmt"
	"log"

	"github.com/go-logr/logr"
)

// Observer receives human-readable progress output during a run.
type Observer interface {
	Printf(format string, v ...any)
}

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct{}

// NewConsoleObserver creates a console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{}
}

// Printf implements Observer.
func (o *ConsoleObserver) Printf(format string, v ...any) {
	log.Printf(format, v...)
}

// LogrObserver implements Observer on top of a logr.Logger, used when
// structured log output is requested.
type LogrObserver struct {
	log logr.Logger
}

// NewLogrObserver creates an observer that forwards to l.
func NewLogrObserver(l logr.Logger) *LogrObserver {
	return &LogrObserver{log: l}
}

// Printf implements Observer.
func (o *LogrObserver) Printf(format string, v ...any) {
	o.log.Info(fmt.Sprintf(format, v...))
}

// Discard is an Observer that drops all output.
var Discard Observer = discardObserver{}

type discardObserver struct{}

func (discardObserver) Printf(string, ...any) {}
