package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Spinner provides feedback while a backend request is in flight.
type Spinner interface {
	Start(message string)
	Stop()
}

// NewSpinner returns a terminal spinner when stderr is an interactive
// terminal, or a line printer suitable for CI logs otherwise.
func NewSpinner() Spinner {
	if os.Getenv("CI") != "" || !isatty.IsTerminal(os.Stderr.Fd()) {
		return &lineSpinner{}
	}
	return &termSpinner{}
}

// termSpinner shows an indeterminate progress bar in the terminal. An
// indeterminate bar only animates when it is advanced, so a ticker
// pumps it until Stop.
type termSpinner struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
}

func (s *termSpinner) Start(message string) {
	s.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(message),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionClearOnFinish(),
	)
	s.done = make(chan struct{})

	go func(bar *progressbar.ProgressBar, done chan struct{}) {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}(s.bar, s.done)
}

func (s *termSpinner) Stop() {
	if s.bar == nil {
		return
	}
	close(s.done)
	_ = s.bar.Finish()
	s.bar = nil
	s.done = nil
}

// lineSpinner prints a single line per request, suitable for CI logs.
type lineSpinner struct{}

func (s *lineSpinner) Start(message string) {
	fmt.Fprintf(os.Stderr, "%s\n", message)
}

func (s *lineSpinner) Stop() {}
