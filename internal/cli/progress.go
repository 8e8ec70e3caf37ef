package cli

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Spinner shows an indeterminate progress indicator while a request is in
// flight.
type Spinner struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
	wg   sync.WaitGroup
}

// StartSpinner renders a spinner with description to w until Stop is called.
func StartSpinner(w io.Writer, description string) *Spinner {
	s := &Spinner{
		done: make(chan struct{}),
		bar: progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(w),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionOnCompletion(func() {
				if _, err := fmt.Fprint(w, "\r"); err != nil {
					slog.Warn("Failed to reset spinner line", "error", err)
				}
			}),
		),
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				if err := s.bar.Add(1); err != nil {
					slog.Debug("Failed to advance spinner", "error", err)
				}
			}
		}
	}()

	return s
}

// Stop halts the spinner and clears its line. It is safe to call once.
func (s *Spinner) Stop() {
	close(s.done)
	s.wg.Wait()
	if err := s.bar.Finish(); err != nil {
		slog.Debug("Failed to finish spinner", "error", err)
	}
}
