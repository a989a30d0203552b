// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package progress renders a single-line spinner on a terminal while a
// listing runs. On anything that is not a terminal the spinner is silent.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

const refreshInterval = 80 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows an animated description until stopped.
type Spinner struct {
	out         io.Writer
	description string
	enabled     bool
	interval    time.Duration

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	done     chan struct{}
	frame    int
}

// NewSpinner creates a spinner writing to out. It animates only when out is
// a terminal.
func NewSpinner(out io.Writer, description string) *Spinner {
	return &Spinner{
		out:         out,
		description: description,
		enabled:     IsTerminal(out),
		interval:    refreshInterval,
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Start begins the animation. Calling Start on a running spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.done = make(chan struct{})

	// Hide cursor
	fmt.Fprint(s.out, "\033[?25l")
	s.renderLocked()

	go s.loop(s.stopChan, s.done)
}

func (s *Spinner) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.renderLocked()
			s.mu.Unlock()
		}
	}
}

func (s *Spinner) renderLocked() {
	frame := spinnerFrames[s.frame%len(spinnerFrames)]
	s.frame++
	fmt.Fprintf(s.out, "\r\033[K%s %s", frame, s.description)
}

// Stop ends the animation and clears the spinner line. It is safe to call
// more than once.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	done := s.done
	s.mu.Unlock()

	<-done

	s.mu.Lock()
	defer s.mu.Unlock()
	// Clear line, show cursor
	fmt.Fprint(s.out, "\r\033[K\033[?25h")
}

// Run shows the spinner while fn executes.
func Run[T any](out io.Writer, description string, fn func() (T, error)) (T, error) {
	s := NewSpinner(out, description)
	s.Start()
	defer s.Stop()
	return fn()
}
