// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package progress

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerSilentWhenNotTerminal(t *testing.T) {
	var out bytes.Buffer
	s := NewSpinner(&out, "Listing processes")
	assert.False(t, s.enabled)

	s.Start()
	s.Stop()
	assert.Empty(t, out.String())
}

func TestSpinnerAnimates(t *testing.T) {
	out := &syncBuffer{}
	s := NewSpinner(out, "Listing processes")
	s.enabled = true
	s.interval = 5 * time.Millisecond

	s.Start()
	s.Start()
	assert.Eventually(t, func() bool {
		return strings.Count(out.String(), "Listing processes") >= 3
	}, time.Second, 5*time.Millisecond)
	s.Stop()
	s.Stop()

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "\033[?25l\r\033[K"+spinnerFrames[0]+" Listing processes"))
	assert.Contains(t, got, spinnerFrames[1])
	assert.True(t, strings.HasSuffix(got, "\r\033[K\033[?25h"))

	// No writes after Stop.
	n := len(got)
	time.Sleep(20 * time.Millisecond)
	assert.Len(t, out.String(), n)
}

func TestSpinnerRestart(t *testing.T) {
	out := &syncBuffer{}
	s := NewSpinner(out, "x")
	s.enabled = true

	s.Start()
	s.Stop()
	s.Start()
	s.Stop()
	assert.Equal(t, 2, strings.Count(out.String(), "\033[?25h"))
}

func TestRunReturnsResult(t *testing.T) {
	var out bytes.Buffer
	got, err := Run(&out, "working", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	wantErr := errors.New("boom")
	_, err = Run(&out, "working", func() (string, error) { return "", wantErr })
	assert.ErrorIs(t, err, wantErr)
}

func TestIsTerminalNonFile(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
