package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	clock  *hostClock
}

// New returns a host HAL with a width×height framebuffer, logging to stdout.
func New(width, height int) HAL {
	return NewWithOutput(width, height, os.Stdout)
}

// NewWithOutput is New with log lines written to out.
func NewWithOutput(width, height int, out io.Writer) HAL {
	return newHostHAL(width, height, out)
}

func newHostHAL(width, height int, out io.Writer) *hostHAL {
	if out == nil {
		out = os.Stdout
	}
	return &hostHAL{
		logger: &hostLogger{w: out},
		fb:     newHostFramebuffer(width, height),
		clock:  newHostClock(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Clock() Clock     { return h.clock }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
