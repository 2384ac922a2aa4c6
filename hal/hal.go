package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrQuit is returned by App.Step to end a run normally.
	ErrQuit = errors.New("quit")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, little endian.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Clock is the time source for animation.
type Clock interface {
	Now() time.Time
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeySpace
	KeyReset
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// HAL is the only contact point between the renderer and the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Clock() Clock
}

// App is what the host runners drive. All methods are called from the runner's
// goroutine.
type App interface {
	// Step is called once per host loop iteration.
	Step() error
	// SetVisible reports that the view became visible or is disappearing.
	SetVisible(visible bool)
	// HandleKey receives key presses (window mode only).
	HandleKey(k KeyCode)
}
