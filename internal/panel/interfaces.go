package panel

import (
	"context"
	"sync"
	"time"
)

// Control is a live input exposing its current value and change notifications.
type Control interface {
	Value() string
	OnChange(func())
}

// PreviewSink receives the relative preview reference.
type PreviewSink interface {
	SetReference(ref string)
}

// TextSink holds the displayed absolute URL.
type TextSink interface {
	SetText(text string)
	Text() string
}

// LabelSink is the copy trigger whose label follows the feedback state.
type LabelSink interface {
	SetLabel(label string)
}

// Clipboard writes text to the system clipboard. WriteText may block and may fail.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Timer is a pending one-shot task.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Dispatcher runs f on the controller's goroutine.
type Dispatcher func(f func())

// Controls groups the four parameter inputs.
type Controls struct {
	Device   Control
	Lang     Control
	Timezone Control
	Weekends Control
}

func (c Controls) all() []Control {
	return []Control{c.Device, c.Lang, c.Timezone, c.Weekends}
}

// SystemScheduler schedules on the runtime timer.
type SystemScheduler struct{}

// AfterFunc wraps time.AfterFunc.
func (SystemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Serialized returns a Dispatcher that runs each f under one lock, so
// completions arriving from different goroutines never overlap. It is the
// default when Config.Dispatch is nil.
func Serialized() Dispatcher {
	var mu sync.Mutex
	return func(f func()) {
		mu.Lock()
		defer mu.Unlock()
		f()
	}
}

// Inline runs f on the calling goroutine. Only safe when every completion
// already arrives on the controller goroutine.
func Inline(f func()) { f() }
