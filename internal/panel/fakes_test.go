package panel

import (
	"context"
	"sync"
	"time"
)

type fakeControl struct {
	value    string
	handlers []func()
}

func (c *fakeControl) Value() string      { return c.value }
func (c *fakeControl) OnChange(fn func()) { c.handlers = append(c.handlers, fn) }

// set changes the value and emits one notification.
func (c *fakeControl) set(v string) {
	c.value = v
	for _, h := range c.handlers {
		h()
	}
}

// edit emits both an input and a change notification for one edit.
func (c *fakeControl) edit(v string) {
	c.set(v)
	for _, h := range c.handlers {
		h()
	}
}

type recordingPreview struct {
	refs []string
}

func (p *recordingPreview) SetReference(ref string) { p.refs = append(p.refs, ref) }

func (p *recordingPreview) last() string {
	if len(p.refs) == 0 {
		return ""
	}
	return p.refs[len(p.refs)-1]
}

type recordingText struct {
	text   string
	writes int
}

func (t *recordingText) SetText(s string) { t.text = s; t.writes++ }
func (t *recordingText) Text() string     { return t.text }

type recordingLabel struct {
	labels []string
}

func (l *recordingLabel) SetLabel(s string) { l.labels = append(l.labels, s) }

func (l *recordingLabel) current() string {
	if len(l.labels) == 0 {
		return ""
	}
	return l.labels[len(l.labels)-1]
}

func (l *recordingLabel) count(label string) int {
	n := 0
	for _, s := range l.labels {
		if s == label {
			n++
		}
	}
	return n
}

type fakeClipboard struct {
	mu     sync.Mutex
	err    error
	writes []string
}

func (c *fakeClipboard) WriteText(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, text)
	return nil
}

func (c *fakeClipboard) written() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.writes...)
}

type fakeTimer struct {
	at      time.Duration
	fn      func()
	fired   bool
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler is a manual clock. Advance fires due timers in order.
type fakeScheduler struct {
	now    time.Duration
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{at: s.now + d, fn: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		var next *fakeTimer
		for _, t := range s.timers {
			if t.fired || t.stopped || t.at > target {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			break
		}
		s.now = next.at
		next.fired = true
		next.fn()
	}
	s.now = target
}

func (s *fakeScheduler) pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}
