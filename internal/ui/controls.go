package ui

import (
	"fyne.io/fyne/v2/widget"
)

// selectControl adapts a Select to panel.Control.
type selectControl struct {
	sel      *widget.Select
	handlers []func()
}

func newSelectControl(sel *widget.Select) *selectControl {
	c := &selectControl{sel: sel}
	sel.OnChanged = func(string) { c.emit() }
	return c
}

func (c *selectControl) Value() string      { return c.sel.Selected }
func (c *selectControl) OnChange(fn func()) { c.handlers = append(c.handlers, fn) }

func (c *selectControl) emit() {
	for _, h := range c.handlers {
		h()
	}
}

// entryControl adapts a SelectEntry to panel.Control. Every keystroke
// (OnChanged) and every commit (OnSubmitted) notifies.
type entryControl struct {
	entry    *widget.SelectEntry
	handlers []func()
}

func newEntryControl(entry *widget.SelectEntry) *entryControl {
	c := &entryControl{entry: entry}
	entry.OnChanged = func(string) { c.emit() }
	entry.OnSubmitted = func(string) { c.emit() }
	return c
}

func (c *entryControl) Value() string      { return c.entry.Text }
func (c *entryControl) OnChange(fn func()) { c.handlers = append(c.handlers, fn) }

func (c *entryControl) emit() {
	for _, h := range c.handlers {
		h()
	}
}
