package panel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ytget/wallpanel/internal/model"
	"github.com/ytget/wallpanel/internal/urlbuilder"
)

// DefaultRevertDelay is how long the confirmed label stays before reverting.
const DefaultRevertDelay = 1200 * time.Millisecond

// ErrMissingDependency is returned by New when a required collaborator is nil.
var ErrMissingDependency = errors.New("panel: missing dependency")

// ErrClosed is delivered by CopyClicked after Close.
var ErrClosed = errors.New("panel: controller closed")

// Config wires a Controller to its collaborators.
type Config struct {
	Controls  Controls
	Preview   PreviewSink
	Text      TextSink
	Trigger   LabelSink
	Clipboard Clipboard

	// Origin returns scheme://host[:port] of the rendering service. It is
	// read on every recompute so origin changes apply on the next change.
	Origin func() string

	// Scheduler defaults to SystemScheduler, Dispatch to Serialized().
	Scheduler Scheduler
	Dispatch  Dispatcher

	// RevertDelay defaults to DefaultRevertDelay.
	RevertDelay time.Duration

	// OnCopyError is called on the controller goroutine when a copy fails.
	OnCopyError func(error)

	Logger *slog.Logger
}

// Controller is the sync controller. It must be driven from a single
// goroutine; asynchronous completions re-enter through Config.Dispatch.
type Controller struct {
	controls  Controls
	preview   PreviewSink
	text      TextSink
	trigger   LabelSink
	clipboard Clipboard
	origin    func() string
	sched     Scheduler
	dispatch  Dispatcher
	delay     time.Duration
	onCopyErr func(error)
	log       *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	state      model.FeedbackState
	generation uint64
	revert     Timer
	url        string
	started    bool
	closed     bool
}

// New validates cfg and returns a Controller in the Idle state.
func New(cfg Config) (*Controller, error) {
	for i, ctl := range cfg.Controls.all() {
		if ctl == nil {
			return nil, fmt.Errorf("%w: control %s", ErrMissingDependency, model.ParamNames[i])
		}
	}
	switch {
	case cfg.Preview == nil:
		return nil, fmt.Errorf("%w: preview sink", ErrMissingDependency)
	case cfg.Text == nil:
		return nil, fmt.Errorf("%w: text sink", ErrMissingDependency)
	case cfg.Trigger == nil:
		return nil, fmt.Errorf("%w: copy trigger", ErrMissingDependency)
	case cfg.Clipboard == nil:
		return nil, fmt.Errorf("%w: clipboard", ErrMissingDependency)
	case cfg.Origin == nil:
		return nil, fmt.Errorf("%w: origin", ErrMissingDependency)
	}

	c := &Controller{
		controls:  cfg.Controls,
		preview:   cfg.Preview,
		text:      cfg.Text,
		trigger:   cfg.Trigger,
		clipboard: cfg.Clipboard,
		origin:    cfg.Origin,
		sched:     cfg.Scheduler,
		dispatch:  cfg.Dispatch,
		delay:     cfg.RevertDelay,
		onCopyErr: cfg.OnCopyError,
		log:       cfg.Logger,
		state:     model.FeedbackIdle,
	}
	if c.sched == nil {
		c.sched = SystemScheduler{}
	}
	if c.dispatch == nil {
		c.dispatch = Serialized()
	}
	if c.delay <= 0 {
		c.delay = DefaultRevertDelay
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	return c, nil
}

// Start subscribes to every control and populates both sinks once.
// Calling it again is a no-op.
func (c *Controller) Start() {
	if c.started || c.closed {
		return
	}
	c.started = true

	for _, ctl := range c.controls.all() {
		ctl.OnChange(c.ParameterChanged)
	}
	c.trigger.SetLabel(c.state.Label())
	c.ParameterChanged()
}

// Snapshot reads every control now.
func (c *Controller) Snapshot() model.ParameterSet {
	return model.ParameterSet{
		Device:   c.controls.Device.Value(),
		Lang:     c.controls.Lang.Value(),
		Timezone: c.controls.Timezone.Value(),
		Weekends: c.controls.Weekends.Value(),
	}
}

// ParameterChanged recomputes the URL from the live control values and
// writes the relative form to the preview and the absolute form to the text.
func (c *Controller) ParameterChanged() {
	if c.closed {
		return
	}
	rel := urlbuilder.Build(c.Snapshot())
	c.url = rel
	c.preview.SetReference(rel)
	c.text.SetText(urlbuilder.Absolute(c.origin(), rel))
	c.log.Debug("parameters synced", "url", rel)
}

// CopyClicked copies the displayed URL text. The returned channel yields
// exactly one value once the write completes: nil on success, the clipboard
// error otherwise, ErrClosed if the controller closed meanwhile. Feedback
// changes only on success.
func (c *Controller) CopyClicked() <-chan error {
	done := make(chan error, 1)
	if c.closed {
		done <- ErrClosed
		return done
	}

	text := c.text.Text()
	ctx := c.ctx
	go func() {
		err := c.clipboard.WriteText(ctx, text)
		c.dispatch(func() {
			if c.closed {
				done <- ErrClosed
				return
			}
			c.copyFinished(text, err)
			done <- err
		})
	}()
	return done
}

func (c *Controller) copyFinished(text string, err error) {
	if err != nil {
		c.log.Warn("clipboard write failed", "error", err)
		if c.onCopyErr != nil {
			c.onCopyErr(err)
		}
		return
	}
	c.log.Debug("url copied", "url", text)
	c.confirm()
}

// confirm enters Confirmed and replaces any pending revert.
func (c *Controller) confirm() {
	if c.revert != nil {
		c.revert.Stop()
	}
	c.generation++
	gen := c.generation

	c.setState(model.FeedbackConfirmed)
	c.revert = c.sched.AfterFunc(c.delay, func() {
		c.dispatch(func() { c.revertTo(gen) })
	})
}

// revertTo returns to Idle unless a newer copy superseded gen.
func (c *Controller) revertTo(gen uint64) {
	if c.closed || gen != c.generation {
		return
	}
	c.revert = nil
	c.setState(model.FeedbackIdle)
}

func (c *Controller) setState(s model.FeedbackState) {
	c.state = s
	c.trigger.SetLabel(s.Label())
}

// State returns the current feedback state.
func (c *Controller) State() model.FeedbackState {
	return c.state
}

// URL returns the last generated relative URL.
func (c *Controller) URL() string {
	return c.url
}

// Close stops the pending revert and cancels in-flight clipboard writes.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.revert != nil {
		c.revert.Stop()
		c.revert = nil
	}
	c.cancel()
}
