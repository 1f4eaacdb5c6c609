package panel

// Package panel implements the parameter synchronization engine behind the
// wallpaper control panel. A Controller observes four controls, derives the
// wallpaper URL on every change, pushes it to the preview and URL text sinks,
// and runs the copy-to-clipboard feedback state machine. All collaborators are
// injected, so the engine runs the same under Fyne and under test fakes.
