package ui

// Package ui contains the Fyne-based desktop control panel. It adapts Fyne
// widgets to the panel package's controls and sinks, shows the live preview
// and the copyable wallpaper URL, and hosts the settings dialog.
