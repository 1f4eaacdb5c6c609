package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconOpen     = "↗"
)

// Window
const (
	AppTitle     = "Wallpaper Panel"
	WindowWidth  = 860
	WindowHeight = 640
)

// Layout sizing
const (
	PreviewMinWidth  float32 = 240
	PreviewMinHeight float32 = 520
	QRDisplaySize    float32 = 160
)

// Text fragments
const (
	TextPreviewLoading     = "Loading preview…"
	TextPreviewUnavailable = "Preview unavailable"
	TextCopyFailedPrefix   = "Copy failed: "
	TextOpenFailedPrefix   = "Could not open browser: "
	LabelDevice            = "Device"
	LabelLanguage          = "Language"
	LabelTimezone          = "Timezone (UTC offset)"
	LabelWeekends          = "Weekends"
	LabelOpen              = "Open"
)

// Status line behavior
const (
	StatusAutoHide = 5 * time.Second
)
