package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	todayOrange = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	copiedGreen = color.RGBA{R: 46, G: 160, B: 67, A: 255}
	failureRed  = color.RGBA{R: 183, G: 28, B: 28, A: 255}
)

// panelSizes keeps the form dense so the preview gets most of the window.
var panelSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:         3,
	theme.SizeNameInnerPadding:    6,
	theme.SizeNameLineSpacing:     2,
	theme.SizeNameText:            13,
	theme.SizeNameHeadingText:     16,
	theme.SizeNameSubHeadingText:  13,
	theme.SizeNameCaptionText:     10,
	theme.SizeNameInputRadius:     3,
	theme.SizeNameSelectionRadius: 2,
}

// PanelTheme is a dense theme tinted with the calendar's highlight colours.
// The light and dark backgrounds match the renderer's canvas.
type PanelTheme struct {
	fyne.Theme
}

// NewPanelTheme wraps the default theme
func NewPanelTheme() fyne.Theme {
	return &PanelTheme{Theme: theme.DefaultTheme()}
}

func (t *PanelTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark
	switch name {
	case theme.ColorNamePrimary:
		return todayOrange
	case theme.ColorNameSuccess:
		return copiedGreen
	case theme.ColorNameError:
		return failureRed
	case theme.ColorNameBackground:
		if dark {
			return color.Black
		}
		return color.RGBA{R: 245, G: 245, B: 245, A: 255}
	case theme.ColorNameForeground:
		if dark {
			return color.RGBA{R: 220, G: 220, B: 220, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}
	return t.Theme.Color(name, variant)
}

func (t *PanelTheme) Size(name fyne.ThemeSizeName) float32 {
	if s, ok := panelSizes[name]; ok {
		return s
	}
	return t.Theme.Size(name)
}
