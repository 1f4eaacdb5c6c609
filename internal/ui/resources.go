package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "wallpanel.png"
)

// LoadLogoResource loads the window icon from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
