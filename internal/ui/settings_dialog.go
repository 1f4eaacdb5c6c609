package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/wallpanel/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func(originChanged bool)

	// UI components
	originEntry *widget.Entry
	showQRCheck *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func(originChanged bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.originEntry = widget.NewEntry()
	sd.originEntry.SetPlaceHolder(config.DefaultOrigin)
	sd.originEntry.Validator = func(s string) error {
		if s == "" {
			return nil // empty restores the startup origin
		}
		return config.ValidateOrigin(config.NormalizeOrigin(s))
	}

	resetBtn := widget.NewButton("Reset", func() {
		sd.originEntry.SetText("")
	})
	originRow := container.NewBorder(nil, nil, nil, resetBtn, sd.originEntry)

	sd.showQRCheck = widget.NewCheck("Show QR code for the link", nil)

	form := container.NewVBox(
		widget.NewLabel("Renderer"),
		widget.NewSeparator(),

		widget.NewLabel("Origin (scheme://host:port):"),
		originRow,

		widget.NewSeparator(),
		widget.NewLabel("Display"),
		widget.NewSeparator(),

		sd.showQRCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(460, 280))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.originEntry.SetText(sd.settings.GetOrigin())
	sd.showQRCheck.SetChecked(sd.settings.GetShowQR())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	before := sd.settings.GetOrigin()
	if sd.originEntry.Text == "" {
		sd.settings.ResetOrigin()
	} else if err := sd.settings.SetOrigin(sd.originEntry.Text); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	sd.settings.SetShowQR(sd.showQRCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved(sd.settings.GetOrigin() != before)
	}
}
