package ui

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/wallpanel/internal/catalog"
	"github.com/ytget/wallpanel/internal/config"
	"github.com/ytget/wallpanel/internal/model"
	"github.com/ytget/wallpanel/internal/panel"
	"github.com/ytget/wallpanel/internal/platform"
	"github.com/ytget/wallpanel/internal/preview"
)

// Options overrides collaborators of the root UI. Zero values use the
// app clipboard, fyne.Do, the system timer and time.Now.
type Options struct {
	Clipboard panel.Clipboard
	Dispatch  panel.Dispatcher
	Scheduler panel.Scheduler
	Now       func() time.Time
	OpenURL   func(string) error
	Logger    *slog.Logger
}

// RootUI represents the main UI structure
type RootUI struct {
	window     fyne.Window
	settings   *config.Settings
	previewSvc preview.Loader
	ctrl       *panel.Controller
	log        *slog.Logger
	openURL    func(string) error
	sched      panel.Scheduler
	dispatch   panel.Dispatcher

	deviceSelect   *widget.Select
	langSelect     *widget.Select
	timezoneEntry  *widget.SelectEntry
	weekendsSelect *widget.Select

	previewImage   *canvas.Image
	previewStatus  *widget.Label
	previewSpinner *widget.ProgressBarInfinite

	urlLabel  *widget.Label
	qrImage   *canvas.Image
	copyBtn   *widget.Button
	openBtn   *widget.Button
	statusMsg *widget.Label
	statusGen int
}

// NewRootUI creates the panel, wires the sync controller and shows the
// initial URL and preview.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, previewSvc preview.Loader, opts Options) (*RootUI, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Dispatch == nil {
		opts.Dispatch = fyne.Do
	}
	if opts.Scheduler == nil {
		opts.Scheduler = panel.SystemScheduler{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.OpenURL == nil {
		opts.OpenURL = platform.OpenURL
	}
	if opts.Clipboard == nil {
		opts.Clipboard = fyneClipboard{cb: app.Clipboard()}
	}

	ui := &RootUI{
		window:     window,
		settings:   settings,
		previewSvc: previewSvc,
		log:        opts.Logger,
		openURL:    opts.OpenURL,
		sched:      opts.Scheduler,
		dispatch:   opts.Dispatch,
	}

	window.SetTitle(AppTitle)
	if logo, err := LoadLogoResource(); err == nil {
		window.SetIcon(logo)
	}

	controls := ui.setupUI(catalog.Defaults(opts.Now()))

	// Preview updates arrive from fetch goroutines
	previewSvc.SetUpdateCallback(func(req model.PreviewRequest) {
		opts.Dispatch(func() { ui.onPreviewUpdate(req) })
	})

	ctrl, err := panel.New(panel.Config{
		Controls:    controls,
		Preview:     previewSvc,
		Text:        &urlSink{label: ui.urlLabel, qr: ui.qrImage, qrSize: settings.Defaults().QR.Size, log: opts.Logger},
		Trigger:     buttonLabel{btn: ui.copyBtn},
		Clipboard:   opts.Clipboard,
		Origin:      settings.GetOrigin,
		Scheduler:   opts.Scheduler,
		Dispatch:    opts.Dispatch,
		OnCopyError: ui.onCopyError,
		Logger:      opts.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating panel controller: %w", err)
	}
	ui.ctrl = ctrl
	ctrl.Start()

	window.SetOnClosed(ui.Close)

	ui.log.Info("panel ready", "origin", settings.GetOrigin(), "url", ctrl.URL())
	return ui, nil
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI(initial model.ParameterSet) panel.Controls {
	ui.createMenu()

	ui.deviceSelect = widget.NewSelect(catalog.DeviceKeys(), nil)
	ui.deviceSelect.SetSelected(initial.Device)

	ui.langSelect = widget.NewSelect(catalog.Values(catalog.Languages), nil)
	ui.langSelect.SetSelected(initial.Lang)

	ui.timezoneEntry = widget.NewSelectEntry(catalog.TimezoneOffsets())
	ui.timezoneEntry.SetText(initial.Timezone)

	ui.weekendsSelect = widget.NewSelect(catalog.Values(catalog.WeekendStyles), nil)
	ui.weekendsSelect.SetSelected(initial.Weekends)

	form := widget.NewForm(
		widget.NewFormItem(LabelDevice, ui.deviceSelect),
		widget.NewFormItem(LabelLanguage, ui.langSelect),
		widget.NewFormItem(LabelTimezone, ui.timezoneEntry),
		widget.NewFormItem(LabelWeekends, ui.weekendsSelect),
	)

	// URL row
	ui.urlLabel = widget.NewLabel("")
	ui.urlLabel.Wrapping = fyne.TextWrapBreak
	ui.urlLabel.Selectable = true

	ui.copyBtn = widget.NewButton(model.LabelIdle, func() { ui.onCopyClicked() })
	ui.copyBtn.Importance = widget.HighImportance
	ui.openBtn = widget.NewButton(IconOpen+" "+LabelOpen, ui.onOpenClicked)
	buttons := container.NewHBox(ui.copyBtn, ui.openBtn)

	ui.qrImage = canvas.NewImageFromImage(nil)
	ui.qrImage.FillMode = canvas.ImageFillContain
	ui.qrImage.SetMinSize(fyne.NewSize(QRDisplaySize, QRDisplaySize))
	if !ui.settings.GetShowQR() {
		ui.qrImage.Hide()
	}

	ui.statusMsg = widget.NewLabel("")
	ui.statusMsg.Importance = widget.DangerImportance
	ui.statusMsg.Hide()

	left := container.NewVBox(
		form,
		widget.NewSeparator(),
		ui.urlLabel,
		buttons,
		ui.statusMsg,
		container.NewCenter(ui.qrImage),
	)

	// Preview pane
	ui.previewImage = canvas.NewImageFromImage(nil)
	ui.previewImage.FillMode = canvas.ImageFillContain
	ui.previewImage.SetMinSize(fyne.NewSize(PreviewMinWidth, PreviewMinHeight))
	ui.previewStatus = widget.NewLabel(TextPreviewLoading)
	ui.previewStatus.Alignment = fyne.TextAlignCenter
	ui.previewSpinner = widget.NewProgressBarInfinite()

	previewPane := container.NewBorder(
		nil,
		container.NewVBox(ui.previewSpinner, ui.previewStatus),
		nil,
		nil,
		ui.previewImage,
	)

	split := container.NewHSplit(container.NewPadded(left), previewPane)
	split.Offset = 0.45
	ui.window.SetContent(split)

	return panel.Controls{
		Device:   newSelectControl(ui.deviceSelect),
		Lang:     newSelectControl(ui.langSelect),
		Timezone: newEntryControl(ui.timezoneEntry),
		Weekends: newSelectControl(ui.weekendsSelect),
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(IconSettings+" Settings", ui.onShowSettings)
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem),
	)
	ui.window.SetMainMenu(mainMenu)
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies changed settings to the running panel
func (ui *RootUI) onSettingsSaved(originChanged bool) {
	if ui.settings.GetShowQR() {
		ui.qrImage.Show()
	} else {
		ui.qrImage.Hide()
	}
	if originChanged {
		ui.ctrl.ParameterChanged()
		ui.previewSvc.Reload(ui.ctrl.URL())
	}
}

// onCopyClicked handles the copy button
func (ui *RootUI) onCopyClicked() <-chan error {
	ui.hideStatus()
	return ui.ctrl.CopyClicked()
}

// onCopyError reports a failed clipboard write without touching the button
func (ui *RootUI) onCopyError(err error) {
	ui.showStatus(TextCopyFailedPrefix + err.Error())
}

// onOpenClicked opens the absolute URL in the browser
func (ui *RootUI) onOpenClicked() {
	if err := ui.openURL(ui.urlLabel.Text); err != nil {
		ui.log.Warn("open url failed", "url", ui.urlLabel.Text, "error", err)
		ui.showStatus(TextOpenFailedPrefix + err.Error())
	}
}

// onPreviewUpdate renders a preview status change. Cancelled requests were
// superseded and are ignored; the service never publishes them as Ready.
func (ui *RootUI) onPreviewUpdate(req model.PreviewRequest) {
	if req.Status.IsFinished() {
		ui.log.Debug("preview finished", "status", req.Status, "url", req.URL, "elapsed", req.Elapsed())
	}
	switch req.Status {
	case model.PreviewStatusPending, model.PreviewStatusLoading:
		ui.previewSpinner.Show()
		ui.previewStatus.SetText(TextPreviewLoading)
	case model.PreviewStatusReady:
		ui.previewSpinner.Hide()
		ui.previewImage.Image = req.Image
		ui.previewImage.Refresh()
		ui.previewStatus.SetText(req.GetSizeString())
	case model.PreviewStatusError:
		ui.previewSpinner.Hide()
		ui.previewImage.Image = nil
		ui.previewImage.Refresh()
		ui.previewStatus.SetText(TextPreviewUnavailable)
	}
}

// showStatus displays a message under the URL for StatusAutoHide
func (ui *RootUI) showStatus(message string) {
	ui.statusGen++
	gen := ui.statusGen
	ui.statusMsg.SetText(message)
	ui.statusMsg.Show()

	ui.sched.AfterFunc(StatusAutoHide, func() {
		ui.dispatch(func() {
			if ui.statusGen == gen {
				ui.hideStatus()
			}
		})
	})
}

func (ui *RootUI) hideStatus() {
	ui.statusMsg.Hide()
}

// Close stops the controller and any in-flight preview fetch
func (ui *RootUI) Close() {
	ui.ctrl.Close()
	ui.previewSvc.Close()
}
