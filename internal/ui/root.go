package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/download-check/internal/config"
	"github.com/ytget/download-check/internal/model"
	"github.com/ytget/download-check/internal/render"
	"github.com/ytget/download-check/internal/transition"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	ctrl  *transition.Controller
	icon  *TransitionIcon
	clock *FrameClock

	caption      *widget.Label
	percentLabel *widget.Label
	noticeLabel  *widget.Label
	resetBtn     *widget.Button
}

// NewRootUI creates and initializes the main UI around ctrl
func NewRootUI(window fyne.Window, app fyne.App, ctrl *transition.Controller, renderer *render.Renderer) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		ctrl:         ctrl,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.icon = NewTransitionIcon(ctrl, renderer)
	ui.icon.OnRejected = ui.onPressRejected
	ui.icon.OnAdvance = ui.showFrame
	ui.clock = NewFrameClock(ui.icon.Advance)

	ctrl.SetUpdateCallback(ui.onFrameUpdate)

	ui.setupUI()
	log.Printf("RootUI initialized: download=%s checkmark=%s reentry=%s loop=%t",
		ctrl.Options().DownloadDuration, ctrl.Options().CheckmarkDuration, ctrl.Options().Reentry, ctrl.Options().LoopCheckmark)
	return ui
}

// Controller returns the controller currently driven by the UI
func (ui *RootUI) Controller() *transition.Controller {
	return ui.ctrl
}

// Icon returns the tappable icon
func (ui *RootUI) Icon() *TransitionIcon {
	return ui.icon
}

// Caption returns the status caption text
func (ui *RootUI) Caption() string {
	return ui.caption.Text
}

// Percent returns the progress label text
func (ui *RootUI) Percent() string {
	return ui.percentLabel.Text
}

// Notice returns the message shown for a refused press
func (ui *RootUI) Notice() string {
	return ui.noticeLabel.Text
}

// StartClock starts the frame clock; call once the window is shown
func (ui *RootUI) StartClock() {
	ui.clock.Start()
}

// StopClock halts the frame clock
func (ui *RootUI) StopClock() {
	ui.clock.Stop()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.icon.SetIconSize(ui.mobile.IconSize(WindowWidth))

	ui.caption = widget.NewLabel(ui.localization.Caption(model.StateIdle))
	ui.caption.Alignment = fyne.TextAlignCenter
	ui.percentLabel = widget.NewLabel("")
	ui.percentLabel.Alignment = fyne.TextAlignCenter
	ui.noticeLabel = widget.NewLabel("")
	ui.noticeLabel.Alignment = fyne.TextAlignCenter
	ui.noticeLabel.Importance = widget.DangerImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	ui.resetBtn = widget.NewButton(IconReset, ui.onReset)
	ui.resetBtn.Importance = widget.LowImportance

	topPanel := container.NewHBox(layout.NewSpacer(), ui.resetBtn, settingsBtn)

	center := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(ui.icon),
		ui.caption,
		ui.percentLabel,
		ui.noticeLabel,
		layout.NewSpacer(),
	)

	content := container.NewBorder(topPanel, nil, nil, nil, center)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	resetItem := fyne.NewMenuItem(ui.localization.GetText(KeyReset), ui.onReset)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), resetItem, settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.showFrame(ui.ctrl.Snapshot())
}

// onFrameUpdate receives state changes from the controller
func (ui *RootUI) onFrameUpdate(frame model.Frame) {
	fyne.Do(func() {
		ui.noticeLabel.SetText("")
		ui.showFrame(frame)
	})
}

func (ui *RootUI) showFrame(frame model.Frame) {
	caption := ui.localization.Caption(frame.State)
	if frame.State.IsFinished() {
		caption = IconCheck + " " + caption
	}
	ui.caption.SetText(caption)

	if frame.State == model.StateIdle {
		ui.percentLabel.SetText("")
	} else {
		ui.percentLabel.SetText(fmt.Sprintf(ProgressLabelFormat, frame.Percent()))
	}
}

func (ui *RootUI) onPressRejected(err error) {
	log.Printf("press rejected in %s: %v", ui.ctrl.State(), err)
	if errors.Is(err, transition.ErrReentrantStart) {
		ui.noticeLabel.SetText(ui.localization.GetText(KeyAlreadyAnimating))
		return
	}
	ui.noticeLabel.SetText(err.Error())
}

// onReset cancels the running cycle
func (ui *RootUI) onReset() {
	ui.ctrl.Cancel()
	ui.noticeLabel.SetText("")
	ui.icon.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved rebuilds the controller from the stored settings
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())

	if err := ui.ApplyOptions(ui.settings.Options()); err != nil {
		log.Printf("failed to apply settings: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}
	ui.refreshUITexts()
	ui.createMenu()
}

// ApplyOptions replaces the controller with one built from opts.
// The running cycle is dropped.
func (ui *RootUI) ApplyOptions(opts transition.Options) error {
	ctrl, err := transition.NewController(opts)
	if err != nil {
		return fmt.Errorf("rebuild controller: %w", err)
	}
	ui.ctrl.SetUpdateCallback(nil)
	ui.ctrl.Cancel()

	ctrl.SetUpdateCallback(ui.onFrameUpdate)
	ui.ctrl = ctrl
	ui.icon.SetController(ctrl)
	return nil
}
