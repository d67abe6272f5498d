package ui

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/download-check/internal/config"
	"github.com/ytget/download-check/internal/transition"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	variantSelect   *widget.Select
	downloadEntry   *widget.Entry
	checkmarkEntry  *widget.Entry
	downloadEasing  *widget.Select
	checkmarkEasing *widget.Select
	reentrySelect   *widget.Select
	loopCheck       *widget.Check
	languageSelect  *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values have been stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
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
	text := sd.localization.GetText

	variantNames := []string{}
	for _, v := range config.BuiltinVariants() {
		variantNames = append(variantNames, v.Name)
	}
	sd.variantSelect = widget.NewSelect(variantNames, sd.onVariantSelected)

	sd.downloadEntry = widget.NewEntry()
	sd.downloadEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinDownloadMillis, config.MaxDownloadMillis))
	sd.checkmarkEntry = widget.NewEntry()
	sd.checkmarkEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinCheckmarkMillis, config.MaxCheckmarkMillis))

	sd.downloadEasing = widget.NewSelect(sd.settings.GetEasingOptions(), nil)
	sd.checkmarkEasing = widget.NewSelect(sd.settings.GetEasingOptions(), nil)

	policies := []string{}
	for _, p := range sd.settings.GetReentryPolicyOptions() {
		policies = append(policies, string(p))
	}
	sd.reentrySelect = widget.NewSelect(policies, nil)

	sd.loopCheck = widget.NewCheck(text(KeyLoopCheckmark), nil)

	languages := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languages = append(languages, code)
	}
	sort.Strings(languages)
	sd.languageSelect = widget.NewSelect(languages, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyVariant)+":"),
		sd.variantSelect,
		widget.NewSeparator(),

		widget.NewLabel(text(KeyDownloadDuration)+":"),
		sd.downloadEntry,
		widget.NewLabel(text(KeyDownloadEasing)+":"),
		sd.downloadEasing,

		widget.NewLabel(text(KeyCheckmarkDuration)+":"),
		sd.checkmarkEntry,
		widget.NewLabel(text(KeyCheckmarkEasing)+":"),
		sd.checkmarkEasing,
		sd.loopCheck,

		widget.NewLabel(text(KeyReentryPolicy)+":"),
		sd.reentrySelect,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(340, 560))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.variantSelect.SetSelected(sd.settings.GetVariant())
	sd.downloadEntry.SetText(strconv.Itoa(int(sd.settings.GetDownloadDuration() / time.Millisecond)))
	sd.checkmarkEntry.SetText(strconv.Itoa(int(sd.settings.GetCheckmarkDuration() / time.Millisecond)))
	sd.downloadEasing.SetSelected(sd.settings.GetDownloadEasing())
	sd.checkmarkEasing.SetSelected(sd.settings.GetCheckmarkEasing())
	sd.reentrySelect.SetSelected(string(sd.settings.GetReentryPolicy()))
	sd.loopCheck.SetChecked(sd.settings.GetLoopCheckmark())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onVariantSelected fills the fields with a preset; nothing is stored until Save
func (sd *SettingsDialog) onVariantSelected(name string) {
	v, ok := config.FindVariant(config.BuiltinVariants(), name)
	if !ok {
		return
	}
	sd.downloadEntry.SetText(strconv.Itoa(v.DownloadMillis))
	sd.checkmarkEntry.SetText(strconv.Itoa(v.CheckmarkMillis))
	sd.downloadEasing.SetSelected(v.DownloadEasing)
	sd.checkmarkEasing.SetSelected(v.CheckmarkEasing)
	sd.reentrySelect.SetSelected(v.Reentry)
	sd.loopCheck.SetChecked(v.LoopCheckmark)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	if err := sd.save(); err != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", sd.localization.GetText(KeyInvalidSettings), err), sd.window)
		return
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// save validates the fields and stores them
func (sd *SettingsDialog) save() error {
	downloadMillis, err := strconv.Atoi(sd.downloadEntry.Text)
	if err != nil {
		return fmt.Errorf("download duration %q: %w", sd.downloadEntry.Text, err)
	}
	checkmarkMillis, err := strconv.Atoi(sd.checkmarkEntry.Text)
	if err != nil {
		return fmt.Errorf("checkmark duration %q: %w", sd.checkmarkEntry.Text, err)
	}

	if sd.variantSelect.Selected != "" {
		if v, ok := config.FindVariant(config.BuiltinVariants(), sd.variantSelect.Selected); ok {
			if err := sd.settings.ApplyVariant(v); err != nil {
				return err
			}
		}
	}

	// Individual fields override the preset
	sd.settings.SetDownloadDuration(time.Duration(downloadMillis) * time.Millisecond)
	sd.settings.SetCheckmarkDuration(time.Duration(checkmarkMillis) * time.Millisecond)
	if sd.downloadEasing.Selected != "" {
		sd.settings.SetDownloadEasing(sd.downloadEasing.Selected)
	}
	if sd.checkmarkEasing.Selected != "" {
		sd.settings.SetCheckmarkEasing(sd.checkmarkEasing.Selected)
	}
	if sd.reentrySelect.Selected != "" {
		policy, err := transition.ParseReentryPolicy(sd.reentrySelect.Selected)
		if err != nil {
			return err
		}
		sd.settings.SetReentryPolicy(policy)
	}
	sd.settings.SetLoopCheckmark(sd.loopCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	return nil
}
