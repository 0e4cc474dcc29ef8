package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/redsea-eng/englib/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect   *widget.Select
	downloadDirEntry *widget.Entry
	guestMinsEntry   *widget.Entry
}

// ShowSettingsDialog builds and shows the settings dialog. onSaved runs after
// a confirmed save.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Language selection, codes in a fixed order
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Download directory selection
	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	// Guest session length
	sd.guestMinsEntry = widget.NewEntry()
	sd.guestMinsEntry.SetPlaceHolder("5-240")

	form := container.NewVBox(
		widget.NewLabel(IconLanguage+" "+l.GetText(KeyLanguage)),
		sd.languageSelect,

		widget.NewLabel(l.GetText(KeyDownloadDirectory)),
		downloadDirRow,

		widget.NewLabel(l.GetText(KeyGuestMinutes)),
		sd.guestMinsEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(DialogWidth, DialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.guestMinsEntry.SetText(strconv.Itoa(sd.settings.GetGuestSessionMinutes()))
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.downloadDirEntry.Text != "" {
		sd.settings.SetDownloadDirectory(sd.downloadDirEntry.Text)
	}

	if minutes, err := strconv.Atoi(sd.guestMinsEntry.Text); err == nil {
		sd.settings.SetGuestSessionMinutes(minutes)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
