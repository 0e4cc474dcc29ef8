package ui

import (
	"sort"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/redsea-eng/englib/internal/config"
)

func TestSettingsDialog_LanguageOptionsStableOrder(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app)
	localization := NewLocalization()

	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}
	sd.createUI()

	options := sd.languageSelect.Options
	if len(options) != len(settings.GetLanguageOptions()) {
		t.Fatalf("Expected %d language options, got %d", len(settings.GetLanguageOptions()), len(options))
	}
	if !sort.StringsAreSorted(options) {
		t.Errorf("Language options should be in a fixed sorted order, got %v", options)
	}
}
