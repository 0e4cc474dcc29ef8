package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"ar", "en"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestGuestSessionMinutes(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	minutes := settings.GetGuestSessionMinutes()
	if minutes != DefaultGuestSessionMinutes {
		t.Errorf("Expected default guest session %d, got %d", DefaultGuestSessionMinutes, minutes)
	}

	// Test setting custom value
	settings.SetGuestSessionMinutes(60)

	retrieved := settings.GetGuestSessionMinutes()
	if retrieved != 60 {
		t.Errorf("Expected guest session 60, got %d", retrieved)
	}

	// Test boundary values
	settings.SetGuestSessionMinutes(1) // Should be clamped to 5
	if settings.GetGuestSessionMinutes() != 5 {
		t.Error("Guest session should be clamped to minimum 5")
	}

	settings.SetGuestSessionMinutes(500) // Should be clamped to 240
	if settings.GetGuestSessionMinutes() != 240 {
		t.Error("Guest session should be clamped to maximum 240")
	}
}
