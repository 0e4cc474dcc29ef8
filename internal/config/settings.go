package config

import (
	"fyne.io/fyne/v2"

	"github.com/redsea-eng/englib/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage            = "app_language"
	KeyDownloadDir         = "download_directory"
	KeyGuestSessionMinutes = "guest_session_minutes"
)

// Default values
const (
	DefaultLanguage            = "ar"
	DefaultGuestSessionMinutes = 30
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured interface language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the interface language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"ar": "العربية",
		"en": "English",
	}
}

// GetDownloadDirectory returns the directory files are saved into
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the directory files are saved into
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetGuestSessionMinutes returns how long a guest session lasts before
// automatic logout
func (s *Settings) GetGuestSessionMinutes() int {
	value := s.app.Preferences().Int(KeyGuestSessionMinutes)
	if value <= 0 {
		s.SetGuestSessionMinutes(DefaultGuestSessionMinutes)
		return DefaultGuestSessionMinutes
	}
	return value
}

// SetGuestSessionMinutes sets the guest session length
func (s *Settings) SetGuestSessionMinutes(minutes int) {
	if minutes < 5 {
		minutes = 5
	}
	if minutes > 240 {
		minutes = 240
	}
	s.app.Preferences().SetInt(KeyGuestSessionMinutes, minutes)
}
