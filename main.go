package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/redsea-eng/englib/internal/config"
	"github.com/redsea-eng/englib/internal/platform"
	"github.com/redsea-eng/englib/internal/session"
	"github.com/redsea-eng/englib/internal/stats"
	"github.com/redsea-eng/englib/internal/store"
	"github.com/redsea-eng/englib/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "org.redsea-eng.englib"
	AppName = "Engineering E-Library"

	WindowWidth  = 960
	WindowHeight = 640
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply library theme
	myApp.Settings().SetTheme(ui.NewLibraryTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Ensure the download directory exists before the first save dialog
	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Printf("failed to ensure downloads dir: %v", err)
	}

	// Initialize services. All state is in memory; a restart returns the
	// library to its seeded form.
	st := store.New()
	router := session.NewRouter()
	aggregator := stats.New(st.Users())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, st, router, aggregator)

	// Show and run
	myWindow.ShowAndRun()
}
