package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/redsea-eng/englib/internal/config"
	"github.com/redsea-eng/englib/internal/model"
	"github.com/redsea-eng/englib/internal/session"
	"github.com/redsea-eng/englib/internal/stats"
	"github.com/redsea-eng/englib/internal/store"
)

// RootUI represents the main UI structure. It renders whatever screen the
// session router currently points at and rebuilds the content whenever the
// store or the router changes.
type RootUI struct {
	window       fyne.Window
	store        *store.Store
	router       *session.Router
	stats        *stats.Aggregator
	settings     *config.Settings
	localization *Localization
	guestTimer   *session.GuestTimer
	logos        *Logos

	content *fyne.Container
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, st *store.Store, router *session.Router, agg *stats.Aggregator) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		store:        st,
		router:       router,
		stats:        agg,
		settings:     settings,
		localization: localization,
		guestTimer:   session.NewGuestTimer(),
		logos:        NewLogos(),
		content:      container.NewStack(),
	}

	log.Printf("RootUI initialized, showing %s", router.Current())

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Re-render after every store mutation
	st.SetChangeCallback(ui.refresh)

	window.SetContent(ui.content)
	ui.Render()
	return ui
}

// Render rebuilds the content for the current router state. Must run on the
// UI thread; use refresh from callbacks and goroutines.
func (ui *RootUI) Render() {
	view := ui.router.Current()

	var screen fyne.CanvasObject
	switch view {
	case session.ViewLogin:
		screen = ui.makeLoginScreen()
	case session.ViewHome:
		screen = ui.withChrome(ui.makeHomeScreen())
	case session.ViewSemesterSelect:
		screen = ui.withChrome(ui.makeSemesterScreen())
	case session.ViewCourseList:
		screen = ui.withChrome(ui.makeCourseListScreen())
	case session.ViewCourseDetails:
		screen = ui.withChrome(ui.makeCourseDetailsScreen())
	case session.ViewDiscussion:
		screen = ui.withChrome(ui.makeDiscussionScreen())
	case session.ViewRootDashboard:
		screen = ui.withChrome(ui.makeDashboardScreen())
	case session.ViewAdminPanel:
		screen = ui.withChrome(ui.makeAdminPanelScreen())
	default:
		screen = ui.makeLoginScreen()
	}

	ui.content.Objects = []fyne.CanvasObject{screen}
	ui.content.Refresh()
}

// refresh schedules a re-render on the UI thread
func (ui *RootUI) refresh() {
	fyne.Do(ui.Render)
}

// withChrome wraps a screen with the header and navigation bar shown on every
// authenticated view
func (ui *RootUI) withChrome(body fyne.CanvasObject) fyne.CanvasObject {
	top := container.NewVBox(ui.makeHeader(), ui.makeNavBar(), widget.NewSeparator())
	return container.NewBorder(top, nil, nil, nil, body)
}

// makeHeader builds the logo banner with the welcome line and logout button
func (ui *RootUI) makeHeader() fyne.CanvasObject {
	title := widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	college := widget.NewLabel(ui.localization.GetText(KeyCollegeName))

	left := container.NewHBox()
	if res := ui.logos.University(); res != nil {
		img := canvas.NewImageFromResource(res)
		img.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		img.FillMode = canvas.ImageFillContain
		left.Add(img)
	}
	left.Add(container.NewVBox(title, college))

	right := container.NewHBox()
	if user, ok := ui.router.CurrentUser(); ok {
		welcome := widget.NewLabel(fmt.Sprintf(ui.localization.GetText(KeyWelcome), user.Name))
		right.Add(welcome)
	}
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	right.Add(settingsBtn)
	logoutBtn := widget.NewButton(ui.localization.GetText(KeyLogout), ui.doLogout)
	right.Add(logoutBtn)
	if res := ui.logos.College(); res != nil {
		img := canvas.NewImageFromResource(res)
		img.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		img.FillMode = canvas.ImageFillContain
		right.Add(img)
	}

	return container.NewBorder(nil, nil, left, right)
}

// makeNavBar builds the navigation row. Dashboard and user management entries
// appear only for the roles allowed to open them.
func (ui *RootUI) makeNavBar() fyne.CanvasObject {
	bar := container.NewHBox(
		widget.NewButton(ui.localization.GetText(KeyBack), ui.onBack),
		widget.NewButton(ui.localization.GetText(KeyHome), ui.onHome),
	)

	user, ok := ui.router.CurrentUser()
	if !ok {
		return bar
	}
	if user.Role == model.RoleRoot {
		bar.Add(widget.NewButton(ui.localization.GetText(KeyDashboard), ui.onOpenDashboard))
	}
	if user.Role.IsStaff() {
		bar.Add(widget.NewButton(ui.localization.GetText(KeyAdminPanel), ui.onOpenAdminPanel))
	}
	return bar
}

// completeLogin starts the session for an authenticated or guest user
func (ui *RootUI) completeLogin(user model.User) {
	if err := ui.router.Login(user); err != nil {
		log.Printf("login rejected for %s: %v", user.Username, err)
		return
	}
	ui.stats.RecordLogin(user)
	log.Printf("session started: %s (%s)", user.Username, user.Role)

	if user.Role.IsGuest() {
		duration := time.Duration(ui.settings.GetGuestSessionMinutes()) * time.Minute
		ui.guestTimer.Start(duration, ui.onGuestExpired)
	}

	ui.Render()
}

// onGuestExpired ends the guest session once the countdown fires
func (ui *RootUI) onGuestExpired() {
	log.Printf("guest session expired")
	fyne.Do(func() {
		dialog.ShowInformation(
			ui.localization.GetText(KeyAppTitle),
			ui.localization.GetText(KeyGuestExpired),
			ui.window,
		)
		ui.doLogout()
	})
}

// doLogout ends the current session from any screen
func (ui *RootUI) doLogout() {
	user, ok := ui.router.CurrentUser()
	if !ok {
		return
	}
	ui.guestTimer.Cancel()
	ui.stats.RecordLogout(user)
	ui.router.Logout()
	log.Printf("session ended: %s", user.Username)
	ui.Render()
}

// onBack performs the screen-specific back transition
func (ui *RootUI) onBack() {
	ui.router.Back()
	ui.Render()
}

// onHome returns to the department selection
func (ui *RootUI) onHome() {
	ui.router.GoHome()
	ui.Render()
}

// onOpenDashboard enters the ROOT dashboard
func (ui *RootUI) onOpenDashboard() {
	if err := ui.router.OpenDashboard(); err != nil {
		log.Printf("dashboard refused: %v", err)
		return
	}
	ui.Render()
}

// onOpenAdminPanel enters user management
func (ui *RootUI) onOpenAdminPanel() {
	if err := ui.router.OpenAdminPanel(); err != nil {
		log.Printf("admin panel refused: %v", err)
		return
	}
	ui.Render()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
		ui.Render()
	})
}

// errorText maps a store failure to its localized message
func (ui *RootUI) errorText(err error) string {
	switch {
	case errors.Is(err, store.ErrInvalidCredentials):
		return ui.localization.GetText(KeyInvalidCredentials)
	case errors.Is(err, store.ErrAccountLocked):
		return ui.localization.GetText(KeyAccountLocked)
	case errors.Is(err, store.ErrOversizeFile):
		return ui.localization.GetText(KeyFileTooLarge)
	case errors.Is(err, store.ErrUnsupportedExtension):
		return ui.localization.GetText(KeyBadExtension)
	case errors.Is(err, store.ErrOversizeImage):
		return ui.localization.GetText(KeyImageTooLarge)
	case errors.Is(err, store.ErrEmptyMessage):
		return ui.localization.GetText(KeyEmptyMessage)
	case errors.Is(err, store.ErrDuplicateUsername):
		return ui.localization.GetText(KeyDuplicateUsername)
	case errors.Is(err, store.ErrProtectedAccount):
		return ui.localization.GetText(KeyDenyProtectedAccount)
	default:
		return err.Error()
	}
}

// showError presents a localized failure message
func (ui *RootUI) showError(err error) {
	log.Printf("operation failed: %v", err)
	dialog.ShowInformation(ui.localization.GetText(KeyError), ui.errorText(err), ui.window)
}

// showDenied presents the localized wording of a policy refusal
func (ui *RootUI) showDenied(text string) {
	dialog.ShowInformation(ui.localization.GetText(KeyError), text, ui.window)
}
