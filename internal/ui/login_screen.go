package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/redsea-eng/englib/internal/security"
	"github.com/redsea-eng/englib/internal/store"
)

// makeLoginScreen builds the entry screen with the member and guest tabs
func (ui *RootUI) makeLoginScreen() fyne.CanvasObject {
	l := ui.localization

	title := widget.NewLabel(l.GetText(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter
	college := widget.NewLabel(l.GetText(KeyCollegeName))
	college.Alignment = fyne.TextAlignCenter

	banner := container.NewVBox()
	if res := ui.logos.University(); res != nil {
		img := canvas.NewImageFromResource(res)
		img.SetMinSize(fyne.NewSize(LogoSize*2, LogoSize*2))
		img.FillMode = canvas.ImageFillContain
		banner.Add(img)
	}
	banner.Add(title)
	banner.Add(college)

	errorLabel := widget.NewLabel("")
	errorLabel.Alignment = fyne.TextAlignCenter
	errorLabel.Hide()
	showError := func(text string) {
		errorLabel.SetText(text)
		errorLabel.Show()
	}

	// Member tab
	usernameEntry := widget.NewEntry()
	usernameEntry.SetPlaceHolder(l.GetText(KeyUsername))
	passwordEntry := widget.NewPasswordEntry()
	passwordEntry.SetPlaceHolder(l.GetText(KeyPassword))
	passwordEntry.OnChanged = func(text string) {
		if len(text) > MaxPasswordLength {
			passwordEntry.SetText(text[:MaxPasswordLength])
		}
	}

	attemptLogin := func() {
		username := strings.TrimSpace(usernameEntry.Text)
		password := passwordEntry.Text
		if username == "" || password == "" {
			showError(l.GetText(KeyEmptyFields))
			return
		}
		if security.IsSuspicious(username) || security.IsSuspicious(password) {
			showError(l.GetText(KeySuspiciousInput))
			return
		}

		user, err := ui.store.Authenticate(username, password)
		if err != nil {
			showError(ui.errorText(err))
			return
		}
		ui.completeLogin(user)
	}

	passwordEntry.OnSubmitted = func(string) { attemptLogin() }
	loginBtn := widget.NewButton(l.GetText(KeyLoginButton), attemptLogin)
	loginBtn.Importance = widget.HighImportance

	memberForm := container.NewVBox(usernameEntry, passwordEntry, loginBtn)

	// Guest tab
	guestNameEntry := widget.NewEntry()
	guestNameEntry.SetPlaceHolder(l.GetText(KeyGuestName))

	enterAsGuest := func() {
		name := strings.TrimSpace(guestNameEntry.Text)
		if name == "" {
			showError(l.GetText(KeyEmptyFields))
			return
		}
		if security.IsSuspicious(name) {
			showError(l.GetText(KeySuspiciousInput))
			return
		}
		ui.completeLogin(store.NewGuest(security.Sanitize(name)))
	}

	guestNameEntry.OnSubmitted = func(string) { enterAsGuest() }
	guestBtn := widget.NewButton(l.GetText(KeyGuestEnter), enterAsGuest)

	guestForm := container.NewVBox(guestNameEntry, guestBtn)

	tabs := container.NewAppTabs(
		container.NewTabItem(l.GetText(KeyMemberTab), memberForm),
		container.NewTabItem(l.GetText(KeyGuestTab), guestForm),
	)

	card := widget.NewCard(l.GetText(KeyLoginTitle), "", container.NewVBox(tabs, errorLabel))

	footer := widget.NewLabel(l.GetText(KeyLoginFooter))
	footer.Alignment = fyne.TextAlignCenter

	return container.NewCenter(container.NewVBox(banner, card, footer))
}
