package ui

import (
	"fmt"
	"io"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/redsea-eng/englib/internal/model"
	"github.com/redsea-eng/englib/internal/policy"
	"github.com/redsea-eng/englib/internal/security"
)

// roleLabel returns the localized display name of a role
func (ui *RootUI) roleLabel(role model.Role) string {
	switch role {
	case model.RoleStudent:
		return ui.localization.GetText(KeyRoleStudent)
	case model.RoleAdmin:
		return ui.localization.GetText(KeyRoleAdmin)
	case model.RoleRoot:
		return ui.localization.GetText(KeyRoleRoot)
	case model.RoleGuest:
		return ui.localization.GetText(KeyRoleGuest)
	default:
		return role.String()
	}
}

// makeAdminPanelScreen builds the user management screen, with the logo
// section for ROOT
func (ui *RootUI) makeAdminPanelScreen() fyne.CanvasObject {
	l := ui.localization
	actor, _ := ui.router.CurrentUser()
	users := ui.store.Users()

	heading := widget.NewLabel(l.GetText(KeyAdminPanel))
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter

	list := container.NewVBox()
	for _, user := range users {
		list.Add(ui.makeUserRow(actor, user))
	}

	addBtn := widget.NewButton(l.GetText(KeyAddUser), func() { ui.onAddUser(actor) })
	addBtn.Importance = widget.HighImportance

	content := container.NewVBox(
		widget.NewCard(l.GetText(KeyUsers), "", list),
		container.NewCenter(addBtn),
	)

	if decision := policy.CanManageLogos(actor); decision.Allowed {
		logoRow := container.NewHBox(
			widget.NewButton(l.GetText(KeyUniversityLogo), func() { ui.onChangeLogo(actor, ui.logos.SetUniversity) }),
			widget.NewButton(l.GetText(KeyCollegeLogo), func() { ui.onChangeLogo(actor, ui.logos.SetCollege) }),
		)
		content.Add(widget.NewCard(l.GetText(KeyLogos), "", logoRow))
	}

	return container.NewVScroll(container.NewVBox(heading, content))
}

// makeUserRow builds one account row with its lock and delete actions
func (ui *RootUI) makeUserRow(actor, user model.User) fyne.CanvasObject {
	l := ui.localization

	title := user.Name
	if user.Locked {
		title += " (" + l.GetText(KeyLockedMark) + ")"
	}
	subtitle := user.Username + MiddleDotSeparator + ui.roleLabel(user.Role)

	lockText := IconLock + " " + l.GetText(KeyLock)
	if user.Locked {
		lockText = IconUnlock + " " + l.GetText(KeyUnlock)
	}
	lockBtn := widget.NewButton(lockText, func() { ui.onToggleLock(actor, user) })

	deleteBtn := widget.NewButton(IconDelete+" "+l.GetText(KeyDelete), func() { ui.onDeleteUser(actor, user) })
	deleteBtn.Importance = widget.DangerImportance

	actions := container.NewHBox(lockBtn, deleteBtn)
	return widget.NewCard(title, subtitle, actions)
}

// onAddUser prompts for the new account fields and creates the account. ROOT
// may create professors; professors create students.
func (ui *RootUI) onAddUser(actor model.User) {
	l := ui.localization

	usernameEntry := widget.NewEntry()
	usernameEntry.SetPlaceHolder(l.GetText(KeyUsername))
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder(l.GetText(KeyDisplayName))
	passwordEntry := widget.NewPasswordEntry()
	passwordEntry.SetPlaceHolder(l.GetText(KeyPassword))

	roleOptions := []string{l.GetText(KeyRoleStudent)}
	if actor.Role == model.RoleRoot {
		roleOptions = append(roleOptions, l.GetText(KeyRoleAdmin))
	}
	roleSelect := widget.NewSelect(roleOptions, nil)
	roleSelect.SetSelected(roleOptions[0])

	form := container.NewVBox(
		usernameEntry,
		nameEntry,
		passwordEntry,
		widget.NewLabel(l.GetText(KeyRole)),
		roleSelect,
	)

	confirm := dialog.NewCustomConfirm(l.GetText(KeyAddUser), l.GetText(KeyAdd), l.GetText(KeyCancel),
		form,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			username := strings.TrimSpace(usernameEntry.Text)
			name := strings.TrimSpace(security.Sanitize(nameEntry.Text))
			password := passwordEntry.Text
			if username == "" || name == "" || password == "" {
				ui.showDenied(l.GetText(KeyEmptyFields))
				return
			}
			if security.IsSuspicious(username) || security.IsSuspicious(password) {
				ui.showDenied(l.GetText(KeySuspiciousInput))
				return
			}
			if len(password) > MaxPasswordLength {
				password = password[:MaxPasswordLength]
			}

			role := model.RoleStudent
			if roleSelect.Selected == l.GetText(KeyRoleAdmin) {
				role = model.RoleAdmin
			}

			user, err := ui.store.AddUser(username, name, role, password)
			if err != nil {
				ui.showError(err)
				return
			}
			ui.stats.RecordUserAdded(user)
			log.Printf("account created: %s (%s)", user.Username, user.Role)
		},
		ui.window)
	confirm.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	confirm.Show()
}

// onToggleLock freezes or unfreezes an account after a policy check
func (ui *RootUI) onToggleLock(actor, user model.User) {
	if decision := policy.CanToggleLock(actor, user); !decision.Allowed {
		ui.showDenied(ui.localization.DenyText(decision.Reason))
		return
	}
	if err := ui.store.SetUserLocked(user.ID, !user.Locked); err != nil {
		ui.showError(err)
		return
	}
	if user.Locked {
		ui.stats.RecordActivity(fmt.Sprintf("account unfrozen: %s", user.Name))
	} else {
		ui.stats.RecordActivity(fmt.Sprintf("account frozen: %s", user.Name))
	}
	log.Printf("lock toggled for %s by %s", user.Username, actor.Username)
}

// onDeleteUser confirms and removes an account after a policy check
func (ui *RootUI) onDeleteUser(actor, user model.User) {
	l := ui.localization
	if decision := policy.CanDeleteUser(actor, user); !decision.Allowed {
		ui.showDenied(l.DenyText(decision.Reason))
		return
	}

	dialog.ShowConfirm(l.GetText(KeyDelete), l.GetText(KeyConfirmDeleteUser),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := ui.store.DeleteUser(user.ID); err != nil {
				ui.showError(err)
				return
			}
			ui.stats.RecordUserRemoved(user)
			log.Printf("account deleted: %s by %s", user.Username, actor.Username)
		},
		ui.window)
}

// onChangeLogo picks an image and installs it through the given setter
func (ui *RootUI) onChangeLogo(actor model.User, set func([]byte)) {
	l := ui.localization
	if decision := policy.CanManageLogos(actor); !decision.Allowed {
		ui.showDenied(l.DenyText(decision.Reason))
		return
	}

	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if reader == nil {
			return // cancelled
		}
		defer reader.Close()

		content, err := io.ReadAll(reader)
		if err != nil {
			ui.showError(err)
			return
		}
		if int64(len(content)) > model.MaxImageSize {
			ui.showDenied(l.GetText(KeyImageTooLarge))
			return
		}

		set(content)
		ui.stats.RecordActivity("logo updated")
		log.Printf("logo replaced by %s (%d bytes)", actor.Username, len(content))
		dialog.ShowInformation(l.GetText(KeyLogos), l.GetText(KeyLogoUpdated), ui.window)
		ui.Render()
	}, ui.window)
}
