package ui

import (
	"io"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/redsea-eng/englib/internal/model"
	"github.com/redsea-eng/englib/internal/policy"
	"github.com/redsea-eng/englib/internal/security"
)

// makeDiscussionScreen builds the course discussion forum
func (ui *RootUI) makeDiscussionScreen() fyne.CanvasObject {
	l := ui.localization
	_, _, courseID := ui.router.Selection()
	course, ok := ui.store.CourseByID(courseID)
	if !ok {
		ui.router.Back()
		return ui.makeCourseListScreen()
	}
	user, _ := ui.router.CurrentUser()
	messages := ui.store.MessagesFor(courseID)

	heading := widget.NewLabel(IconChat + " " + course.Name + MiddleDotSeparator + l.GetText(KeyDiscussion))
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter

	feed := container.NewVBox()
	for _, message := range messages {
		feed.Add(ui.makeMessageBubble(user, message))
	}
	scroll := container.NewVScroll(feed)
	scroll.ScrollToBottom()

	var composer fyne.CanvasObject
	if decision := policy.CanSendMessage(user); decision.Allowed {
		composer = ui.makeComposer(courseID, user)
	} else {
		notice := widget.NewLabel(l.DenyText(decision.Reason))
		notice.Alignment = fyne.TextAlignCenter
		composer = notice
	}

	return container.NewBorder(heading, composer, nil, nil, scroll)
}

// makeMessageBubble builds one forum post with its role-styled sender line
func (ui *RootUI) makeMessageBubble(viewer model.User, message model.Message) fyne.CanvasObject {
	l := ui.localization

	sender := widget.NewLabel(message.SenderName +
		" (" + ui.roleLabel(message.SenderRole) + ")" +
		MiddleDotSeparator + FormatTime(message.SentAt))
	// Staff posts stand out from student and guest posts.
	if message.SenderRole.IsStaff() {
		sender.TextStyle = fyne.TextStyle{Bold: true}
	}

	body := container.NewVBox()
	if message.Content != "" {
		text := widget.NewLabel(message.Content)
		text.Wrapping = fyne.TextWrapWord
		body.Add(text)
	}
	if message.HasImage() {
		img := canvas.NewImageFromResource(fyne.NewStaticResource(message.ID+".img", message.Image))
		img.SetMinSize(fyne.NewSize(MessageImageMin, MessageImageMin))
		img.FillMode = canvas.ImageFillContain
		body.Add(img)
	}

	header := container.NewHBox(sender)
	if decision := policy.CanDeleteMessage(viewer); decision.Allowed {
		deleteBtn := widget.NewButton(IconDelete, func() {
			dialog.ShowConfirm(l.GetText(KeyDelete), l.GetText(KeyConfirmDeleteMessage),
				func(confirmed bool) {
					if !confirmed {
						return
					}
					if err := ui.store.DeleteMessage(message.ID); err != nil {
						ui.showError(err)
					}
				},
				ui.window)
		})
		deleteBtn.Importance = widget.LowImportance
		header.Add(deleteBtn)
	}

	return widget.NewCard("", "", container.NewVBox(header, body))
}

// makeComposer builds the message entry row with the image attachment button
func (ui *RootUI) makeComposer(courseID string, user model.User) fyne.CanvasObject {
	l := ui.localization

	entry := widget.NewMultiLineEntry()
	entry.SetPlaceHolder(l.GetText(KeyMessagePlaceholder))
	entry.Wrapping = fyne.TextWrapWord

	var pendingImage []byte
	attachLabel := widget.NewLabel("")

	attachBtn := widget.NewButton(l.GetText(KeyAttachImage), func() {
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
			pendingImage = content
			attachLabel.SetText(reader.URI().Name() + " (" + FormatSize(int64(len(content))) + ")")
		}, ui.window)
	})

	send := func() {
		content := strings.TrimSpace(security.Sanitize(entry.Text))
		if _, err := ui.store.AddMessage(courseID, user, content, pendingImage); err != nil {
			ui.showError(err)
			return
		}
		log.Printf("message posted by %s in course %s", user.Username, courseID)
		pendingImage = nil
		entry.SetText("")
		attachLabel.SetText("")
	}

	sendBtn := widget.NewButton(l.GetText(KeySend), send)
	sendBtn.Importance = widget.HighImportance
	entry.OnSubmitted = func(string) { send() }

	return container.NewVBox(
		widget.NewSeparator(),
		container.NewBorder(nil, nil, attachBtn, sendBtn, entry),
		attachLabel,
	)
}
