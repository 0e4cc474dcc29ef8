package ui

import (
	"fmt"
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/redsea-eng/englib/internal/model"
	"github.com/redsea-eng/englib/internal/platform"
	"github.com/redsea-eng/englib/internal/policy"
	"github.com/redsea-eng/englib/internal/store"
)

// categoryLabel returns the localized display name of a material category
func (ui *RootUI) categoryLabel(cat model.MaterialCategory) string {
	switch cat {
	case model.CategoryLecture:
		return ui.localization.GetText(KeyCategoryLecture)
	case model.CategoryReference:
		return ui.localization.GetText(KeyCategoryReference)
	case model.CategoryExercise:
		return ui.localization.GetText(KeyCategoryExercise)
	case model.CategoryExam:
		return ui.localization.GetText(KeyCategoryExam)
	default:
		return string(cat)
	}
}

// makeCourseDetailsScreen builds the per-category material browser for the
// selected course
func (ui *RootUI) makeCourseDetailsScreen() fyne.CanvasObject {
	_, _, courseID := ui.router.Selection()
	course, ok := ui.store.CourseByID(courseID)
	if !ok {
		// Course was deleted under us; fall back to the course list.
		ui.router.Back()
		return ui.makeCourseListScreen()
	}
	user, _ := ui.router.CurrentUser()

	heading := widget.NewLabel(course.Name)
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter

	tabs := container.NewAppTabs()
	for _, cat := range model.Categories() {
		category := cat // capture for closure
		tabs.Append(container.NewTabItem(ui.categoryLabel(category),
			ui.makeCategoryPane(user, course, category)))
	}

	return container.NewBorder(heading, nil, nil, nil, tabs)
}

// makeCategoryPane builds one category's file list with upload for staff
func (ui *RootUI) makeCategoryPane(user model.User, course model.Course, category model.MaterialCategory) fyne.CanvasObject {
	l := ui.localization
	files := course.FilesIn(category)

	list := container.NewVBox()
	if len(files) == 0 {
		empty := widget.NewLabel(l.GetText(KeyNoFiles))
		empty.Alignment = fyne.TextAlignCenter
		list.Add(empty)
	}
	for _, file := range files {
		list.Add(ui.makeFileRow(user, course, file))
	}

	pane := container.NewVBox(list)
	if decision := policy.CanManageContent(user); decision.Allowed {
		uploadBtn := widget.NewButton(IconFile+" "+l.GetText(KeyUploadFile), func() {
			ui.onUploadFile(course, category)
		})
		uploadBtn.Importance = widget.HighImportance
		pane.Add(container.NewCenter(uploadBtn))
	}

	return container.NewVScroll(pane)
}

// makeFileRow builds one material file row with download and delete actions
func (ui *RootUI) makeFileRow(user model.User, course model.Course, file model.MaterialFile) fyne.CanvasObject {
	l := ui.localization

	downloadBtn := widget.NewButton(l.GetText(KeyDownload), func() { ui.onDownloadFile(file) })

	actions := container.NewHBox(downloadBtn)
	if decision := policy.CanManageContent(user); decision.Allowed {
		deleteBtn := widget.NewButton(IconDelete, func() { ui.onDeleteFile(course, file) })
		deleteBtn.Importance = widget.DangerImportance
		actions.Add(deleteBtn)
	}

	subtitle := fmt.Sprintf("%s%s%s: %s%s%s",
		FormatSize(file.Size),
		MiddleDotSeparator, l.GetText(KeyUploadedBy), file.UploadedBy,
		MiddleDotSeparator, FormatTime(file.UploadedAt))
	return widget.NewCard(file.Name, subtitle, actions)
}

// onUploadFile opens the file picker and attaches the chosen file to the
// course under the given category
func (ui *RootUI) onUploadFile(course model.Course, category model.MaterialCategory) {
	user, _ := ui.router.CurrentUser()
	if decision := policy.CanManageContent(user); !decision.Allowed {
		ui.showDenied(ui.localization.DenyText(decision.Reason))
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

		upload := store.UploadFromName(reader.URI().Name(), content)
		file, err := ui.store.AddFile(course.ID, upload, category, user.Name)
		if err != nil {
			ui.showError(err)
			return
		}
		ui.stats.RecordActivity(fmt.Sprintf("file uploaded: %s", file.Name))
		log.Printf("file uploaded: %s (%s, %d bytes)", file.Name, category, file.Size)
	}, ui.window)
}

// onDownloadFile saves a material file to disk and reveals it in the system
// file manager
func (ui *RootUI) onDownloadFile(file model.MaterialFile) {
	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer writer.Close()

		if _, err := writer.Write(file.Content); err != nil {
			ui.showError(err)
			return
		}

		ui.stats.RecordDownload(file.Name)
		ui.stats.RecordActivity(fmt.Sprintf("file downloaded: %s", file.Name))
		log.Printf("file saved: %s -> %s", file.Name, writer.URI().Path())

		dialog.ShowInformation(ui.localization.GetText(KeyDownload),
			ui.localization.GetText(KeyFileSaved), ui.window)

		if err := platform.OpenFileInManager(writer.URI().Path()); err != nil {
			log.Printf("reveal failed for %s: %v", writer.URI().Path(), err)
		}
	}, ui.window)
	saveDialog.SetFileName(file.Name)
	saveDialog.Show()
}

// onDeleteFile confirms and removes one material file
func (ui *RootUI) onDeleteFile(course model.Course, file model.MaterialFile) {
	l := ui.localization
	user, _ := ui.router.CurrentUser()
	if decision := policy.CanManageContent(user); !decision.Allowed {
		ui.showDenied(l.DenyText(decision.Reason))
		return
	}

	dialog.ShowConfirm(l.GetText(KeyDeleteFile), l.GetText(KeyConfirmDeleteFile),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := ui.store.DeleteFile(course.ID, file.ID, user.Name); err != nil {
				ui.showError(err)
				return
			}
			ui.stats.RecordActivity(fmt.Sprintf("file removed: %s", file.Name))
			log.Printf("file deleted: %s", file.Name)
		},
		ui.window)
}
