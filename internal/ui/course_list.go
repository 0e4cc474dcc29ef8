package ui

import (
	"fmt"
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

// makeCourseListScreen builds the course list for the selected department and
// semester, with content management for staff
func (ui *RootUI) makeCourseListScreen() fyne.CanvasObject {
	l := ui.localization
	dept, semester, _ := ui.router.Selection()
	user, _ := ui.router.CurrentUser()
	courses := ui.store.CoursesBy(dept, semester)

	heading := widget.NewLabel(fmt.Sprintf("%s%s%s",
		ui.deptLabel(dept),
		MiddleDotSeparator,
		fmt.Sprintf(l.GetText(KeySemesterFormat), semester)))
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter

	list := container.NewVBox()
	if len(courses) == 0 {
		empty := widget.NewLabel(l.GetText(KeyNoCourses))
		empty.Alignment = fyne.TextAlignCenter
		list.Add(empty)
	}
	for _, course := range courses {
		list.Add(ui.makeCourseRow(user, course))
	}

	content := container.NewVBox(heading, list)

	if decision := policy.CanManageContent(user); decision.Allowed {
		addBtn := widget.NewButton(IconBook+" "+l.GetText(KeyAddCourse), ui.onAddCourse)
		addBtn.Importance = widget.HighImportance
		content.Add(container.NewCenter(addBtn))
	}

	return container.NewVScroll(content)
}

// makeCourseRow builds one course card with its open, discussion and delete
// actions
func (ui *RootUI) makeCourseRow(user model.User, course model.Course) fyne.CanvasObject {
	l := ui.localization

	openBtn := widget.NewButton(IconFolder+" "+l.GetText(KeyOpenCourse), func() {
		if err := ui.router.OpenCourse(course.ID); err != nil {
			log.Printf("open course refused: %v", err)
			return
		}
		ui.Render()
	})
	discussionBtn := widget.NewButton(IconChat+" "+l.GetText(KeyDiscussion), func() {
		if err := ui.router.OpenDiscussion(course.ID); err != nil {
			log.Printf("open discussion refused: %v", err)
			return
		}
		ui.Render()
	})

	actions := container.NewHBox(openBtn, discussionBtn)
	if decision := policy.CanManageContent(user); decision.Allowed {
		deleteBtn := widget.NewButton(IconDelete, func() { ui.onDeleteCourse(course) })
		deleteBtn.Importance = widget.DangerImportance
		actions.Add(deleteBtn)
	}

	subtitle := fmt.Sprintf("%s: %s%s%s",
		l.GetText(KeyLastUpdate), FormatTime(course.LastUpdate),
		MiddleDotSeparator, course.UpdatedBy)
	return widget.NewCard(course.Name, subtitle, actions)
}

// onAddCourse prompts for a course name and creates the course
func (ui *RootUI) onAddCourse() {
	l := ui.localization
	user, _ := ui.router.CurrentUser()
	if decision := policy.CanManageContent(user); !decision.Allowed {
		ui.showDenied(l.DenyText(decision.Reason))
		return
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder(l.GetText(KeyCourseName))

	dialog.ShowCustomConfirm(l.GetText(KeyAddCourse), l.GetText(KeyAdd), l.GetText(KeyCancel),
		nameEntry,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			name := strings.TrimSpace(security.Sanitize(nameEntry.Text))
			if name == "" {
				return
			}
			dept, semester, _ := ui.router.Selection()
			course, err := ui.store.AddCourse(name, dept, semester, user.Name)
			if err != nil {
				ui.showError(err)
				return
			}
			ui.stats.RecordActivity(fmt.Sprintf("course added: %s", course.Name))
			log.Printf("course created: %s (%s, semester %d)", course.Name, dept, semester)
		},
		ui.window)
}

// onDeleteCourse confirms and removes a course with all of its files
func (ui *RootUI) onDeleteCourse(course model.Course) {
	l := ui.localization
	user, _ := ui.router.CurrentUser()
	if decision := policy.CanManageContent(user); !decision.Allowed {
		ui.showDenied(l.DenyText(decision.Reason))
		return
	}

	dialog.ShowConfirm(l.GetText(KeyDeleteCourse), l.GetText(KeyConfirmDeleteCourse),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := ui.store.DeleteCourse(course.ID); err != nil {
				ui.showError(err)
				return
			}
			ui.stats.RecordActivity(fmt.Sprintf("course removed: %s", course.Name))
			log.Printf("course deleted: %s", course.Name)
		},
		ui.window)
}
