package session

import (
	"errors"
	"sync"

	"github.com/redsea-eng/englib/internal/model"
)

// ViewState represents the screen currently shown
type ViewState string

const (
	ViewLogin          ViewState = "LOGIN"
	ViewHome           ViewState = "HOME"
	ViewSemesterSelect ViewState = "SEMESTER_SELECT"
	ViewCourseList     ViewState = "COURSE_LIST"
	ViewCourseDetails  ViewState = "COURSE_DETAILS"
	ViewDiscussion     ViewState = "DISCUSSION"
	ViewRootDashboard  ViewState = "ROOT_DASHBOARD"
	ViewAdminPanel     ViewState = "ADMIN_PANEL"
)

// String returns the string representation of ViewState
func (v ViewState) String() string {
	return string(v)
}

// Transition failures
var (
	ErrNotAuthenticated  = errors.New("no authenticated session")
	ErrAlreadyLoggedIn   = errors.New("a session is already active")
	ErrSelectionRequired = errors.New("required selection is missing")
	ErrViewNotPermitted  = errors.New("view is not permitted for this role")
	ErrInvalidSemester   = errors.New("semester is out of range")
)

// Router is the session state machine. The zero screen is LOGIN; LOGIN is
// re-entrant via Logout from any state.
type Router struct {
	mu       sync.Mutex
	view     ViewState
	user     model.User
	loggedIn bool
	dept     model.Department
	semester int
	courseID string
}

// NewRouter creates a router showing the login screen
func NewRouter() *Router {
	return &Router{view: ViewLogin}
}

// Current returns the screen being shown
func (r *Router) Current() ViewState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view
}

// CurrentUser returns the authenticated user, if any
func (r *Router) CurrentUser() (model.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.user, r.loggedIn
}

// Selection returns the navigation cursor: selected department, semester,
// and course id. Zero values mean nothing is selected at that level.
func (r *Router) Selection() (model.Department, int, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dept, r.semester, r.courseID
}

// Login starts a session for the given user and enters HOME
func (r *Router) Login(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loggedIn {
		return ErrAlreadyLoggedIn
	}
	r.user = user
	r.loggedIn = true
	r.view = ViewHome
	return nil
}

// Logout ends the session from any state, clearing every selection
func (r *Router) Logout() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.user = model.User{}
	r.loggedIn = false
	r.dept = ""
	r.semester = 0
	r.courseID = ""
	r.view = ViewLogin
}

// SelectDepartment records the department choice and enters SEMESTER_SELECT
func (r *Router) SelectDepartment(dept model.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loggedIn {
		return ErrNotAuthenticated
	}
	r.dept = dept
	r.view = ViewSemesterSelect
	return nil
}

// SelectSemester records the semester choice and enters COURSE_LIST. A
// department must already be selected.
func (r *Router) SelectSemester(semester int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loggedIn {
		return ErrNotAuthenticated
	}
	if r.dept == "" {
		return ErrSelectionRequired
	}
	if !model.IsValidSemester(semester) {
		return ErrInvalidSemester
	}
	r.semester = semester
	r.view = ViewCourseList
	return nil
}

// OpenCourse records the course choice and enters COURSE_DETAILS
func (r *Router) OpenCourse(courseID string) error {
	return r.openCourseView(courseID, ViewCourseDetails)
}

// OpenDiscussion records the course choice and enters DISCUSSION
func (r *Router) OpenDiscussion(courseID string) error {
	return r.openCourseView(courseID, ViewDiscussion)
}

func (r *Router) openCourseView(courseID string, view ViewState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loggedIn {
		return ErrNotAuthenticated
	}
	if r.dept == "" || r.semester == 0 || courseID == "" {
		return ErrSelectionRequired
	}
	r.courseID = courseID
	r.view = view
	return nil
}

// OpenDashboard enters ROOT_DASHBOARD. ROOT only.
func (r *Router) OpenDashboard() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loggedIn {
		return ErrNotAuthenticated
	}
	if r.user.Role != model.RoleRoot {
		return ErrViewNotPermitted
	}
	r.view = ViewRootDashboard
	return nil
}

// OpenAdminPanel enters ADMIN_PANEL. ROOT and ADMIN only.
func (r *Router) OpenAdminPanel() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loggedIn {
		return ErrNotAuthenticated
	}
	if !r.user.Role.IsStaff() {
		return ErrViewNotPermitted
	}
	r.view = ViewAdminPanel
	return nil
}

// Back performs the state-specific back transition. There is no history
// stack: each screen has exactly one predecessor, whatever the path taken.
func (r *Router) Back() {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.view {
	case ViewSemesterSelect:
		r.view = ViewHome
	case ViewCourseList:
		r.view = ViewSemesterSelect
	case ViewCourseDetails, ViewDiscussion:
		r.courseID = ""
		r.view = ViewCourseList
	case ViewRootDashboard, ViewAdminPanel:
		r.view = ViewHome
	}
}

// GoHome returns to HOME directly, dropping the navigation cursor
func (r *Router) GoHome() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loggedIn {
		return
	}
	r.dept = ""
	r.semester = 0
	r.courseID = ""
	r.view = ViewHome
}
