package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/redsea-eng/englib/internal/model"
)

// FileUpload is the opaque tuple handed over by the file picker. The core
// never touches a real filesystem path.
type FileUpload struct {
	Name    string
	Ext     string
	Size    int64
	Content []byte
}

// UploadFromName builds a FileUpload deriving the extension from the filename
func UploadFromName(name string, content []byte) FileUpload {
	ext := ""
	if idx := strings.LastIndex(name, "."); idx >= 0 && idx < len(name)-1 {
		ext = strings.ToLower(name[idx+1:])
	}
	return FileUpload{
		Name:    name,
		Ext:     ext,
		Size:    int64(len(content)),
		Content: content,
	}
}

// Courses returns a snapshot of all courses
func (s *Store) Courses() []model.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]model.Course, len(s.courses))
	copy(courses, s.courses)
	return courses
}

// CoursesBy returns the courses of one department and semester. Pure query,
// no side effects.
func (s *Store) CoursesBy(dept model.Department, semester int) []model.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var courses []model.Course
	for _, c := range s.courses {
		if c.Department == dept && c.Semester == semester {
			courses = append(courses, c)
		}
	}
	return courses
}

// CourseByID returns the course with the given id
func (s *Store) CourseByID(id string) (model.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return model.Course{}, false
}

// AddCourse creates a course in the given department and semester and stamps
// it with the author
func (s *Store) AddCourse(name string, dept model.Department, semester int, author string) (model.Course, error) {
	if !model.IsValidSemester(semester) {
		return model.Course{}, fmt.Errorf("add course %q: semester %d: %w", name, semester, ErrInvalidSemester)
	}

	course := model.Course{
		ID:         uuid.NewString(),
		Name:       name,
		Department: dept,
		Semester:   semester,
		LastUpdate: time.Now(),
		UpdatedBy:  author,
	}

	s.mu.Lock()
	courses := make([]model.Course, len(s.courses), len(s.courses)+1)
	copy(courses, s.courses)
	s.courses = append(courses, course)
	s.mu.Unlock()

	s.notify()
	return course, nil
}

// DeleteCourse removes a course and all of its files. File blobs are released
// with the course; subsequent FindFile lookups for them report not found.
func (s *Store) DeleteCourse(id string) error {
	s.mu.Lock()

	index := -1
	for i, c := range s.courses {
		if c.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return fmt.Errorf("delete course %q: %w", id, ErrNotFound)
	}

	// Dropping the course from the replacement slice releases its file
	// blobs; snapshots handed out earlier keep theirs.
	courses := make([]model.Course, 0, len(s.courses)-1)
	courses = append(courses, s.courses[:index]...)
	courses = append(courses, s.courses[index+1:]...)
	s.courses = courses
	s.mu.Unlock()

	s.notify()
	return nil
}

// AddFile validates and attaches an upload to a course under the given
// category, stamping the course's last update. Validation failures leave the
// store untouched.
func (s *Store) AddFile(courseID string, upload FileUpload, category model.MaterialCategory, uploadedBy string) (model.MaterialFile, error) {
	if upload.Size > model.MaxFileSize {
		return model.MaterialFile{}, fmt.Errorf("upload %q (%d bytes): %w", upload.Name, upload.Size, ErrOversizeFile)
	}
	if !model.IsAllowedExtension(upload.Ext) {
		return model.MaterialFile{}, fmt.Errorf("upload %q (.%s): %w", upload.Name, upload.Ext, ErrUnsupportedExtension)
	}

	file := model.MaterialFile{
		ID:         uuid.NewString(),
		Name:       upload.Name,
		Content:    upload.Content,
		Ext:        strings.ToLower(strings.TrimPrefix(upload.Ext, ".")),
		Size:       upload.Size,
		Category:   category,
		UploadedAt: time.Now(),
		UploadedBy: uploadedBy,
	}

	s.mu.Lock()

	index := -1
	for i, c := range s.courses {
		if c.ID == courseID {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return model.MaterialFile{}, fmt.Errorf("upload to course %q: %w", courseID, ErrNotFound)
	}

	courses := make([]model.Course, len(s.courses))
	copy(courses, s.courses)

	old := courses[index]
	files := make([]model.MaterialFile, len(old.Files), len(old.Files)+1)
	copy(files, old.Files)
	old.Files = append(files, file)
	old.LastUpdate = file.UploadedAt
	old.UpdatedBy = uploadedBy
	courses[index] = old

	s.courses = courses
	s.mu.Unlock()

	s.notify()
	return file, nil
}

// DeleteFile removes a single file from a course and stamps the course's
// last update with the author of the deletion
func (s *Store) DeleteFile(courseID, fileID, author string) error {
	s.mu.Lock()

	courseIdx := -1
	for i, c := range s.courses {
		if c.ID == courseID {
			courseIdx = i
			break
		}
	}
	if courseIdx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("delete file from course %q: %w", courseID, ErrNotFound)
	}

	fileIdx := -1
	for i, f := range s.courses[courseIdx].Files {
		if f.ID == fileID {
			fileIdx = i
			break
		}
	}
	if fileIdx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("delete file %q: %w", fileID, ErrNotFound)
	}

	courses := make([]model.Course, len(s.courses))
	copy(courses, s.courses)

	old := courses[courseIdx]
	files := make([]model.MaterialFile, 0, len(old.Files)-1)
	files = append(files, old.Files[:fileIdx]...)
	files = append(files, old.Files[fileIdx+1:]...)
	old.Files = files
	old.LastUpdate = time.Now()
	old.UpdatedBy = author
	courses[courseIdx] = old

	s.courses = courses
	s.mu.Unlock()

	s.notify()
	return nil
}

// FindFile locates a material file by id across all courses
func (s *Store) FindFile(fileID string) (model.MaterialFile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.courses {
		for _, f := range c.Files {
			if f.ID == fileID {
				return f, true
			}
		}
	}
	return model.MaterialFile{}, false
}
