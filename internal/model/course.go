package model

import (
	"strings"
	"time"
)

// Department represents one of the five engineering departments
type Department string

const (
	DepartmentElectrical Department = "ELECTRICAL"
	DepartmentChemical   Department = "CHEMICAL"
	DepartmentCivil      Department = "CIVIL"
	DepartmentMechanical Department = "MECHANICAL"
	DepartmentBiomedical Department = "BIOMEDICAL"
)

// Departments returns all departments in display order
func Departments() []Department {
	return []Department{
		DepartmentElectrical,
		DepartmentChemical,
		DepartmentCivil,
		DepartmentMechanical,
		DepartmentBiomedical,
	}
}

// Semester bounds for every department
const (
	MinSemester = 1
	MaxSemester = 10
)

// IsValidSemester reports whether n is within the academic semester range
func IsValidSemester(n int) bool {
	return n >= MinSemester && n <= MaxSemester
}

// MaterialCategory partitions a course's files
type MaterialCategory string

const (
	CategoryLecture   MaterialCategory = "LECTURE"
	CategoryReference MaterialCategory = "REFERENCE"
	CategoryExercise  MaterialCategory = "EXERCISE"
	CategoryExam      MaterialCategory = "EXAM"
)

// Categories returns all material categories in display order
func Categories() []MaterialCategory {
	return []MaterialCategory{
		CategoryLecture,
		CategoryReference,
		CategoryExercise,
		CategoryExam,
	}
}

// Upload limits
const (
	// MaxFileSize is the upload ceiling for course material files
	MaxFileSize = 150 * 1024 * 1024

	// MaxImageSize is the ceiling for forum message image attachments
	MaxImageSize = 3 * 1024 * 1024
)

// AllowedExtensions lists the accepted material file extensions, lowercase,
// without the leading dot
var AllowedExtensions = []string{"pdf", "exe", "zip", "ppt", "pptx", "docx", "jpg", "jpeg", "png"}

// IsAllowedExtension reports whether ext is on the upload allow-list.
// The comparison is case-insensitive and tolerates a leading dot.
func IsAllowedExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// MaterialFile represents a single uploaded material. Content is an opaque
// blob owned by the file; it is released when the file or its course is
// deleted.
type MaterialFile struct {
	ID         string
	Name       string // original filename
	Content    []byte
	Ext        string
	Size       int64
	Category   MaterialCategory
	UploadedAt time.Time
	UploadedBy string
}

// Course represents a department+semester-scoped bucket of categorized
// material files. A course exclusively owns its files.
type Course struct {
	ID         string
	Name       string
	Department Department
	Semester   int
	Files      []MaterialFile
	LastUpdate time.Time
	UpdatedBy  string
}

// FilesIn returns the course files belonging to the given category,
// preserving upload order
func (c Course) FilesIn(cat MaterialCategory) []MaterialFile {
	var files []MaterialFile
	for _, f := range c.Files {
		if f.Category == cat {
			files = append(files, f)
		}
	}
	return files
}
