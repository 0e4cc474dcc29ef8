package model

import (
	"testing"
)

func TestIsAllowedExtension(t *testing.T) {
	tests := []struct {
		ext      string
		expected bool
	}{
		{"pdf", true},
		{"PDF", true},
		{".pdf", true},
		{"pptx", true},
		{"exe", true},
		{"jpeg", true},
		{"mp4", false},
		{"", false},
		{"pdf.exe.bat", false},
		{"docx ", false},
	}

	for _, test := range tests {
		result := IsAllowedExtension(test.ext)
		if result != test.expected {
			t.Errorf("IsAllowedExtension(%q) = %v, expected %v", test.ext, result, test.expected)
		}
	}
}

func TestIsValidSemester(t *testing.T) {
	tests := []struct {
		semester int
		expected bool
	}{
		{0, false},
		{1, true},
		{5, true},
		{10, true},
		{11, false},
		{-3, false},
	}

	for _, test := range tests {
		result := IsValidSemester(test.semester)
		if result != test.expected {
			t.Errorf("IsValidSemester(%d) = %v, expected %v", test.semester, result, test.expected)
		}
	}
}

func TestCourse_FilesIn(t *testing.T) {
	course := Course{
		Files: []MaterialFile{
			{ID: "a", Category: CategoryLecture},
			{ID: "b", Category: CategoryExam},
			{ID: "c", Category: CategoryLecture},
		},
	}

	lectures := course.FilesIn(CategoryLecture)
	if len(lectures) != 2 {
		t.Fatalf("Expected 2 lecture files, got %d", len(lectures))
	}
	if lectures[0].ID != "a" || lectures[1].ID != "c" {
		t.Errorf("Expected upload order [a c], got [%s %s]", lectures[0].ID, lectures[1].ID)
	}

	if got := course.FilesIn(CategoryReference); len(got) != 0 {
		t.Errorf("Expected no reference files, got %d", len(got))
	}
}

func TestDepartments(t *testing.T) {
	departments := Departments()
	if len(departments) != 5 {
		t.Fatalf("Expected 5 departments, got %d", len(departments))
	}
	if departments[0] != DepartmentElectrical {
		t.Errorf("Expected first department ELECTRICAL, got %s", departments[0])
	}
}
