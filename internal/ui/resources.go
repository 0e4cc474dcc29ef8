package ui

import (
	"sync"

	"fyne.io/fyne/v2"
)

// Logo file names looked up next to the binary at startup
const (
	UniversityLogoFile = "university-logo.png"
	CollegeLogoFile    = "college-logo.png"
)

// Logos holds the two institutional logo images shown in the header. ROOT may
// replace either one at runtime; replacements live only for the process
// lifetime, like everything else.
type Logos struct {
	mu         sync.Mutex
	university []byte
	college    []byte
}

// NewLogos loads the default logo files if present next to the binary.
// A missing file just leaves that slot empty.
func NewLogos() *Logos {
	l := &Logos{}
	if res, err := fyne.LoadResourceFromPath(UniversityLogoFile); err == nil {
		l.university = res.Content()
	}
	if res, err := fyne.LoadResourceFromPath(CollegeLogoFile); err == nil {
		l.college = res.Content()
	}
	return l
}

// SetUniversity replaces the university logo image
func (l *Logos) SetUniversity(content []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.university = content
}

// SetCollege replaces the college logo image
func (l *Logos) SetCollege(content []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.college = content
}

// University returns the university logo as a Fyne resource, or nil when unset
func (l *Logos) University() fyne.Resource {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.university) == 0 {
		return nil
	}
	return fyne.NewStaticResource(UniversityLogoFile, l.university)
}

// College returns the college logo as a Fyne resource, or nil when unset
func (l *Logos) College() fyne.Resource {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.college) == 0 {
		return nil
	}
	return fyne.NewStaticResource(CollegeLogoFile, l.college)
}
