package ui

import (
	"time"

	"github.com/dustin/go-humanize"
)

// FormatSize renders a byte count for display, e.g. "3.2 MB"
func FormatSize(size int64) string {
	if size <= 0 {
		return DashPlaceholder
	}
	return humanize.Bytes(uint64(size))
}

// FormatTime renders a timestamp for file and message rows
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return DashPlaceholder
	}
	return t.Format("2006-01-02 15:04")
}
