package model

// DownloadCount is one entry of the most-downloaded ranking
type DownloadCount struct {
	Name  string
	Count int
}

// AppStats is the derived activity aggregate shown on the ROOT dashboard.
// It is never set directly; the stats aggregator mutates it as a side effect
// of logins, logouts, and content changes.
type AppStats struct {
	ActiveUsers     int
	TotalStudents   int
	TotalProfessors int
	CurrentGuests   int
	MostDownloaded  []DownloadCount
	RecentLogs      []string // newest first, unbounded
}
