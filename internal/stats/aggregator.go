package stats

import (
	"fmt"
	"sort"
	"sync"

	"github.com/redsea-eng/englib/internal/model"
)

// Aggregator accumulates library activity. It is seeded from the initial
// account list and fed by the application as events happen.
type Aggregator struct {
	mu        sync.Mutex
	stats     model.AppStats
	downloads map[string]int
}

// New creates an aggregator seeded from the given accounts. The activity log
// opens with the readiness line the dashboard shows on a fresh start.
func New(users []model.User) *Aggregator {
	a := &Aggregator{
		downloads: make(map[string]int),
		stats: model.AppStats{
			RecentLogs: []string{"library system ready"},
		},
	}
	for _, u := range users {
		a.countRole(u.Role, +1)
	}
	return a
}

// countRole adjusts the per-role registration counters. Caller holds the lock
// or is the constructor.
func (a *Aggregator) countRole(role model.Role, delta int) {
	switch role {
	case model.RoleStudent:
		a.stats.TotalStudents += delta
	case model.RoleAdmin, model.RoleRoot:
		a.stats.TotalProfessors += delta
	}
}

// RecordLogin notes a successful login
func (a *Aggregator) RecordLogin(user model.User) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stats.ActiveUsers++
	if user.Role == model.RoleGuest {
		a.stats.CurrentGuests++
	}
	a.prepend(fmt.Sprintf("user %s logged in", user.Name))
}

// RecordLogout notes the end of a session
func (a *Aggregator) RecordLogout(user model.User) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stats.ActiveUsers > 0 {
		a.stats.ActiveUsers--
	}
	if user.Role == model.RoleGuest && a.stats.CurrentGuests > 0 {
		a.stats.CurrentGuests--
	}
	a.prepend(fmt.Sprintf("user %s logged out", user.Name))
}

// RecordUserAdded updates the registration counters for a new account
func (a *Aggregator) RecordUserAdded(user model.User) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.countRole(user.Role, +1)
	a.prepend(fmt.Sprintf("account created: %s", user.Name))
}

// RecordUserRemoved updates the registration counters for a deleted account
func (a *Aggregator) RecordUserRemoved(user model.User) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.countRole(user.Role, -1)
	a.prepend(fmt.Sprintf("account removed: %s", user.Name))
}

// RecordDownload feeds the most-downloaded ranking
func (a *Aggregator) RecordDownload(fileName string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.downloads[fileName]++

	ranking := make([]model.DownloadCount, 0, len(a.downloads))
	for name, count := range a.downloads {
		ranking = append(ranking, model.DownloadCount{Name: name, Count: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].Name < ranking[j].Name
	})
	a.stats.MostDownloaded = ranking
}

// RecordActivity prepends a free-form line to the activity log
func (a *Aggregator) RecordActivity(line string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.prepend(line)
}

// prepend puts a line at the head of the activity log, newest first. The log
// grows without bound; acceptable for a single in-memory session.
func (a *Aggregator) prepend(line string) {
	logs := make([]string, 0, len(a.stats.RecentLogs)+1)
	logs = append(logs, line)
	logs = append(logs, a.stats.RecentLogs...)
	a.stats.RecentLogs = logs
}

// Snapshot returns a copy of the current aggregate
func (a *Aggregator) Snapshot() model.AppStats {
	a.mu.Lock()
	defer a.mu.Unlock()

	snapshot := a.stats
	snapshot.MostDownloaded = append([]model.DownloadCount(nil), a.stats.MostDownloaded...)
	snapshot.RecentLogs = append([]string(nil), a.stats.RecentLogs...)
	return snapshot
}
