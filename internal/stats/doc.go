package stats

// Package stats derives the ROOT dashboard aggregate from session and
// content events. Counters and the activity log are only ever mutated here,
// as a side effect of logins, logouts, and content changes; everything else
// reads snapshots.
