package policy

// Package policy is the single place where the permission matrix lives.
// Every mutation request is checked here before it reaches the entity store,
// so the rules are defined once and testable without any UI. Decisions carry
// a typed deny reason that the UI turns into user-facing feedback.
