package security

// Package security provides input hardening for the login form: markup
// escaping for untrusted text and a heuristic pattern gate for obviously
// hostile input. There is no database behind the app, so the pattern gate is
// cosmetic hardening rather than an exhaustive defense.
