package model

// Package model defines domain data structures used across the app: users and
// roles, courses with their material files, forum messages, and library
// statistics. Structures are designed for direct binding in the UI and
// explicit state transitions.
