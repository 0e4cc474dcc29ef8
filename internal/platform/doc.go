package platform

// Package platform contains OS integration helpers: filesystem helpers and
// opening saved files in the system file manager.
