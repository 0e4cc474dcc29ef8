package ui

// Package ui contains the Fyne-based desktop user interface for the digital
// library. It renders the screen selected by the session router, wires user
// interactions to the store and policy layers, and localizes all visible
// strings via Localization.
