package ui

// Package ui contains the Fyne-based desktop user interface for the converter.
// It renders one panel per conversion category behind a tab bar and implements
// the controller's Port over its widgets. All UI strings are localized via
// Localization.
