package model

// Package model defines the data shapes exchanged with the conversion service:
// categories, conversion requests and responses, message kinds shown in the
// panels, and the unit catalog used to fill selectors. Values are transient and
// built per call.
