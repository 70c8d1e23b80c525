package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconInfo     = "ℹ"
)

// Window sizing
const (
	WindowWidth  float32 = 720
	WindowHeight float32 = 420

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 260
)

// Panel layout
const (
	// FieldColumns is the number of columns of the from/to/result row on desktop
	FieldColumns = 3

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Text fragments
const (
	ListBullet = "• "
)
