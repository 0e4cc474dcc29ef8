package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings   = "⚙"
	IconFolder     = "📁"
	IconFile       = "📄"
	IconClose      = "×"
	IconLanguage   = "🌐"
	IconBook       = "📚"
	IconChat       = "💬"
	IconDelete     = "🗑"
	IconLock       = "🔒"
	IconUnlock     = "🔓"
	IconGraduation = "🎓"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	LogoSize          float32 = 40
	DepartmentTileMin float32 = 140
	MessageImageMin   float32 = 160
	DialogWidth       float32 = 460
	DialogHeight      float32 = 360

	// Login form limits
	MaxPasswordLength = 12
)

// Grid column counts
const (
	DepartmentColumns = 3
	SemesterColumns   = 5
	StatCardColumns   = 4
)
