package config

// Layout constants.
const (
	// IndicatorWidth is the preferred width of the breath indicator bar.
	IndicatorWidth = 40

	// MinIndicatorWidth is the narrowest indicator still drawn.
	MinIndicatorWidth = 10

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// MaxTechniqueNameWidth truncates long technique names in the tab strip.
	MaxTechniqueNameWidth = 18
)

// Display limits.
const (
	// MaxVisibleSessions limits history rows before scrolling.
	MaxVisibleSessions = 12

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
