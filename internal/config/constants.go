package config

import "time"

// Timer settings.
const (
	// TickInterval is the period of one engine tick.
	TickInterval = time.Second
)

// Application settings.
const (
	AppName            = "calmtide"
	EnvPrefix          = "CALMTIDE_"
	DBFileName         = "calmtide.db"
	LogFileName        = "calmtide.log"
	DefaultTechniqueID = "box"
	DefaultTheme       = "default"
	DefaultLogLevel    = "info"
)

// History settings.
const (
	// HistoryLimit caps the sessions shown in the history screen.
	HistoryLimit = 50
	// ReportSessionLimit caps the sessions listed in a PDF report.
	ReportSessionLimit = 100
)
