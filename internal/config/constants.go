package config

// app constants
const (
	AppName        = "bidmatch"
	AppDescription = "navigation shell for the bid and tender matching tool"
	FileName       = "bidmatch.yaml"
	EnvPrefix      = "BIDMATCH"

	Version = "0.3.0"
)

// logging constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = LogFormatConsole

	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// LogLevels lists the accepted logging levels
var LogLevels = []string{"trace", "debug", "info", "warn", "error"}

// ui constants
const (
	DefaultStartPage = "dashboard"
	DefaultAltScreen = true
	DefaultMouse     = true
)
