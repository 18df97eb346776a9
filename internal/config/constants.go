package config

import "time"

// app constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	AppName        = "logview"
	AppDescription = "Replay and inspect hierarchical log filter models"
	Version        = "0.1.0"
)

// file constants
const (
	FileName  = "logview.yaml"
	EnvFile   = ".env"
	EnvPrefix = "LOGVIEW"
)

// log rotation constants, sizes in megabytes and ages in days
const (
	DefaultLogMaxSize    = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAge     = 28
)

// bus constants
const (
	DefaultBusBuffer = 64
)

// tree constants
const (
	DefaultTreeIndent = 2
)

// watch constants
const (
	DefaultWatchDebounce = 200 * time.Millisecond
)
