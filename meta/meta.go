// Package meta holds the defaults shared by the config file and the CLI.
package meta

const (
	// ConfigFile is read when present; a missing file means all defaults.
	ConfigFile = "splendor.hcl"
	OutputDir  = "experiments"
	LogLevel   = "info"

	Games       = 10
	Players     = 2
	Concurrency = 4
	Seed        = 1

	Strategy = "alphabeta"
	Depth    = 2

	// MaxTurns stops games that would otherwise never finish.
	MaxTurns = 500
	// SessionBuffer is the number of unread updates a session keeps.
	SessionBuffer = 16
)
