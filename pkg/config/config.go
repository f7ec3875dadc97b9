// Package config resolves verbosity flags from the process environment
// and loads optional theme files that override the default glyph table.
package config

import "os"

// Environment variables recognized by FromEnv. Presence of the variable
// (any value, including empty assignment via `export QUIET_MODE=`)
// enables the flag.
const (
	EnvQuiet = "QUIET_MODE"
	EnvDebug = "DEBUG_MODE"
	EnvDev   = "DEV_MODE"
	EnvTrace = "TRACE_MODE"
	EnvSilly = "SILLY_MODE"
)

// Config holds the resolved verbosity flags for a logger instance.
//
// Quiet suppresses every level except error and okay. Debug, Trace and
// Silly are independent additive gates; Dev gates the devlog level.
type Config struct {
	Quiet bool
	Dev   bool
	Debug bool
	Trace bool
	Silly bool
}

// FromEnv creates a Config by reading the recognized environment
// variables.
func FromEnv() Config {
	return Config{
		Quiet: isSet(EnvQuiet),
		Debug: isSet(EnvDebug),
		Dev:   isSet(EnvDev),
		Trace: isSet(EnvTrace),
		Silly: isSet(EnvSilly),
	}
}

func isSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}
