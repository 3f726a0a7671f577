// Package config loads the process configuration from the environment.
//
// All options live under the TOGGL_ prefix (TOGGL_API_TOKEN,
// TOGGL_CACHE_TTL_MS, ...). Numeric options are read as strings and parsed
// explicitly so a non-numeric value is a startup error rather than a silent
// zero. Configuration is immutable for the process lifetime.
package config
