// Package log provides the small leveled logging interface used across
// studymap.
//
// Components accept a Logger through their options. When none is given
// they fall back to the package-level logger, which writes warnings and
// errors to stderr until the binary replaces it with SetDefault:
//
//	logger := log.NewWriterGologLogger(os.Stderr, log.LogLevelInfo)
//	log.SetDefault(logger)
//
// GologLogger wraps github.com/kataras/golog. Levels, in order of
// increasing severity, are LogLevelDebug, LogLevelInfo, LogLevelWarn and
// LogLevelError; LogLevelNone disables output. ParseLevel reads them from
// configuration strings.
//
// NoOpLogger discards everything. The terminal UI uses it unless a log file
// is configured, since writing to stderr would corrupt the screen.
package log
