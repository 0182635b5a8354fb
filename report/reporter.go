package report

import "sync"

// LogLevel controls how much diagnostic output the reporter prints.
type LogLevel int

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  LogLevel = iota // Displays no output.
	LogLevelError                   // Displays only errors.
	LogLevelWarn                    // Displays warnings and errors.
	LogLevelVerbose                 // Displays all compilation messages (default).
)

// reporter is the single, mutex-guarded diagnostic sink for the compiler.
// There is exactly one: the front end is single-threaded by design (see
// the concurrency model), but the mutex keeps the sink safe regardless of
// how it is called.
type reporter struct {
	m        sync.Mutex
	logLevel LogLevel
	srcPath  string
	errCount int
	warnings []string
}

var rep = &reporter{logLevel: LogLevelVerbose}

// Init sets the reporter's log level and the source file path used to
// render code snippets alongside diagnostics.
func Init(level LogLevel, srcPath string) {
	rep.m.Lock()
	defer rep.m.Unlock()
	rep.logLevel = level
	rep.srcPath = srcPath
	rep.errCount = 0
	rep.warnings = nil
}

// AnyErrors reports whether an error has been recorded. Fatal is the only
// function that records one, and it exits the process right after.
func AnyErrors() bool {
	rep.m.Lock()
	defer rep.m.Unlock()
	return rep.errCount > 0
}
