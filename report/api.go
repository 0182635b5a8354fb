package report

import (
	"fmt"
	"os"
)

// Fatal reports an unrecoverable compilation error and terminates the
// process. There is no structured error return from this function and no
// caller ever receives control back: the front end treats the first error
// in any phase (lex, type, emission) as fatal, matching original_source's
// single error(...) policy.
//
// pos may be nil when no source position applies (e.g. a missing CLI
// argument). kind should name the phase the error occurred in, e.g.
// "lex", "type", "emit".
func Fatal(pos *Position, kind, format string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errCount++
	displayFatal(kind, fmt.Sprintf(format, args...), pos)
	os.Exit(1)
}

// Warn records a non-fatal diagnostic. Warnings are buffered and flushed
// by Finish so they appear after the work that produced them.
func Warn(pos *Position, format string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warnings = append(rep.warnings, renderWarning(fmt.Sprintf(format, args...), pos))
}

// Finish prints any buffered warnings and a closing summary line.
func Finish() {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel >= LogLevelWarn {
		for _, w := range rep.warnings {
			fmt.Println(w)
		}
	}

	if rep.logLevel == LogLevelVerbose {
		displaySummary(rep.errCount, len(rep.warnings))
	}
}
