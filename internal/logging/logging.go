// Package logging provides debug logging for teletext.
package logging

import "log"

// DebugEnabled controls whether Debugf produces output.
// Set via the -debug flag or debug = true in the config file.
var DebugEnabled bool

// Debugf logs a message only when DebugEnabled is true.
func Debugf(format string, args ...any) {
	if DebugEnabled {
		log.Printf("DEBUG: "+format, args...)
	}
}
