package utils

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Precondition failures in the element algebra are programmer errors, not
// recoverable conditions. Assertf emits one structured diagnostic event and
// panics; no kernel operation returns a status code.

var diag = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// Assertf panics with a formatted diagnostic if cond is false.
func Assertf(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	diag.Error().Str("kind", "precondition").Msg(msg)
	panic("precondition violated: " + msg)
}

// Abortf unconditionally reports an unreachable or unimplemented code path.
func Abortf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	diag.Error().Str("kind", "abort").Msg(msg)
	panic(msg)
}
