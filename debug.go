package convscan

import (
	"fmt"
	"os"
)

// debugf prints one diagnostic line to stderr. Callers check their debug
// flag first so formatting is skipped in release mode.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[convscan] "+format+"\n", args...)
}
