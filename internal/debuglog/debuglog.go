// Package debuglog implements the ad hoc file logger used to trace
// interactive operations during development: opened lazily, appended
// to on every call, closed never -- the process exit closes it.
package debuglog

import (
	"fmt"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	file   *os.File
	opened bool
)

// Printf appends a formatted line to the debug log if GRIDWIRE_DEBUG
// names a writable path. It is a silent no-op otherwise, so production
// callers never need to check whether logging is enabled.
func Printf(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if !opened {
		opened = true
		if path := os.Getenv("GRIDWIRE_DEBUG"); path != "" {
			f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err == nil {
				file = f
			}
		}
	}
	if file == nil {
		return
	}
	fmt.Fprintf(file, format+"\n", args...)
}
