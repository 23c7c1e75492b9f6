package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"golang.org/x/term"
)

// emergencyReset leaves the alternate screen, shows the cursor and resets attributes
const emergencyReset = "\x1b[?1049l\x1b[?25h\x1b[0m"

var (
	crashMu      sync.Mutex
	crashRestore func()

	// Replaced in tests
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// SetCrashRestore registers the terminal teardown run before the stack trace is printed
// Pass nil once the screen has been finalized normally
func SetCrashRestore(fn func()) {
	crashMu.Lock()
	crashRestore = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	restore := crashRestore
	crashRestore = nil
	crashMu.Unlock()

	if restore != nil {
		restore()
	} else if term.IsTerminal(int(os.Stdout.Fd())) {
		// Fallback for panics before the screen is registered
		fmt.Fprint(os.Stdout, emergencyReset)
	}

	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
