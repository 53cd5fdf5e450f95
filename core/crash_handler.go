package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// Sequences written when no screen is registered
var emergencyReset = []byte(
	"\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l" + // mouse tracking off
		"\x1b[?25h" + // cursor on
		"\x1b[?1049l" + // leave alt screen
		"\x1b[0m" +
		"\x1b[?7h")

var crashScreen atomic.Pointer[tcell.Screen]

var exit = os.Exit

// SetCrashScreen registers the screen finalized by HandleCrash; nil clears it
func SetCrashScreen(s tcell.Screen) {
	if s == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&s)
}

// EmergencyReset writes the raw restore sequences to w
func EmergencyReset(w io.Writer) {
	w.Write(emergencyReset)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if s := crashScreen.Swap(nil); s != nil {
		(*s).Fini()
	} else {
		EmergencyReset(os.Stdout)
	}

	// Raw mode may still be active, so lines end in \r\n
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mMOONWALK CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
