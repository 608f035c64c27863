package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/fatih/color"
)

// Finisher restores a terminal; tcell.Screen satisfies it
type Finisher interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finisher
	crashOutput   io.Writer = os.Stderr
	crashExit               = os.Exit
)

// RegisterTerminal sets the screen restored on crash; nil clears it
func RegisterTerminal(t Finisher) {
	crashMu.Lock()
	crashTerminal = t
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	t := crashTerminal
	crashTerminal = nil
	out := crashOutput
	crashMu.Unlock()

	// Restore terminal before writing so the trace is readable
	if t != nil {
		t.Fini()
	}

	color.New(color.FgRed, color.Bold).Fprintf(out, "\nCRASH DETECTED: %v\n", r)
	fmt.Fprintf(out, "Stack Trace:\n%s\n", debug.Stack())

	crashExit(1)
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
