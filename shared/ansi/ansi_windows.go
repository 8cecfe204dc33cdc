//go:build windows

// Package ansi switches Windows consoles into virtual terminal mode.
package ansi

import (
	"os"

	"golang.org/x/sys/windows"
)

// Enable turns on virtual terminal processing for f and reports whether
// ANSI escape sequences will be honoured.
func Enable(f *os.File) bool {
	handle := windows.Handle(f.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}

	const enableVirtualTerminalProcessing = 0x0004
	return windows.SetConsoleMode(handle, mode|enableVirtualTerminalProcessing) == nil
}
