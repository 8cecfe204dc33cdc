//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

func backgroundIsBlue(f *os.File) bool {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(f.Fd()), &info); err != nil {
		return false
	}

	const backgroundBlue = 0x0010
	return info.Attributes&backgroundBlue != 0
}
