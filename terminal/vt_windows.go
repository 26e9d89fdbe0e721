//go:build windows

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// EnableVirtualTerminal switches the console attached to stdout into virtual
// terminal mode so legacy Windows consoles interpret ANSI escape sequences.
// It is a one-shot call for the embedding application to make before styling
// output; nothing in this module invokes it implicitly.
func EnableVirtualTerminal() error {
	handle := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return fmt.Errorf("get console mode: %w", err)
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return nil
	}

	if err := windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return fmt.Errorf("set console mode: %w", err)
	}
	return nil
}
