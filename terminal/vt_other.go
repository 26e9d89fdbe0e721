//go:build !windows

package terminal

// EnableVirtualTerminal is a no-op outside Windows: Unix terminals interpret
// ANSI escape sequences without any mode switch.
func EnableVirtualTerminal() error {
	return nil
}
