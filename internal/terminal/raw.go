package terminal

import (
	"os"

	"golang.org/x/term"
)

// RawMode puts f into raw mode when it is a terminal. The returned function
// restores the previous state and is never nil.
func RawMode(f *os.File) (restore func(), err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, nil
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}, err
	}
	return func() { _ = term.Restore(fd, old) }, nil
}

// Width returns the column count of f, or 0 when it is not a terminal.
func Width(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}
