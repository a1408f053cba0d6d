package ports

import "os/exec"

// EditorOpener opens an index folder in an external program
type EditorOpener interface {
	// Open runs the editor on path and waits for it to exit
	Open(path string) error

	// Command returns the editor process without starting it, for callers
	// that need to hand the terminal over (bubbletea's ExecProcess)
	Command(path string) (*exec.Cmd, error)
}
