package editor

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"jdex/internal/ports"
)

// ErrNoEditor is returned when neither the environment nor PATH yields an editor
var ErrNoEditor = errors.New("no editor found: set $JDEX_EDITOR or $EDITOR")

// EnvVars lists the variables consulted for the editor command, in order
var EnvVars = []string{"JDEX_EDITOR", "VISUAL", "EDITOR"}

// fallbacks are tried on PATH when no variable is set
var fallbacks = []string{"nvim", "vim", "vi", "nano", "code"}

// Opener implements ports.EditorOpener
type Opener struct {
	lookPath func(string) (string, error)
}

var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookPath: exec.LookPath}
}

// Open runs the editor on path attached to the current terminal
func (o *Opener) Open(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command builds the editor process for path. Editor variables may carry
// arguments, e.g. JDEX_EDITOR="code --new-window".
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv := o.resolve()
	if len(argv) == 0 {
		return nil, ErrNoEditor
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

func (o *Opener) resolve() []string {
	for _, name := range EnvVars {
		if fields := strings.Fields(os.Getenv(name)); len(fields) > 0 {
			return fields
		}
	}

	for _, editor := range fallbacks {
		if path, err := o.lookPath(editor); err == nil {
			return []string{path}
		}
	}
	return nil
}
