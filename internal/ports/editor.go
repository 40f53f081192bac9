package ports

import "os/exec"

// EditorOpener hands a document file over to an external editor
type EditorOpener interface {
	// OpenFile runs the user's editor on path and waits for it to exit
	OpenFile(path string) error

	// Command returns the editor process for path without starting it,
	// for use with bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
