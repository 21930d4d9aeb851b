package model

import "fmt"

// ExitError reports a command that ran but exited with a non-zero status
type ExitError struct {
	Command  string
	ExitCode int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("Command '%s' returned non-zero exit status %d.", e.Command, e.ExitCode)
}
