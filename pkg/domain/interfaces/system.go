package interfaces

import "context"

// CommandRunner executes a command line through the host shell
type CommandRunner interface {
	// Run returns the decoded standard output. A non-zero exit is reported as
	// *model.ExitError alongside whatever output was captured.
	Run(ctx context.Context, commandLine string) (string, error)
}

// FileToucher creates an empty file, truncating it if it exists
type FileToucher interface {
	Touch(ctx context.Context, path string) error
}
