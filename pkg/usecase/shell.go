package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"runtime"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/syscmd/pkg/domain/interfaces"
	"github.com/m-mizutani/syscmd/pkg/domain/model"
)

const waitDelay = 2 * time.Second

type shellRunner struct {
	decoder *OutputDecoder
	timeout time.Duration
	goos    string
}

// NewShellRunner creates a CommandRunner backed by the host shell.
// A zero timeout lets the command run until it exits. goos picks the shell
// (cmd on "windows", sh otherwise) and defaults to runtime.GOOS when empty.
func NewShellRunner(decoder *OutputDecoder, timeout time.Duration, goos string) interfaces.CommandRunner {
	if goos == "" {
		goos = runtime.GOOS
	}
	return &shellRunner{
		decoder: decoder,
		timeout: timeout,
		goos:    goos,
	}
}

// Run executes commandLine and returns its decoded standard output
func (r *shellRunner) Run(ctx context.Context, commandLine string) (string, error) {
	logger := ctxlog.From(ctx)

	cmdCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		cmdCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var cmd *exec.Cmd
	if r.goos == "windows" {
		cmd = exec.CommandContext(cmdCtx, "cmd", "/C", commandLine) // #nosec G204 - command line is fixed by the service
	} else {
		cmd = exec.CommandContext(cmdCtx, "sh", "-c", commandLine) // #nosec G204 - command line is fixed by the service
	}

	// children of the shell may keep the pipes open after it is killed
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("Executing command",
		slog.String("command", commandLine),
		slog.String("os", r.goos),
		slog.Duration("timeout", r.timeout),
	)

	runErr := cmd.Run()

	if stderr.Len() > 0 {
		logger.Debug("Command stderr",
			slog.String("command", commandLine),
			slog.String("stderr", stderr.String()),
		)
	}

	output, err := r.decoder.Decode(stdout.Bytes())
	if err != nil {
		return "", err
	}

	if runErr != nil {
		if cmdCtx.Err() == context.DeadlineExceeded {
			return output, goerr.Wrap(runErr, "command timed out",
				goerr.V("command", commandLine),
				goerr.V("timeout", r.timeout),
			)
		}

		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return output, &model.ExitError{
				Command:  commandLine,
				ExitCode: exitErr.ExitCode(),
			}
		}
		return output, goerr.Wrap(runErr, "failed to run command", goerr.V("command", commandLine))
	}

	logger.Debug("Command finished",
		slog.String("command", commandLine),
		slog.Int("stdout_bytes", stdout.Len()),
	)

	return output, nil
}
