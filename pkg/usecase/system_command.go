package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/syscmd/pkg/domain"
	"github.com/m-mizutani/syscmd/pkg/domain/interfaces"
	"github.com/m-mizutani/syscmd/pkg/domain/model"
)

// SystemCommand runs the two host actions and logs each of them as a record
type SystemCommand struct {
	repo    interfaces.RecordRepository
	runner  interfaces.CommandRunner
	toucher interfaces.FileToucher
	goos    string
}

// SystemCommandOptions holds the collaborators of SystemCommand.
// Runner and Toucher default to the host implementations, GOOS to runtime.GOOS.
type SystemCommandOptions struct {
	Repository interfaces.RecordRepository
	Runner     interfaces.CommandRunner
	Toucher    interfaces.FileToucher
	GOOS       string
}

// NewSystemCommand creates a SystemCommand
func NewSystemCommand(opts SystemCommandOptions) *SystemCommand {
	x := &SystemCommand{
		repo:    opts.Repository,
		runner:  opts.Runner,
		toucher: opts.Toucher,
		goos:    opts.GOOS,
	}
	if x.goos == "" {
		x.goos = runtime.GOOS
	}
	if x.runner == nil {
		x.runner = NewShellRunner(nil, 0, x.goos)
	}
	if x.toucher == nil {
		x.toucher = NewFileToucher()
	}
	return x
}

// NetworkCommand returns the host command that prints network configuration
func NetworkCommand(goos string) string {
	if goos == "windows" {
		return "ipconfig"
	}
	return "ifconfig"
}

// NetworkInfo runs the network configuration command and records its output.
// A failing command is not an error: the failure text becomes the record output.
func (x *SystemCommand) NetworkInfo(ctx context.Context, command string) (*model.CommandRecord, error) {
	logger := ctxlog.From(ctx)

	if command != model.ActionIfconfig {
		return nil, goerr.Wrap(domain.ErrInvalidCommand, "unexpected command keyword", goerr.V("command", command))
	}

	systemCommand := NetworkCommand(x.goos)
	output, err := x.runner.Run(ctx, systemCommand)
	if err != nil {
		var exitErr *model.ExitError
		if !errors.As(err, &exitErr) {
			logger.Warn("Network command did not run",
				slog.String("command", systemCommand),
				slog.String("error", err.Error()),
			)
		}
		output = fmt.Sprintf("Ошибка выполнения команды: %s", errorText(err))
	}

	record, err := x.repo.Create(ctx, command, command, output)
	if err != nil {
		return nil, err
	}

	logger.Info("Network info recorded",
		slog.Int64("id", record.ID),
		slog.String("system_command", systemCommand),
	)
	return record, nil
}

// TouchFile creates an empty file at filename and records the event.
// Nothing is recorded when the file cannot be created.
func (x *SystemCommand) TouchFile(ctx context.Context, filename string) (*model.CommandRecord, error) {
	logger := ctxlog.From(ctx)

	if filename == "" {
		return nil, goerr.Wrap(domain.ErrFilenameRequired, "empty filename")
	}

	if err := x.toucher.Touch(ctx, filename); err != nil {
		logger.Info("File creation failed",
			slog.String("filename", filename),
			slog.String("error", err.Error()),
		)
		return nil, domain.ErrFileCreation.Wrap(err)
	}

	output := fmt.Sprintf("Файл %s создан", filename)
	record, err := x.repo.Create(ctx, model.ActionTouchfile, model.ActionTouchfile, output)
	if err != nil {
		return nil, err
	}

	logger.Info("File creation recorded",
		slog.Int64("id", record.ID),
		slog.String("filename", filename),
	)
	return record, nil
}

// errorText renders the innermost cause so wrapping context does not leak into record output
func errorText(err error) string {
	var exitErr *model.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Error()
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

// FileCreationDetail extracts the filesystem error carried by a domain.ErrFileCreation error
func FileCreationDetail(err error) string {
	if cause := errors.Unwrap(err); cause != nil {
		return cause.Error()
	}
	return err.Error()
}
