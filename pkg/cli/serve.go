package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/syscmd/pkg/controller/http"
	"github.com/m-mizutani/syscmd/pkg/domain"
	"github.com/m-mizutani/syscmd/pkg/domain/interfaces"
	"github.com/m-mizutani/syscmd/pkg/domain/model"
	"github.com/m-mizutani/syscmd/pkg/repository/memory"
	"github.com/m-mizutani/syscmd/pkg/repository/sqlite"
	"github.com/m-mizutani/syscmd/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func newServeCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the HTTP server",
		Flags:  serveFlags(),
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	logger, err := newLogger(cmd, os.Stderr)
	if err != nil {
		return err
	}
	ctx = ctxlog.With(ctx, logger)

	config := configFromCommand(cmd)
	if err := config.Validate(); err != nil {
		return domain.ErrConfiguration.Wrap(err)
	}

	decoder, err := usecase.NewOutputDecoder(config.Encoding, runtime.GOOS)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, config)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("Failed to close record store", slog.String("error", err.Error()))
		}
	}()

	svc := usecase.NewSystemCommand(usecase.SystemCommandOptions{
		Repository: store,
		Runner:     usecase.NewShellRunner(decoder, config.ExecTimeout, runtime.GOOS),
		Toucher:    usecase.NewFileToucher(),
	})

	bold := color.New(color.Bold)
	fmt.Fprintf(cmd.Root().Writer, "\n%s\n", bold.Sprint("syscmd server"))
	fmt.Fprintf(cmd.Root().Writer, "Listen:   %s\n", config.Addr)
	fmt.Fprintf(cmd.Root().Writer, "Storage:  %s\n", describeStorage(config))
	fmt.Fprintf(cmd.Root().Writer, "Encoding: %s\n", decoder.Name())
	fmt.Fprintf(cmd.Root().Writer, "Command:  %s\n\n", usecase.NetworkCommand(runtime.GOOS))

	return http.ListenAndServe(ctx, config.Addr, http.New(svc, logger))
}

func openStore(ctx context.Context, config *model.ServerConfig) (interfaces.RecordStore, error) {
	switch config.Storage {
	case model.StorageMemory:
		return memory.New(), nil
	default:
		return sqlite.Open(ctx, config.DBPath)
	}
}

func describeStorage(config *model.ServerConfig) string {
	if config.Storage == model.StorageMemory {
		return string(config.Storage)
	}
	return fmt.Sprintf("%s (%s)", config.Storage, config.DBPath)
}
