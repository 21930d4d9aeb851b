package usecase

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/syscmd/pkg/domain/interfaces"
)

type fileToucher struct{}

// NewFileToucher creates a FileToucher that works on the local filesystem
func NewFileToucher() interfaces.FileToucher {
	return &fileToucher{}
}

// Touch opens path for writing, creating or truncating it, and closes it without writing
func (f *fileToucher) Touch(ctx context.Context, path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666) // #nosec G304 G302 - path is caller supplied by contract
	if err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	ctxlog.From(ctx).Debug("File touched", slog.String("path", path))
	return nil
}
