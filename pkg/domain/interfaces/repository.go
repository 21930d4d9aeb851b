package interfaces

import (
	"context"

	"github.com/m-mizutani/syscmd/pkg/domain/model"
)

// RecordRepository appends action records. Records are never updated or deleted.
type RecordRepository interface {
	Create(ctx context.Context, command, name, output string) (*model.CommandRecord, error)
}

// RecordReader gives read access to the action log for operator tooling
type RecordReader interface {
	Get(ctx context.Context, id int64) (*model.CommandRecord, error)
	List(ctx context.Context, limit int) ([]*model.CommandRecord, error)
}

// RecordStore is implemented by every storage backend
type RecordStore interface {
	RecordRepository
	RecordReader
	Close() error
}
