// Package memory provides an in-process record store
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/syscmd/pkg/domain"
	"github.com/m-mizutani/syscmd/pkg/domain/interfaces"
	"github.com/m-mizutani/syscmd/pkg/domain/model"
)

// Store keeps records in a slice. Records are copied in and out so callers cannot mutate stored rows.
type Store struct {
	mu      sync.RWMutex
	records []model.CommandRecord
	nextID  int64
	now     func() time.Time
}

var _ interfaces.RecordStore = (*Store)(nil)

// New creates an empty Store
func New() *Store {
	return &Store{
		nextID: 1,
		now:    time.Now,
	}
}

// Create appends a record
func (s *Store) Create(ctx context.Context, command, name, output string) (*model.CommandRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.ErrRepository.Wrap(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := model.CommandRecord{
		ID:        s.nextID,
		Command:   command,
		Name:      name,
		Output:    output,
		CreatedAt: s.now().UTC(),
	}
	s.nextID++
	s.records = append(s.records, record)

	return &record, nil
}

// Get returns the record with the given ID
func (s *Store) Get(ctx context.Context, id int64) (*model.CommandRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			record := r
			return &record, nil
		}
	}
	return nil, goerr.Wrap(domain.ErrRecordNotFound, "no such record", goerr.V("id", id))
}

// List returns up to limit records, newest first. A non-positive limit returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]*model.CommandRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.records)
	if limit > 0 && limit < n {
		n = limit
	}

	result := make([]*model.CommandRecord, 0, n)
	for i := len(s.records) - 1; i >= 0 && len(result) < n; i-- {
		record := s.records[i]
		result = append(result, &record)
	}
	return result, nil
}

// Len returns the number of stored records
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Close is a no-op
func (s *Store) Close() error {
	return nil
}
