package task

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Repository loads and saves the whole task list.
//
// Load returns an empty list when nothing has been persisted yet and a
// *CorruptStoreError when the persisted document cannot be decoded.
// Save replaces the persisted document entirely.
type Repository interface {
	Load() (List, error)
	Save(List) error
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *log.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// Store applies task operations as whole-document read-modify-write
// cycles against a Repository. It keeps no state between calls.
type Store struct {
	repo   Repository
	now    func() time.Time
	logger *log.Logger
}

// NewStore creates a Store backed by repo.
func NewStore(repo Repository, opts ...StoreOption) *Store {
	s := &Store{
		repo:   repo,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the persisted task list.
func (s *Store) Load() (List, error) {
	tasks, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Loaded tasks", "count", len(tasks))
	return tasks, nil
}

// Save persists the full task list.
func (s *Store) Save(tasks List) error {
	if err := s.repo.Save(tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	s.logger.Debug("Saved tasks", "count", len(tasks))
	return nil
}

// Add creates a new todo task.
func (s *Store) Add(description string) (Task, error) {
	var created Task
	err := s.mutate(func(tasks *List) error {
		t, err := tasks.Create(description, s.now())
		created = t
		return err
	})
	return created, err
}

// Update replaces the description of the task with id.
func (s *Store) Update(id int, description string) (Task, error) {
	var updated Task
	err := s.mutate(func(tasks *List) error {
		t, err := tasks.UpdateDescription(id, description, s.now())
		updated = t
		return err
	})
	return updated, err
}

// SetStatus changes the status of the task with id.
func (s *Store) SetStatus(id int, status Status) (Task, error) {
	var updated Task
	err := s.mutate(func(tasks *List) error {
		t, err := tasks.SetStatus(id, status, s.now())
		updated = t
		return err
	})
	return updated, err
}

// MarkInProgress sets the task with id to in-progress.
func (s *Store) MarkInProgress(id int) (Task, error) {
	return s.SetStatus(id, StatusInProgress)
}

// MarkDone sets the task with id to done.
func (s *Store) MarkDone(id int) (Task, error) {
	return s.SetStatus(id, StatusDone)
}

// Delete removes the task with id.
func (s *Store) Delete(id int) (Task, error) {
	var removed Task
	err := s.mutate(func(tasks *List) error {
		t, err := tasks.Delete(id)
		removed = t
		return err
	})
	return removed, err
}

// List returns the tasks matching status, or all tasks when status is nil.
// An empty result is not an error.
func (s *Store) List(status *Status) (List, error) {
	tasks, err := s.Load()
	if err != nil {
		return nil, err
	}
	return tasks.Filter(status), nil
}

// mutate loads the list, applies fn and saves only when fn succeeds.
func (s *Store) mutate(fn func(*List) error) error {
	tasks, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(&tasks); err != nil {
		return err
	}
	return s.Save(tasks)
}
