package task

import (
	"fmt"
	"strings"
	"time"
)

// Status represents a task status.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses returns the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// ParseStatus converts a user supplied token into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", &ValidationError{
			Field: "status",
			Err:   fmt.Errorf("status must be one of: %s", statusList()),
		}
	}
	return status, nil
}

func statusList() string {
	names := make([]string, 0, 3)
	for _, s := range Statuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// Task represents a single tracked task.
//
// Fields decode tolerantly: a record without "id" yields ID 0, without
// "description" or "status" yields the empty string, and without timestamps
// leaves CreatedAt/UpdatedAt nil. Keys missing on read stay missing on
// write while the field still holds its zero value.
type Task struct {
	ID          int
	Description string
	Status      Status
	CreatedAt   *time.Time
	UpdatedAt   *time.Time

	absent fieldSet
}

// String renders the task as a list line.
func (t Task) String() string {
	return fmt.Sprintf("[%d] (%s) %s", t.ID, t.Status, t.Description)
}

// touch refreshes UpdatedAt, never moving it before CreatedAt.
func (t *Task) touch(now time.Time) {
	if t.CreatedAt != nil && now.Before(*t.CreatedAt) {
		now = *t.CreatedAt
	}
	t.UpdatedAt = &now
}

// normalizeTime truncates to whole seconds in UTC, the precision persisted
// in the task file.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
