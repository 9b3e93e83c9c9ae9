package task

import (
	"math"
	"strings"
	"time"
)

// List is an ordered sequence of tasks. Insertion order is preserved and
// never re-sorted.
type List []Task

// NextID returns 1 + the highest id in the list, or 1 when it is empty.
// Tasks decoded without an id count as 0.
// Callers must check for math.MaxInt first; Create does.
func (l List) NextID() int {
	return l.maxID() + 1
}

func (l List) maxID() int {
	maxID := 0
	for i := range l {
		if l[i].ID > maxID {
			maxID = l[i].ID
		}
	}
	return maxID
}

// FindByID returns the position of the task with id, or false if none.
func (l List) FindByID(id int) (int, bool) {
	for i := range l {
		if l[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Create appends a new todo task and returns it. It fails once the highest
// id in the list is math.MaxInt, since no larger id exists.
func (l *List) Create(description string, now time.Time) (Task, error) {
	if err := validateDescription(description); err != nil {
		return Task{}, err
	}
	if l.maxID() == math.MaxInt {
		return Task{}, &ValidationError{Field: "id", Err: errIDsExhausted}
	}

	now = normalizeTime(now)
	created, updated := now, now
	t := Task{
		ID:          l.NextID(),
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   &created,
		UpdatedAt:   &updated,
	}
	*l = append(*l, t)
	return t, nil
}

// UpdateDescription replaces the description of the task with id and
// refreshes its UpdatedAt.
func (l List) UpdateDescription(id int, description string, now time.Time) (Task, error) {
	i, ok := l.FindByID(id)
	if !ok {
		return Task{}, &NotFoundError{ID: id}
	}
	if err := validateDescription(description); err != nil {
		return Task{}, err
	}

	l[i].Description = description
	l[i].touch(normalizeTime(now))
	return l[i], nil
}

// SetStatus sets the status of the task with id and refreshes its UpdatedAt.
func (l List) SetStatus(id int, status Status, now time.Time) (Task, error) {
	i, ok := l.FindByID(id)
	if !ok {
		return Task{}, &NotFoundError{ID: id}
	}
	if !status.Valid() {
		_, err := ParseStatus(string(status))
		return Task{}, err
	}

	l[i].Status = status
	l[i].touch(normalizeTime(now))
	return l[i], nil
}

// Delete removes the task with id and returns it.
func (l *List) Delete(id int) (Task, error) {
	i, ok := l.FindByID(id)
	if !ok {
		return Task{}, &NotFoundError{ID: id}
	}

	removed := (*l)[i]
	*l = append((*l)[:i], (*l)[i+1:]...)
	return removed, nil
}

// Filter returns the tasks whose status equals status, in list order.
// A nil status selects every task. The result never aliases l.
func (l List) Filter(status *Status) List {
	out := make(List, 0, len(l))
	for _, t := range l {
		if status == nil || t.Status == *status {
			out = append(out, t)
		}
	}
	return out
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return &ValidationError{Field: "description", Err: errEmptyDescription}
	}
	return nil
}
