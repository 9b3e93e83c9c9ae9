package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/nibzard/task-cli/internal/task"
)

// execute runs one store-backed command and renders its outcome.
// Not-found and validation failures are printed and swallowed; anything
// else is returned.
func execute(store *task.Store, command Command, w io.Writer, logger *log.Logger) error {
	if logger == nil {
		logger = discardLogger()
	}
	logger.Debug("Dispatching command", "command", fmt.Sprintf("%T", command))

	err := dispatch(store, command, w)
	if err == nil {
		return nil
	}
	if errors.Is(err, task.ErrNotFound) || errors.Is(err, task.ErrValidation) {
		fmt.Fprintf(w, "Error: %s\n", err)
		return nil
	}
	return err
}

func dispatch(store *task.Store, command Command, w io.Writer) error {
	switch c := command.(type) {
	case AddCommand:
		t, err := store.Add(c.Description)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Task added successfully (ID: %d)\n", t.ID)

	case UpdateCommand:
		t, err := store.Update(c.ID, c.Description)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Task %d updated: %s\n", t.ID, t.Description)

	case DeleteCommand:
		t, err := store.Delete(c.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Task %d deleted\n", t.ID)

	case MarkCommand:
		var t task.Task
		var err error
		switch c.Status {
		case task.StatusInProgress:
			t, err = store.MarkInProgress(c.ID)
		case task.StatusDone:
			t, err = store.MarkDone(c.ID)
		default:
			t, err = store.SetStatus(c.ID, c.Status)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Task %d marked as %s\n", t.ID, t.Status)

	case ListCommand:
		tasks, err := store.List(c.Status)
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			fmt.Fprintln(w, "No tasks found")
			return nil
		}
		for _, t := range tasks {
			fmt.Fprintln(w, t.String())
		}

	default:
		return fmt.Errorf("unsupported command %T", command)
	}
	return nil
}
