package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nibzard/task-cli/internal/task"
)

// Command is one parsed invocation. Each variant carries its payload
// already typed and validated, so the store never sees raw arguments.
type Command interface {
	command()
}

// AddCommand creates a task.
type AddCommand struct {
	Description string
}

// UpdateCommand replaces a task description.
type UpdateCommand struct {
	ID          int
	Description string
}

// DeleteCommand removes a task.
type DeleteCommand struct {
	ID int
}

// MarkCommand sets a task status.
type MarkCommand struct {
	ID     int
	Status task.Status
}

// ListCommand lists tasks, optionally filtered by status.
type ListCommand struct {
	Status *task.Status
}

// HelpCommand prints usage. Unknown is set when the user typed a command
// name that does not exist.
type HelpCommand struct {
	Unknown string
}

// VersionCommand prints the build version.
type VersionCommand struct{}

func (AddCommand) command()     {}
func (UpdateCommand) command()  {}
func (DeleteCommand) command()  {}
func (MarkCommand) command()    {}
func (ListCommand) command()    {}
func (HelpCommand) command()    {}
func (VersionCommand) command() {}

// UsageError reports arguments that do not fit a command's shape.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// Parse turns argv (without the program name) into a Command.
// Shape problems are reported as *UsageError.
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return HelpCommand{}, nil
	}

	name, rest := args[0], args[1:]
	switch name {
	case "add":
		return parseAdd(rest)
	case "update":
		return parseUpdate(rest)
	case "delete":
		id, err := parseSingleID(name, rest)
		if err != nil {
			return nil, err
		}
		return DeleteCommand{ID: id}, nil
	case "mark-in-progress":
		id, err := parseSingleID(name, rest)
		if err != nil {
			return nil, err
		}
		return MarkCommand{ID: id, Status: task.StatusInProgress}, nil
	case "mark-done":
		id, err := parseSingleID(name, rest)
		if err != nil {
			return nil, err
		}
		return MarkCommand{ID: id, Status: task.StatusDone}, nil
	case "list":
		return parseList(rest)
	case "version", "--version", "-v":
		return VersionCommand{}, nil
	case "help", "--help", "-h":
		return HelpCommand{}, nil
	default:
		return HelpCommand{Unknown: name}, nil
	}
}

func parseAdd(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, usageErrorf("description is required for 'add'")
	}
	desc, err := joinDescription(args)
	if err != nil {
		return nil, err
	}
	return AddCommand{Description: desc}, nil
}

func parseUpdate(args []string) (Command, error) {
	if len(args) < 2 {
		return nil, usageErrorf("'update' requires <id> and <new-description>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}
	desc, err := joinDescription(args[1:])
	if err != nil {
		return nil, err
	}
	return UpdateCommand{ID: id, Description: desc}, nil
}

func parseList(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return ListCommand{}, nil
	case 1:
		status, err := task.ParseStatus(args[0])
		if err != nil {
			return nil, &UsageError{Message: err.Error()}
		}
		return ListCommand{Status: &status}, nil
	default:
		return nil, usageErrorf("'list' accepts at most one [status]")
	}
}

func parseSingleID(name string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, usageErrorf("'%s' requires exactly one <id>", name)
	}
	return parseID(args[0])
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, usageErrorf("invalid task id %q: must be an integer", s)
	}
	return id, nil
}

func joinDescription(args []string) (string, error) {
	desc := strings.Join(args, " ")
	if strings.TrimSpace(desc) == "" {
		return "", usageErrorf("description must not be empty")
	}
	return desc, nil
}
