// Package storage persists task lists as JSON documents.
package storage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"

	"github.com/nibzard/task-cli/internal/task"
)

//go:embed schema.json
var schemaJSON string

const schemaURL = "https://github.com/nibzard/task-cli/tasks.schema.json"

// FileRepository stores the task list as a single JSON array in one file.
type FileRepository struct {
	fs     afero.Fs
	path   string
	schema *jsonschema.Schema
	logger *log.Logger
}

// Option configures a FileRepository.
type Option func(*FileRepository)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(r *FileRepository) {
		r.logger = logger
	}
}

// NewFileRepository returns a repository for path on fs.
func NewFileRepository(fs afero.Fs, path string, opts ...Option) (*FileRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("task file path is empty")
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile task file schema: %w", err)
	}

	r := &FileRepository{
		fs:     fs,
		path:   path,
		schema: schema,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// NewOSFileRepository returns a repository for path on the host filesystem.
func NewOSFileRepository(path string, opts ...Option) (*FileRepository, error) {
	return NewFileRepository(afero.NewOsFs(), path, opts...)
}

// Path returns the backing file path.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the task file. A missing file yields an empty list.
// A file that is not valid JSON or not shaped as an array of task records
// yields a *task.CorruptStoreError and is never modified.
func (r *FileRepository) Load() (task.List, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.Debug("Task file not found, starting empty", "path", r.path)
			return task.List{}, nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}

	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, r.corrupt(fmt.Errorf("parse: %w", err))
	}
	if dec.More() {
		return nil, r.corrupt(fmt.Errorf("parse: unexpected data after top-level value"))
	}

	if err := r.schema.Validate(doc); err != nil {
		return nil, r.corrupt(describeSchemaError(err))
	}

	var tasks task.List
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, r.corrupt(fmt.Errorf("decode: %w", err))
	}
	if tasks == nil {
		tasks = task.List{}
	}
	return tasks, nil
}

// Save writes the full list with 2-space indentation and a trailing newline,
// replacing any previous contents.
func (r *FileRepository) Save(tasks task.List) error {
	if tasks == nil {
		tasks = task.List{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal task file: %w", err)
	}

	// Add trailing newline
	data = append(data, '\n')

	if dir := filepath.Dir(r.path); dir != "" && dir != "." {
		if err := r.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create task file dir: %w", err)
		}
	}
	if err := afero.WriteFile(r.fs, r.path, data, 0644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

func (r *FileRepository) corrupt(err error) error {
	return &task.CorruptStoreError{Path: r.path, Err: err}
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
}

// describeSchemaError flattens a schema validation error into one line,
// naming the first offending location.
func describeSchemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	path := jsonPointerToPath(leaf.InstanceLocation)
	if path == "" {
		return fmt.Errorf("top level: %s", leaf.Message)
	}
	return fmt.Errorf("%s: %s", path, leaf.Message)
}

// jsonPointerToPath converts "/0/id" into "[0].id".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
