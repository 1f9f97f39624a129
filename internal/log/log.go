// Package log provides centralised audit logging for sift operations.
// Logs are stored in ~/.sift/log/sift-log.db and track all CLI commands
// and MCP tool invocations across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("cli:search", "search").
//		Pattern(pattern).
//		Detail("matches", total).
//		Write(err)
//
//	log.Event("mcp:sift_refactor", "refactor").
//		Pattern(pattern).
//		Detail("replacements", n).
//		Write(err)
//
// The source parameter follows the format "cli:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "cli:refactor",
// "mcp:sift_search".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source  string // e.g., "cli:search", "mcp:sift_refactor"
	Action  string // verb: search, refactor, files, config, guide
	Pattern string // input: the regex pattern supplied
	Files   string // input: the file-selection expression, if any

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "cli:{command}" (e.g., "cli:search", "cli:refactor")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:sift_search")
//
// The action describes what operation was performed:
//   - "search", "refactor", "files", "config", "guide", etc.
//
// Example:
//
//	log.Event("cli:refactor", "refactor").
//		Pattern(pattern).
//		Write(err)
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Pattern records the regex pattern this operation ran with.
func (b *Builder) Pattern(pattern string) *Builder {
	b.entry.Pattern = pattern
	return b
}

// Files records the file-selection expression, if one was supplied.
func (b *Builder) Files(files string) *Builder {
	b.entry.Files = files
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// match counts, replacement counts, dry-run flags, etc.
// Can be called multiple times to add multiple details.
//
// Example:
//
//	log.Event("cli:search", "search").
//		Detail("files", len(results)).
//		Detail("matches", total)
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
//
// This is the standard way to complete a log entry after an operation.
//
// Example:
//
//	results, err := search.Run(root, opts)
//	log.Event("cli:search", "search").Pattern(opts.Pattern).Write(err)
//	if err != nil {
//		return err
//	}
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute path to the directory sift operates on.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
