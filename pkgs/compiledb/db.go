// Package compiledb reads, generates and writes JSON compilation
// databases (compile_commands.json) for code-intelligence tools such
// as clangd.
package compiledb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// FileName is the database file name expected by clangd at the
// project root.
const FileName = "compile_commands.json"

// Command is one compilation database entry.
type Command struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Arguments []string `json:"arguments,omitempty"`
	Command   string   `json:"command,omitempty"`
	Output    string   `json:"output,omitempty"`
}

// Database is an ordered list of compilation commands.
type Database []Command

// Load reads a database from path.
func Load(path string) (Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var db Database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return db, nil
}

// Save writes the database to path atomically: the content goes to a
// temporary file in the same directory which is then renamed over the
// destination.
func (db Database) Save(path string) error {
	data, err := json.MarshalIndent(db, "", "\t")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// Merge returns a database where entries from updates replace existing
// entries for the same file and new files are appended. The receiver's
// order is preserved.
func (db Database) Merge(updates Database) Database {
	index := make(map[string]int, len(db))
	merged := slices.Clone(db)
	for i, c := range merged {
		index[c.File] = i
	}
	for _, c := range updates {
		if i, ok := index[c.File]; ok {
			merged[i] = c
			continue
		}
		index[c.File] = len(merged)
		merged = append(merged, c)
	}
	return merged
}

// Equal reports whether two databases have identical entries in
// identical order.
func (db Database) Equal(other Database) bool {
	if len(db) != len(other) {
		return false
	}
	for i := range db {
		if !commandEqual(db[i], other[i]) {
			return false
		}
	}
	return true
}

func commandEqual(a, b Command) bool {
	return a.Directory == b.Directory &&
		a.File == b.File &&
		a.Command == b.Command &&
		a.Output == b.Output &&
		slices.Equal(a.Arguments, b.Arguments)
}

// Marshal returns the serialized form Save would write. Useful for
// change detection without touching the filesystem.
func (db Database) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "\t")
	if err := enc.Encode(db); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
