package exercise

import (
	"errors"
	"io"
	"io/fs"
	"path"
	"strings"
)

// Store is a flat, read-only collection of named exercise definitions.
type Store interface {
	// List returns the names of the exercises in the store.
	List() (names []string, err error)
	// Open opens an exercise definition. Missing names fail with ErrExerciseNotFound.
	Open(name string) (rc io.ReadCloser, err error)
}

// FSStore is a Store over the top level of a file system.
type FSStore struct {
	FS fs.FS
}

var _ Store = (*FSStore)(nil)

// validName rejects anything that is not a plain file name.
func validName(name string) bool {
	if len(name) == 0 || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return path.Clean(name) == name
}

// List returns the regular files of the store, in directory order.
func (st *FSStore) List() (names []string, err error) {
	entries, err := fs.ReadDir(st.FS, ".")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}

	return
}

// Open opens a named exercise.
func (st *FSStore) Open(name string) (rc io.ReadCloser, err error) {
	if !validName(name) {
		err = ErrNotFound(name)
		return
	}

	file, err := st.FS.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		err = ErrNotFound(name)
		return
	}
	if err != nil {
		return
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return
	}
	if info.IsDir() {
		file.Close()
		err = ErrNotFound(name)
		return
	}

	rc = file
	return
}
