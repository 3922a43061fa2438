// Package lockedfile provides advisory file locks for coordinating
// concurrent pre-build invocations across processes.
package lockedfile

import (
	"fmt"
	"os"
)

// Mutex is an advisory lock backed by a file on disk. The zero value
// is not usable; create one with MutexAt.
type Mutex struct {
	path string
}

// MutexAt returns a Mutex that locks the file at the given path,
// creating it if needed.
func MutexAt(path string) *Mutex {
	return &Mutex{path: path}
}

// Lock acquires the lock, blocking until it is available, and returns
// the function that releases it.
func (m *Mutex) Lock() (unlock func(), err error) {
	f, err := os.OpenFile(m.path, os.O_RDWR|os.O_CREATE, 0666)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", m.path, err)
	}
	if err := sysLock(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("lock %s: %w", m.path, err)
	}
	return func() {
		sysUnlock(f)
		f.Close()
	}, nil
}
