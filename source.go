package envx

import (
	"maps"
	"os"
	"strings"
)

// Source is the configuration backing a Validator. It abstracts the process
// environment so tests and embedders can supply isolated fixtures instead of
// mutating process-wide state.
type Source interface {
	// Lookup returns the raw value of a variable and whether it is present.
	Lookup(name string) (string, bool)

	// Set stores a value. Implementations backed by the process environment
	// write through to it.
	Set(name, value string) error

	// Entries returns a snapshot of every variable currently in the source.
	Entries() map[string]string
}

// osSource reads and writes the process environment.
type osSource struct{}

// OS returns a Source backed by the process environment. The process
// environment is global mutable state; concurrent writers race as usual.
func OS() Source {
	return osSource{}
}

func (osSource) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (osSource) Set(name, value string) error {
	return os.Setenv(name, value)
}

func (osSource) Entries() map[string]string {
	environ := os.Environ()
	entries := make(map[string]string, len(environ))
	for _, kv := range environ {
		if name, value, ok := strings.Cut(kv, "="); ok {
			entries[name] = value
		}
	}
	return entries
}

// mapSource is an in-memory Source, primarily for tests.
type mapSource struct {
	values map[string]string
}

// Map returns a Source backed by the given map. The map is copied, so later
// mutations of the argument do not leak into the source.
func Map(values map[string]string) Source {
	copied := make(map[string]string, len(values))
	maps.Copy(copied, values)
	return &mapSource{values: copied}
}

func (s *mapSource) Lookup(name string) (string, bool) {
	value, ok := s.values[name]
	return value, ok
}

func (s *mapSource) Set(name, value string) error {
	s.values[name] = value
	return nil
}

func (s *mapSource) Entries() map[string]string {
	entries := make(map[string]string, len(s.values))
	maps.Copy(entries, s.values)
	return entries
}
