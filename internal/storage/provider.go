// Package storage defines the content-directory abstraction.
package storage

// Provider is the read-only interface over the backing content directory.
// The corpus is authored elsewhere; the serving tier never writes.
type Provider interface {
	// List returns the base names of every content file in the directory.
	// Order follows directory iteration; callers must not assume sorting.
	List() ([]string, error)
	// Read returns the raw bytes of the named content file.
	Read(name string) ([]byte, error)
	// Exists reports whether the named content file is present.
	Exists(name string) bool
}
