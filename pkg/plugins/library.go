package plugins

// Library is an open handle to a dynamically loaded code module. It is
// exclusively owned by the registry that opened it; nothing borrows it out.
type Library interface {
	// Path returns the filesystem path the library was opened from.
	Path() string
	// Lookup resolves an exported symbol by name.
	Lookup(name string) (any, error)
	// Close releases the registry's hold on the mapping. Whether the
	// mapping is actually unmapped is up to the implementation; the
	// stdlib-backed handle cannot unmap (the Go runtime keeps plugins
	// mapped for the life of the process).
	Close() error
}

// LibraryOpener opens the dynamic library at path. The default opener wraps
// the stdlib plugin package; tests substitute their own.
type LibraryOpener func(path string) (Library, error)
