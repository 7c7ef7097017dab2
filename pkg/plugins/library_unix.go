//go:build linux || darwin || freebsd

package plugins

import (
	"plugin"
)

// goLibrary wraps a stdlib plugin handle.
type goLibrary struct {
	path string
	p    *plugin.Plugin
}

// OpenLibrary is the default LibraryOpener on platforms where the stdlib
// plugin package is available.
func OpenLibrary(path string) (Library, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}
	return &goLibrary{path: path, p: p}, nil
}

func (l *goLibrary) Path() string {
	return l.path
}

func (l *goLibrary) Lookup(name string) (any, error) {
	return l.p.Lookup(name)
}

// Close drops the handle's reference to the mapping. The runtime never
// unmaps a loaded plugin, so the code stays valid for the process lifetime.
func (l *goLibrary) Close() error {
	l.p = nil
	return nil
}
