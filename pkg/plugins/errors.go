package plugins

import (
	"errors"
	"fmt"
)

// ErrNilPlugin is the cause recorded when a plugin's factory resolves and
// runs but returns nil instead of a plugin object.
var ErrNilPlugin = errors.New("plugin factory returned nil")

// LoadError reports that the OS loader could not map the requested file
// (missing, malformed, unresolved link dependency). The registry is left
// unchanged when a LoadError is returned.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to load plugin library %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SymbolResolutionError reports that the required factory export is missing,
// has the wrong type, or returned nil. Note that on this path the library
// handle has already been registered and stays registered; only the plugin
// sequence is left unchanged.
type SymbolResolutionError struct {
	Path   string
	Symbol string
	Err    error
}

func (e *SymbolResolutionError) Error() string {
	return fmt.Sprintf("factory symbol %q not usable in %s: %v", e.Symbol, e.Path, e.Err)
}

func (e *SymbolResolutionError) Unwrap() error {
	return e.Err
}
