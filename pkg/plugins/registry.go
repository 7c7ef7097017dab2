package plugins

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// libraryExts maps GOOS to the dynamic library extension discovery accepts.
var libraryExts = map[string]string{
	"linux":   ".so",
	"freebsd": ".so",
	"darwin":  ".dylib",
	"windows": ".dll",
}

// Registry owns every loaded library handle and every live plugin built from
// them, and runs the load and unload protocols that keep the two in step.
//
// A library must stay mapped for at least as long as any plugin whose code
// lives inside it: a plugin's method dispatch routes into its originating
// library's mapping, so releasing the library first would leave calls going
// through dangling code. The registry therefore keeps both collections in
// load order and only ever empties them through Unload, which fires every
// unload hook before it releases any library.
//
// The registry has no internal locking. Callers that share one across
// goroutines must serialize access themselves.
type Registry struct {
	instances []*PluginInstance
	libraries []Library

	opener  LibraryOpener
	log     *logrus.Logger
	metrics *Metrics
}

// NewRegistry creates an empty registry. If log is nil a default logger is
// used. A finalizer is installed so that a registry reclaimed while it still
// holds entries runs the same unload protocol as an explicit Unload call;
// hooks always run ahead of library release no matter how the registry's
// scope ends.
func NewRegistry(log *logrus.Logger) *Registry {
	if log == nil {
		log = logrus.New()
	}

	r := &Registry{
		opener: OpenLibrary,
		log:    log,
	}
	runtime.SetFinalizer(r, (*Registry).Unload)
	return r
}

// SetOpener replaces the library opener. Tests use this to exercise the
// load/unload protocol without building real shared objects.
func (r *Registry) SetOpener(open LibraryOpener) {
	r.opener = open
}

// SetMetrics attaches prometheus metrics to the registry. A nil Metrics is
// fine; all instrumentation is skipped.
func (r *Registry) SetMetrics(m *Metrics) {
	r.metrics = m
}

// LoadPlugin loads one plugin from the dynamic library at path.
//
// On success both the library count and the plugin count grow by one. If the
// OS loader cannot map the file a LoadError is returned and the registry is
// unchanged. If the factory symbol is missing, mis-typed, or returns nil, a
// SymbolResolutionError is returned; the library handle stays registered on
// that path even though no plugin was added (it is released on the next
// Unload).
func (r *Registry) LoadPlugin(path string) error {
	return r.loadPlugin(path, nil)
}

func (r *Registry) loadPlugin(path string, manifest *Manifest) error {
	start := time.Now()

	lib, err := r.opener(path)
	if err != nil {
		r.metrics.observeLoad("load_error", time.Since(start))
		return &LoadError{Path: path, Err: err}
	}

	// The library has to outlive every plugin built from it, so it goes
	// into the registry's storage before anything else touches it. All
	// work below goes through the stored handle, never a temporary.
	r.libraries = append(r.libraries, lib)
	stored := r.libraries[len(r.libraries)-1]
	defer func() {
		r.metrics.setLive(len(r.instances), len(r.libraries))
	}()

	sym, err := stored.Lookup(FactorySymbol)
	if err != nil {
		r.metrics.observeLoad("symbol_error", time.Since(start))
		return &SymbolResolutionError{Path: path, Symbol: FactorySymbol, Err: err}
	}

	factory, ok := sym.(func() Plugin)
	if !ok {
		r.metrics.observeLoad("symbol_error", time.Since(start))
		return &SymbolResolutionError{
			Path:   path,
			Symbol: FactorySymbol,
			Err:    fmt.Errorf("symbol has type %T, want func() plugins.Plugin", sym),
		}
	}

	p := factory()
	if p == nil {
		r.metrics.observeLoad("symbol_error", time.Since(start))
		return &SymbolResolutionError{Path: path, Symbol: FactorySymbol, Err: ErrNilPlugin}
	}

	name := p.Name()
	r.log.WithFields(logrus.Fields{
		"plugin": name,
		"path":   path,
	}).Debug("Loaded plugin")

	p.OnLoad()

	r.instances = append(r.instances, &PluginInstance{
		InstanceID:  uuid.NewString(),
		Name:        name,
		LibraryPath: path,
		LoadedAt:    time.Now(),
		Manifest:    manifest,
		plugin:      p,
	})

	r.metrics.observeLoad("success", time.Since(start))
	return nil
}

// LoadPlugins loads every plugin library found directly in dir, in
// lexicographic filename order. Entries that are directories or that lack
// the platform's dynamic library extension are skipped. A sidecar manifest
// (<name>.yaml next to <name>.so) is loaded and validated when present.
//
// Loading stops at the first failure and the error is returned; plugins
// loaded before the failure stay loaded.
func (r *Registry) LoadPlugins(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("unable to read plugin directory %s: %w", dir, err)
	}

	ext := libraryExts[runtime.GOOS]
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		manifest, err := sidecarManifest(path)
		if err != nil {
			return err
		}

		if err := r.loadPlugin(path, manifest); err != nil {
			return err
		}
	}

	return nil
}

// sidecarManifest loads and validates the optional manifest next to a
// library file. A missing manifest is not an error; an invalid one is.
func sidecarManifest(libPath string) (*Manifest, error) {
	base := strings.TrimSuffix(libPath, filepath.Ext(libPath))
	manifestPath := base + ".yaml"

	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		return nil, nil
	}

	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	if verrs := ValidateManifest(manifest); len(verrs) > 0 {
		return nil, fmt.Errorf("manifest validation failed for %s: %v", manifestPath, verrs)
	}

	return manifest, nil
}

// Unload tears down everything the registry holds: it fires OnUnload on
// every plugin in load order, drops the instances, and only then releases
// the library handles, also in load order. Calling Unload on an empty
// registry is a no-op, so it is safe to call more than once.
func (r *Registry) Unload() {
	if len(r.instances) == 0 && len(r.libraries) == 0 {
		return
	}

	r.log.Debug("Unloading plugins")

	for _, inst := range r.instances {
		r.log.WithField("plugin", inst.Name).Trace("Firing OnUnload")
		inst.plugin.OnUnload()
		inst.plugin = nil
		r.metrics.observeUnload()
	}
	r.instances = nil

	// No library is released until every unload hook above has returned;
	// a hook may still execute code from any of the loaded mappings.
	for _, lib := range r.libraries {
		if err := lib.Close(); err != nil {
			r.log.WithError(err).WithField("path", lib.Path()).Warn("Failed to close plugin library")
		}
	}
	r.libraries = nil

	r.metrics.setLive(0, 0)
}

// Count returns the number of live plugin instances.
func (r *Registry) Count() int {
	return len(r.instances)
}

// LibraryCount returns the number of registered library handles. It can
// exceed Count when a load failed after the library was mapped.
func (r *Registry) LibraryCount() int {
	return len(r.libraries)
}

// PluginNames returns the names of the live plugins in load order.
func (r *Registry) PluginNames() []string {
	names := make([]string, 0, len(r.instances))
	for _, inst := range r.instances {
		names = append(names, inst.Name)
	}
	return names
}

// Instances returns runtime information for the live plugins in load order.
func (r *Registry) Instances() []*PluginInstance {
	out := make([]*PluginInstance, len(r.instances))
	copy(out, r.instances)
	return out
}
