package plugins

import (
	"time"
)

// FactorySymbol is the exported symbol every plugin shared object must
// provide. It must have type `func() Plugin`.
const FactorySymbol = "CreatePlugin"

// Plugin is the base interface all plugins must implement.
//
// The lifecycle hooks have no error return: there is no structured channel
// for a plugin to report hook failure back to the host. A plugin that fails
// inside a hook can only log or terminate the process itself.
type Plugin interface {
	// Name returns a stable human-readable identifier. It must be
	// side-effect free and safe to call any number of times.
	Name() string

	// OnLoad is fired exactly once, immediately after construction and
	// before the load call returns. Plugins perform their initialization
	// here (allocate resources, register with the host, ...).
	OnLoad()

	// OnUnload is fired exactly once, before the instance is dropped, so
	// the plugin can release whatever OnLoad or later activity acquired.
	OnUnload()
}

// PluginFactory is the required shape of the FactorySymbol export.
type PluginFactory func() Plugin

// PluginInstance contains runtime information about one loaded plugin.
type PluginInstance struct {
	// InstanceID uniquely identifies this load of the plugin.
	InstanceID string `json:"instance_id"`
	// Name is the plugin's Name() as recorded at load time.
	Name string `json:"name"`
	// LibraryPath is the shared object the plugin was loaded from.
	LibraryPath string `json:"library_path"`
	// LoadedAt is when OnLoad completed.
	LoadedAt time.Time `json:"loaded_at"`
	// Manifest is the sidecar manifest, if one was found during discovery.
	Manifest *Manifest `json:"manifest,omitempty"`

	plugin Plugin
}

// Plugin returns the live plugin object.
func (pi *PluginInstance) Plugin() Plugin {
	return pi.plugin
}
