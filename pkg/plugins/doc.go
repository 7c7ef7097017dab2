// Package plugins loads externally built plugins from dynamic libraries and
// manages their lifetimes.
//
// # Overview
//
// A Registry owns two ordered collections: the library handles it has mapped
// and the plugin instances constructed from them. The two are lifetime
// coupled: a plugin's executable code and method dispatch live inside its
// originating library's mapping, so the registry never releases a library
// while any plugin is still live. Unload fires every plugin's OnUnload hook
// in load order and only then releases the libraries.
//
// # Plugin binary contract
//
// A plugin shared object must export exactly one required symbol:
//
//	func CreatePlugin() plugins.Plugin
//
// The factory is invoked once per load and must return a non-nil plugin.
// No version or ABI tag is exchanged; compatibility between host and plugin
// builds is the integrator's responsibility.
//
// # Usage Example
//
// Load and unload plugins:
//
//	registry := plugins.NewRegistry(logrus.New())
//	defer registry.Unload()
//
//	if err := registry.LoadPlugin("/usr/lib/myapp/audit.so"); err != nil {
//		log.Fatal(err)
//	}
//	if err := registry.LoadPlugins("/usr/lib/myapp/plugins"); err != nil {
//		log.Fatal(err)
//	}
//
// Plugin side:
//
//	type auditPlugin struct{}
//
//	func (auditPlugin) Name() string { return "Audit" }
//	func (auditPlugin) OnLoad()      {}
//	func (auditPlugin) OnUnload()    {}
//
//	func CreatePlugin() plugins.Plugin { return auditPlugin{} }
//
// # Concurrency
//
// The registry is single-writer: LoadPlugin, LoadPlugins, and Unload must
// not run concurrently. Plugins may spawn their own goroutines once loaded;
// that is entirely their own affair.
package plugins
