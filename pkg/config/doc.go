// Package config provides host configuration management from environment variables.
//
// # Configuration Structure
//
// Server settings:
//
//	PLUGFORGE_HOST="0.0.0.0"
//	PLUGFORGE_PORT="8080"
//	PLUGFORGE_READ_TIMEOUT="15s"
//	PLUGFORGE_WRITE_TIMEOUT="15s"
//	PLUGFORGE_SHUTDOWN_TIMEOUT="30s"
//
// Plugin settings:
//
//	PLUGFORGE_PLUGIN_DIRS="/usr/lib/plugforge:/home/me/.plugforge/plugins"
//
// Observability settings:
//
//	PLUGFORGE_LOG_LEVEL="info"  # trace, debug, info, warn, error
//	PLUGFORGE_METRICS_ENABLED="true"
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Admin server: %s:%s\n", cfg.Server.Host, cfg.Server.Port)
package config
