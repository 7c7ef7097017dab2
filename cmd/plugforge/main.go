package main

import (
	"context"
	"encoding/json"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/plugforge/plugforge/pkg/config"
	"github.com/plugforge/plugforge/pkg/plugins"
)

func main() {
	// Parse command line flags
	port := flag.String("port", "", "Port for the admin server (overrides PLUGFORGE_PORT)")
	pluginDir := flag.String("plugin-dir", "", "Plugin directory to load (overrides PLUGFORGE_PLUGIN_DIRS)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *pluginDir != "" {
		cfg.Plugins.Dirs = []string{*pluginDir}
	}

	log := logrus.New()
	log.SetLevel(cfg.Observability.LogLevel)

	registry := plugins.NewRegistry(log)
	promRegistry := prometheus.NewRegistry()
	if cfg.Observability.MetricsEnabled {
		registry.SetMetrics(plugins.NewMetrics(promRegistry))
	}

	for _, dir := range cfg.Plugins.Dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			log.WithField("dir", dir).Debug("Plugin directory does not exist, skipping")
			continue
		}
		if err := registry.LoadPlugins(dir); err != nil {
			// Hooks of anything already loaded still have to fire.
			registry.Unload()
			log.WithError(err).Fatal("Failed to load plugins")
		}
	}
	log.WithField("plugins", registry.PluginNames()).Info("Plugins loaded")

	router := mux.NewRouter()
	router.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/plugins", handleListPlugins(registry)).Methods(http.MethodGet)
	if cfg.Observability.MetricsEnabled {
		router.Handle("/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("Starting admin server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Admin server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("Admin server shutdown failed")
	}

	// The admin surface is down before any unload hook fires, so nothing
	// can observe a half-unloaded registry.
	registry.Unload()
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func handleListPlugins(registry *plugins.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(registry.Instances())
	}
}
