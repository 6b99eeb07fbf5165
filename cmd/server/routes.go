package main

import (
	"net/http"
	"path/filepath"

	"albumvault/internal/albums"
	"albumvault/internal/config"
	"albumvault/internal/lifecycle"
	"albumvault/internal/routes"
	"albumvault/internal/storage"
)

// registerRoutes configures all HTTP routes for the service.
func registerRoutes(r routes.System, runtime *Runtime, cfg *config.Config) {
	albumSys := albums.New(runtime.Database.DB(), runtime.Storage, runtime.Logger)
	albumHandler := albums.NewHandler(albumSys, runtime.Storage, runtime.Logger, cfg.Storage.MaxUploadSizeBytes())
	r.RegisterGroup(albumHandler.Routes())

	// Read-only static exposure of the asset directories.
	for _, prefix := range []string{storage.ImagePrefix, storage.PDFPrefix} {
		urlPrefix := "/" + prefix + "/"
		dir := filepath.Join(cfg.Storage.BasePath, prefix)
		r.RegisterRoute(routes.Route{
			Method:  "GET",
			Pattern: urlPrefix,
			Handler: staticHandler(urlPrefix, dir),
		})
	}

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: func(w http.ResponseWriter, req *http.Request) {
			handleReadinessCheck(w, runtime.Lifecycle)
		},
	})
}

func staticHandler(urlPrefix, dir string) http.HandlerFunc {
	fs := http.StripPrefix(urlPrefix, http.FileServer(http.Dir(dir)))
	return fs.ServeHTTP
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
