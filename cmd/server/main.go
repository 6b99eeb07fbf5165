// Command server runs the album record service.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"albumvault/internal/config"
	"albumvault/internal/routes"
	"albumvault/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := cfg.Finalize(); err != nil {
		os.Stderr.WriteString("invalid configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	runtime, err := NewRuntime(cfg)
	if err != nil {
		os.Stderr.WriteString("failed to initialize runtime: " + err.Error() + "\n")
		os.Exit(1)
	}

	r := routes.New(runtime.Logger)
	registerRoutes(r, runtime, cfg)

	handler := buildMiddleware(runtime, cfg).Apply(r.Build())

	if err := runtime.Start(); err != nil {
		runtime.Logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	srv := server.New(&cfg.Server, handler, runtime.Logger)
	if err := srv.Start(runtime.Lifecycle); err != nil {
		runtime.Logger.Error("server start failed", "error", err)
		os.Exit(1)
	}

	go func() {
		runtime.Lifecycle.WaitForStartup()
		runtime.Logger.Info("all subsystems ready", "addr", cfg.Server.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	runtime.Logger.Info("initiating shutdown")
	if err := runtime.Lifecycle.Shutdown(cfg.Server.ShutdownTimeoutDuration()); err != nil {
		runtime.Logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	runtime.Logger.Info("service stopped")
}
