// Package main provides the entry point for the Horner server application.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/hornerapp/horner-server/internal/di"
	"github.com/hornerapp/horner-server/internal/di/providers"
	"github.com/hornerapp/horner-server/internal/logger"
)

func main() {
	// Create DI container
	injector := di.NewContainer()

	// Bootstrap all services
	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap server: %v\n", err)
		os.Exit(1)
	}

	// Get logger for shutdown messages
	log := do.MustInvoke[*logger.Logger](injector)

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	// Shutdown all services in reverse order
	// The DI container handles shutdown order automatically
	if err := injector.Shutdown(); err != nil {
		log.Error("Shutdown error", "error", err)
	}

	// Databases use wrapper types, so close them explicitly after the
	// container shutdown has drained everything that writes to them.
	if storeHandle, err := do.Invoke[*providers.StoreHandle](injector); err == nil {
		log.Info("Closing local database...")
		if err := storeHandle.Shutdown(); err != nil {
			log.Error("Failed to close local database", "error", err)
		}
	}

	if remoteHandle, err := do.Invoke[*providers.RemoteStoreHandle](injector); err == nil {
		log.Info("Closing remote ledger store...")
		if err := remoteHandle.Shutdown(); err != nil {
			log.Error("Failed to close remote ledger store", "error", err)
		}
	}

	log.Info("Keep reading...")
}
