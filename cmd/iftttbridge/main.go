// Package main runs the HTTP bridge between the IFTTT service protocol and
// Microsoft Graph. IFTTT calls the trigger, action and field-option
// endpoints under /ifttt/v1; every Graph call is made with the end user's
// bearer token forwarded by IFTTT.
//
// Configuration comes from an optional YAML file plus environment
// variables (IFTTT_KEY, TENANT_ID, CLIENT_ID, CLIENT_SECRET, TEST_USER,
// TEST_PWD, PORT, LOG_LEVEL, GRAPH_RPS, AUDIT_LOG).
//
// Example usage:
//
//	IFTTT_KEY=... PORT=8080 iftttbridge -config config.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"msgraphifttt/internal/common/logger"
	"msgraphifttt/internal/common/version"
	"msgraphifttt/internal/config"
	"msgraphifttt/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

// setupSignalHandling configures graceful shutdown on interrupt signals.
func setupSignalHandling() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal. Shutting down gracefully...")
		cancel()
	}()

	return ctx, cancel
}

func run() error {
	configPath := flag.String("config", "", "path to YAML configuration file")
	showVersion := flag.Bool("version", false, "print version and exit")
	verbose := flag.Bool("verbose", false, "verbose logging (DEBUG level)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Microsoft Graph IFTTT bridge - Version %s\n", version.Get())
		return nil
	}

	ctx, cancel := setupSignalHandling()
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if *verbose {
		cfg.Verbose = true
	}

	slogger := logger.SetupLogger(cfg.Verbose, cfg.LogLevel)
	logger.LogInfo(slogger, "Application starting",
		"version", version.Get(), "addr", cfg.ListenAddr, "test_setup", cfg.SetupConfigured())

	var audit *logger.AuditLogger
	if cfg.AuditLog {
		audit, err = logger.NewAuditLogger()
		if err != nil {
			log.Printf("Warning: Could not initialize audit logging: %v", err)
			audit = nil
		}
	}
	if audit != nil {
		defer audit.Close()
	}

	return server.New(cfg, slogger, audit).ListenAndServe(ctx)
}
