// Package main is the entrypoint of Grabarr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grabarr/internal/app"
	"grabarr/internal/cfg"
	"grabarr/internal/domain/keys"
	"grabarr/internal/domain/paths"
	"grabarr/internal/utils/logging"
	"grabarr/internal/validation"

	"github.com/spf13/viper"
)

// init runs before the program begins.
func init() {
	if err := paths.InitProgFilesDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Grabarr exiting with error: %v\n", err)
		os.Exit(1)
	}
}

// main is the main entrypoint of the program (duh!).
func main() {
	startTime := time.Now()

	cfg.InitCommands()
	if err := cfg.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !viper.GetBool(keys.Execute) {
		return // Exit early if not meant to execute
	}

	settings, err := cfg.LoadSettings(cfg.SettingsPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Grabarr exiting with error: %v\n", err)
		os.Exit(1)
	}

	if err := paths.InitDownloadDirs(viper.GetString(keys.DownloadDir)); err != nil {
		fmt.Fprintf(os.Stderr, "Grabarr exiting with error: %v\n", err)
		os.Exit(1)
	}

	debugLevel := validation.ValidateDebugLevel(viper.GetInt(keys.DebugLevel))
	if err := logging.Setup(debugLevel, paths.SessionLogPath); err != nil {
		fmt.Printf("\nNotice: Log file was not created\nReason: %v\n\n", err)
	}
	defer func() {
		if err := logging.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close session log: %v\n", err)
		}
	}()

	logging.I("Grabarr started at: %v", startTime.Format("2006-01-02 15:04:05.00 MST"))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, settings); err != nil {
		logging.E("Error: %v", err)
		os.Exit(1)
	}

	endTime := time.Now()
	logging.I("Grabarr finished at: %v", endTime.Format("2006-01-02 15:04:05.00 MST"))
	logging.I("Time elapsed: %.2f seconds", endTime.Sub(startTime).Seconds())
}
