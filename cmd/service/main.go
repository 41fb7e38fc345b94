package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heatgrid/heatgrid/pkg/config"
	"github.com/heatgrid/heatgrid/pkg/frame"
	"github.com/heatgrid/heatgrid/pkg/heatmap"
	"github.com/heatgrid/heatgrid/pkg/logger"
	"github.com/heatgrid/heatgrid/pkg/service"
)

func main() {
	configFile := flag.String("config", config.ConstantConfigFilename, "Path to config file")
	hostFlag := flag.String("host", "", "HTTP service host")
	portFlag := flag.Int("port", 0, "HTTP service port")
	dataFlag := flag.String("data", "", "Path to the table file (.csv, .json or .xlsx)")
	logFileFlag := flag.String("log-file", "", "Path to log file")
	logLevelFlag := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	toStdout := flag.Bool("stdout", false, "Log to stdout")
	insecureAllowRemote := flag.Bool("insecure-allow-remote", false, "Allow binding to non-localhost addresses")

	flag.Parse()

	cfg := config.Load(*configFile)

	// Override config with flags if provided
	if *hostFlag != "" {
		cfg.ServiceHost = *hostFlag
	}
	if *portFlag != 0 {
		cfg.ServicePort = *portFlag
	}
	if *dataFlag != "" {
		cfg.DataFile = *dataFlag
	}
	if *logFileFlag != "" {
		cfg.LogFile = *logFileFlag
	}
	if *logLevelFlag != "" {
		cfg.LogLevel = *logLevelFlag
	}
	if *insecureAllowRemote {
		cfg.InsecureAllowRemote = true
	}

	if cfg.DataFile == "" {
		fmt.Fprintln(os.Stderr, "No table file configured. Use --data or set HG_DATA_FILE.")
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var logF *os.File
	var output io.Writer = os.Stdout

	if !*toStdout {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v. Logging to stdout.\n", cfg.LogFile, err)
		} else {
			logF = f
			output = f
		}
	}

	// Configure slog level
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v, defaulting to INFO\n", err)
	}

	handler := &logger.SimpleHandler{Output: output, Level: level}
	slog.SetDefault(slog.New(handler))

	opts, err := panelOptions(cfg)
	if err != nil {
		slog.Error("Invalid panel configuration", "error", err)
		os.Exit(1)
	}

	dataFile := cfg.DataFile
	loader := func() (*frame.Table, error) {
		return frame.LoadFile(dataFile)
	}
	// Fail early on unreadable or pivot-less data instead of on the
	// first request.
	if _, err := loader(); err != nil {
		slog.Error("Failed to load table", "file", dataFile, "error", err)
		os.Exit(1)
	}

	s := service.New(cfg.ServiceHost, cfg.ServicePort, loader, opts, cfg.Width, cfg.Height)

	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("Service failed", "error", err)
			os.Exit(1)
		}
	}()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	for sig := range sigChan {
		switch sig {
		case syscall.SIGHUP:
			if logF != nil {
				newF, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
				if err == nil {
					_ = logF.Close()
					logF = newF

					// Re-create slog handler with new file
					handler := &logger.SimpleHandler{Output: logF, Level: level}
					slog.SetDefault(slog.New(handler))

					slog.Info("Log file rotated")
				} else {
					slog.Error("Failed to rotate log", "error", err)
				}
			}
		case syscall.SIGINT, syscall.SIGTERM:
			slog.Info("Shutting down service...")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.Shutdown(ctx); err != nil {
				slog.Error("Shutdown error", "error", err)
			}
			return
		}
	}
}

// panelOptions maps service config onto render options.
func panelOptions(cfg *config.Config) (heatmap.Options, error) {
	opts := heatmap.DefaultOptions()

	dir, err := heatmap.ParseDirection(cfg.Direction)
	if err != nil {
		return opts, err
	}
	opts.Direction = dir
	opts.ToggleColor = cfg.ToggleColor
	opts.RemoveEmptyCols = cfg.RemoveEmptyCols
	opts.Background = cfg.Background
	opts.CellPadding = cfg.CellPadding

	return opts, nil
}
