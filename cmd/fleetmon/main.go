/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carverauto/fleetmon/pkg/api"
	"github.com/carverauto/fleetmon/pkg/config"
	"github.com/carverauto/fleetmon/pkg/logger"
	"github.com/carverauto/fleetmon/pkg/poller"
	"github.com/carverauto/fleetmon/pkg/snmp"
)

var (
	errFailedToLoadConfig = errors.New("failed to load config")
	errFailedToInitLogger = errors.New("failed to initialize logger")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fleetmon: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/fleetmon/fleetmon.yaml", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToInitLogger, err)
	}

	client := snmp.NewClient(snmp.ClientConfig{
		Timeout: time.Duration(cfg.Poll.Timeout),
		Retries: cfg.Poll.Retries,
	}, log)

	collector := poller.NewCollector(client, log)
	scanner := poller.NewScanner(collector, cfg.Poll.Concurrency, log)

	server := api.NewAPIServer(
		api.WithScanner(scanner),
		api.WithDevices(cfg.Devices),
		api.WithLogger(log),
	)

	log.Info().
		Int("device_count", len(cfg.Devices)).
		Str("listen_addr", cfg.ListenAddr).
		Msg("Starting fleetmon")

	errCh := make(chan error, 1)

	go func() {
		errCh <- server.Start(cfg.ListenAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")

		if err := server.Stop(context.Background()); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}

		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	return nil
}
