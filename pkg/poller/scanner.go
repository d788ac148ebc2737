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

package poller

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carverauto/fleetmon/pkg/logger"
	"github.com/carverauto/fleetmon/pkg/models"
)

const defaultConcurrency = 10

// Scanner runs one scan cycle over the configured fleet. Devices are
// polled independently by a bounded worker pool; each result lands in a
// slice slot matching the device's input position, so output order is
// stable no matter which queries finish first.
type Scanner struct {
	collector   MetricCollector
	concurrency int
	logger      logger.Logger
}

// NewScanner creates a Scanner with the given worker pool size.
// A non-positive concurrency falls back to the default.
func NewScanner(collector MetricCollector, concurrency int, log logger.Logger) *Scanner {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &Scanner{
		collector:   collector,
		concurrency: concurrency,
		logger:      log,
	}
}

// Scan polls every device and returns one status record per input
// descriptor, in input order. Duplicate IPs are not collapsed: each
// descriptor produces exactly one record.
func (s *Scanner) Scan(ctx context.Context, devices []models.Device) []models.DeviceStatus {
	scanID := uuid.New().String()
	started := time.Now()

	s.logger.Info().
		Str("scan_id", scanID).
		Int("device_count", len(devices)).
		Msg("Starting fleet scan")

	// Identity is filled in up front; a slot left unpolled on
	// cancellation still reads as a well-formed offline record.
	results := make([]models.DeviceStatus, len(devices))

	for i := range devices {
		results[i] = models.DeviceStatus{
			Name:    devices[i].DisplayName(),
			IP:      devices[i].IP,
			Metrics: models.DeviceMetrics{Status: models.StatusOffline},
		}
	}

	workers := s.concurrency
	if workers > len(devices) {
		workers = len(devices)
	}

	if workers == 0 {
		return results
	}

	jobs := make(chan int, workers)

	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range jobs {
				results[i].Metrics = s.collector.Collect(&devices[i])
			}
		}()
	}

feed:
	for i := range devices {
		select {
		case jobs <- i:
		case <-ctx.Done():
			s.logger.Warn().Str("scan_id", scanID).Msg("Scan canceled, remaining devices reported offline")
			break feed
		}
	}

	close(jobs)
	wg.Wait()

	summary := Summarize(results)

	s.logger.Info().
		Str("scan_id", scanID).
		Int("online", summary.Online).
		Int("offline", summary.Offline).
		Dur("elapsed", time.Since(started)).
		Msg("Fleet scan complete")

	return results
}
