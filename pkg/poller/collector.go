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

// Package poller contains the fleetmon polling engine: the per-device
// metric collector, the fleet scanner, and the status summary reduction.
package poller

import (
	"strconv"

	"github.com/carverauto/fleetmon/pkg/logger"
	"github.com/carverauto/fleetmon/pkg/models"
)

// Standard OIDs polled per device.
const (
	oidSysUpTime = ".1.3.6.1.2.1.1.3.0"
	oidSysName   = ".1.3.6.1.2.1.1.5.0"

	// Host resources MIB table columns
	oidHrProcessorLoad = ".1.3.6.1.2.1.25.3.3.1.2"
	oidHrStorageSize   = ".1.3.6.1.2.1.25.2.3.1.5"
	oidHrStorageUsed   = ".1.3.6.1.2.1.25.2.3.1.6"

	// Interface table operational status column
	oidIfOperStatus = ".1.3.6.1.2.1.2.2.1.8"

	// ifOperStatus value for an interface that is up
	ifOperStatusUp = 1

	percent = 100.0
)

// Collector derives one DeviceMetrics record per device. Every failure
// mode, from an unreachable device down to a single corrupt table entry,
// degrades to an offline status or a null metric; nothing propagates as
// an error, so one misbehaving device can never abort a fleet scan.
type Collector struct {
	client SNMPClient
	logger logger.Logger
}

// NewCollector creates a Collector polling through the given client.
func NewCollector(client SNMPClient, log logger.Logger) *Collector {
	return &Collector{client: client, logger: log}
}

// Collect polls one device. The sysUpTime probe doubles as the
// connectivity check: when it fails the device is reported offline and
// no further queries are issued, so a dead device costs exactly one
// timeout budget instead of five.
func (c *Collector) Collect(device *models.Device) models.DeviceMetrics {
	upTime, err := c.client.Get(device, oidSysUpTime)
	if err != nil {
		c.logger.Debug().Err(err).Str("target", device.IP).Msg("Uptime probe failed, marking device offline")

		return models.DeviceMetrics{Status: models.StatusOffline}
	}

	metrics := models.DeviceMetrics{
		Status:    models.StatusOnline,
		SysUpTime: &upTime,
	}

	if name, err := c.client.Get(device, oidSysName); err == nil {
		metrics.SysName = &name
	} else {
		c.logger.Debug().Err(err).Str("target", device.IP).Msg("sysName query failed")
	}

	metrics.CPULoad = c.collectCPULoad(device)
	metrics.MemoryUsage = c.collectMemoryUsage(device)
	metrics.InterfacesUp, metrics.InterfacesTotal, metrics.InterfacesUpPct = c.collectInterfaces(device)

	return metrics
}

// collectCPULoad averages the per-processor load table. A single entry
// that fails to parse invalidates the whole aggregate rather than
// skewing the average with the rows that happened to parse.
func (c *Collector) collectCPULoad(device *models.Device) *float64 {
	values, err := c.client.Walk(device, oidHrProcessorLoad)
	if err != nil {
		c.logger.Debug().Err(err).Str("target", device.IP).Msg("hrProcessorLoad walk truncated")
	}

	loads, ok := parseInts(values)
	if !ok || len(loads) == 0 {
		return nil
	}

	var sum int64

	for _, load := range loads {
		sum += load
	}

	mean := float64(sum) / float64(len(loads))

	return &mean
}

// collectMemoryUsage approximates memory usage from the hrStorage used
// and size table columns. The two walks must be index-aligned, so any
// length mismatch (or empty table, or parse failure) nulls the metric.
func (c *Collector) collectMemoryUsage(device *models.Device) *float64 {
	usedValues, err := c.client.Walk(device, oidHrStorageUsed)
	if err != nil {
		c.logger.Debug().Err(err).Str("target", device.IP).Msg("hrStorageUsed walk truncated")
	}

	sizeValues, err := c.client.Walk(device, oidHrStorageSize)
	if err != nil {
		c.logger.Debug().Err(err).Str("target", device.IP).Msg("hrStorageSize walk truncated")
	}

	if len(usedValues) == 0 || len(sizeValues) == 0 || len(usedValues) != len(sizeValues) {
		return nil
	}

	used, okUsed := parseInts(usedValues)
	size, okSize := parseInts(sizeValues)

	if !okUsed || !okSize {
		return nil
	}

	var usedTotal, sizeTotal int64

	for _, u := range used {
		usedTotal += u
	}

	for _, s := range size {
		sizeTotal += s
	}

	if sizeTotal == 0 {
		return nil
	}

	pct := percent * float64(usedTotal) / float64(sizeTotal)

	return &pct
}

// collectInterfaces reads ifOperStatus for every interface and derives
// the up count, total count, and up percentage. The three fields are
// computed from the same walk, so they are null together or set together.
func (c *Collector) collectInterfaces(device *models.Device) (up, total *int, upPct *float64) {
	values, err := c.client.Walk(device, oidIfOperStatus)
	if err != nil {
		c.logger.Debug().Err(err).Str("target", device.IP).Msg("ifOperStatus walk truncated")
	}

	statuses, ok := parseInts(values)
	if !ok || len(statuses) == 0 {
		return nil, nil, nil
	}

	upCount := 0

	for _, status := range statuses {
		if status == ifOperStatusUp {
			upCount++
		}
	}

	totalCount := len(statuses)
	pct := percent * float64(upCount) / float64(totalCount)

	return &upCount, &totalCount, &pct
}

// parseInts parses every value as an integer. It reports false as soon
// as one value fails: aggregates are all-or-nothing.
func parseInts(values []string) ([]int64, bool) {
	parsed := make([]int64, 0, len(values))

	for _, value := range values {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, false
		}

		parsed = append(parsed, n)
	}

	return parsed, true
}
