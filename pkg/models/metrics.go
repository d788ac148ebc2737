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

package models

import "encoding/json"

const (
	// StatusOnline marks a device that answered the uptime probe.
	StatusOnline = "online"

	// StatusOffline marks a device that did not answer the uptime probe.
	StatusOffline = "offline"
)

// DeviceMetrics is one device's health snapshot from a single scan cycle.
//
// The JSON shape is contractual: an offline record carries only the status
// key, an online record carries every metric key with null standing in for
// any sub-query that failed or returned malformed data.
type DeviceMetrics struct {
	Status          string   `json:"status"`
	SysUpTime       *string  `json:"sysUpTime"`
	SysName         *string  `json:"sysName"`
	CPULoad         *float64 `json:"cpuLoad"`
	MemoryUsage     *float64 `json:"memoryUsage"`
	InterfacesUp    *int     `json:"interfacesUp"`
	InterfacesTotal *int     `json:"interfacesTotal"`
	InterfacesUpPct *float64 `json:"interfacesUpPct"`
}

// Online reports whether the device answered its connectivity probe.
func (m *DeviceMetrics) Online() bool {
	return m.Status == StatusOnline
}

// MarshalJSON enforces the two record shapes: offline records contain only
// the status key, online records contain all metric keys.
func (m DeviceMetrics) MarshalJSON() ([]byte, error) {
	if m.Status != StatusOnline {
		return json.Marshal(struct {
			Status string `json:"status"`
		}{Status: m.Status})
	}

	type onlineMetrics DeviceMetrics // drop methods to avoid recursion

	return json.Marshal(onlineMetrics(m))
}

// DeviceStatus pairs a device's identity with its scanned metrics.
// Records are rebuilt on every scan; nothing is persisted across cycles.
type DeviceStatus struct {
	Name    string        `json:"name"`
	IP      string        `json:"ip"`
	Metrics DeviceMetrics `json:"metrics"`
}

// Summary is the fleet-wide online/offline count reduction of one scan.
type Summary struct {
	Online  int `json:"online"`
	Offline int `json:"offline"`
}
