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

// Package models defines the shared data types for fleetmon.
package models

const (
	// DefaultCommunity is the SNMP community string used when a device
	// does not configure one.
	DefaultCommunity = "public"

	// DefaultPort is the standard SNMP agent UDP port.
	DefaultPort = 161
)

// Device describes one SNMP target from the fleet configuration.
// IP is required; the remaining fields fall back to defaults.
type Device struct {
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	IP        string `json:"ip" yaml:"ip"`
	Community string `json:"community,omitempty" yaml:"community,omitempty"`
	Port      uint16 `json:"port,omitempty" yaml:"port,omitempty"`
}

// DisplayName returns the configured name, or the IP when no name is set.
func (d *Device) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}

	return d.IP
}

// EffectiveCommunity returns the configured community string or the default.
func (d *Device) EffectiveCommunity() string {
	if d.Community != "" {
		return d.Community
	}

	return DefaultCommunity
}

// EffectivePort returns the configured port or the default SNMP port.
func (d *Device) EffectivePort() uint16 {
	if d.Port != 0 {
		return d.Port
	}

	return DefaultPort
}
