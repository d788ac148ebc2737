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

// Package config loads and validates the fleetmon YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/carverauto/fleetmon/pkg/logger"
	"github.com/carverauto/fleetmon/pkg/models"
)

var (
	// ErrDeviceMissingIP indicates a device entry without the required ip key.
	ErrDeviceMissingIP = errors.New("device entry is missing required 'ip'")

	errReadConfigFile  = errors.New("failed to read config file")
	errParseConfigFile = errors.New("failed to parse config file")
)

const (
	defaultListenAddr  = ":8080"
	defaultPollTimeout = Duration(1 * time.Second)
	defaultPollRetries = 1
	defaultConcurrency = 10
)

// Duration is a time.Duration that unmarshals from YAML strings like "500ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string

	if err := node.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}

	*d = Duration(parsed)

	return nil
}

// PollConfig holds the SNMP query budget shared by all devices.
type PollConfig struct {
	// Timeout bounds a single SNMP request round-trip.
	Timeout Duration `yaml:"timeout"`
	// Retries is the number of retransmissions after the first attempt.
	Retries int `yaml:"retries"`
	// Concurrency bounds the scanner worker pool.
	Concurrency int `yaml:"concurrency"`
}

// Config is the top-level fleetmon configuration.
type Config struct {
	ListenAddr string          `yaml:"listen_addr"`
	Poll       PollConfig      `yaml:"poll"`
	Logging    logger.Config   `yaml:"logging"`
	Devices    []models.Device `yaml:"devices"`
}

// Load reads, parses, and validates the configuration file at path,
// applying defaults for any omitted settings.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errReadConfigFile, err)
	}

	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errParseConfigFile, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}

	if c.Poll.Timeout <= 0 {
		c.Poll.Timeout = defaultPollTimeout
	}

	if c.Poll.Retries <= 0 {
		c.Poll.Retries = defaultPollRetries
	}

	if c.Poll.Concurrency <= 0 {
		c.Poll.Concurrency = defaultConcurrency
	}
}

// Validate checks that every device entry is usable. Malformed descriptors
// are rejected here so the scanner never sees them.
func (c *Config) Validate() error {
	for i := range c.Devices {
		if c.Devices[i].IP == "" {
			return fmt.Errorf("%w: devices[%d] (%q)", ErrDeviceMissingIP, i, c.Devices[i].Name)
		}
	}

	return nil
}
