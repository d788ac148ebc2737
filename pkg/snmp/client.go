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

// Package snmp wraps gosnmp behind the two query primitives fleetmon
// needs: single-value GET and subtree WALK. Errors from either primitive
// are expected, frequent outcomes when scanning a fleet; callers treat
// them as "value absent", never as fatal conditions.
package snmp

import (
	"errors"
	"fmt"
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/carverauto/fleetmon/pkg/logger"
	"github.com/carverauto/fleetmon/pkg/models"
)

var (
	// ErrNoSuchObject indicates the agent answered but does not expose
	// the requested OID.
	ErrNoSuchObject = errors.New("no such object at OID")

	// ErrProtocolError indicates the agent answered with an SNMP
	// error-status set.
	ErrProtocolError = errors.New("snmp protocol error")

	errConnect  = errors.New("failed to set up snmp session")
	errGet      = errors.New("snmp get failed")
	errEmptyGet = errors.New("snmp get returned no variables")
)

const (
	// DefaultTimeout bounds one request round-trip.
	DefaultTimeout = 1 * time.Second

	// DefaultRetries is the retransmission count after the first attempt.
	DefaultRetries = 1

	defaultMaxRepetitions = 10
)

// ClientConfig carries the per-request budget applied to every target.
type ClientConfig struct {
	Timeout time.Duration
	Retries int
}

// Client issues SNMP v2c queries. Each call opens an ephemeral UDP
// session for its target; no session state is shared between calls, so a
// Client is safe for concurrent use.
type Client struct {
	config ClientConfig
	logger logger.Logger
}

// NewClient creates a Client, substituting defaults for an unset budget.
func NewClient(config ClientConfig, log logger.Logger) *Client {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	if config.Retries <= 0 {
		config.Retries = DefaultRetries
	}

	return &Client{config: config, logger: log}
}

// Get fetches a single OID from the device and returns its value as a
// display-formatted string. Numeric values stay parseable as integers.
func (c *Client) Get(device *models.Device, oid string) (string, error) {
	conn, err := c.connect(device)
	if err != nil {
		return "", err
	}
	defer c.close(conn, device)

	result, err := conn.Get([]string{oid})
	if err != nil {
		return "", fmt.Errorf("%w: %w", errGet, err)
	}

	if result.Error != gosnmp.NoError {
		return "", fmt.Errorf("%w: %s", ErrProtocolError, result.Error)
	}

	if len(result.Variables) == 0 {
		return "", errEmptyGet
	}

	return formatValue(result.Variables[0])
}

// Walk iterates the subtree under baseOID in lexicographic order and
// returns the values encountered. The walk stops at the first transport
// or protocol error; values gathered up to that point are returned
// alongside the error rather than discarded.
func (c *Client) Walk(device *models.Device, baseOID string) ([]string, error) {
	conn, err := c.connect(device)
	if err != nil {
		return nil, err
	}
	defer c.close(conn, device)

	values := []string{}

	walkErr := conn.BulkWalk(baseOID, func(pdu gosnmp.SnmpPDU) error {
		value, err := formatValue(pdu)
		if err != nil {
			// NoSuchObject/NoSuchInstance markers inside a subtree are
			// not row data; skip them.
			return nil
		}

		values = append(values, value)

		return nil
	})

	return values, walkErr
}

// connect builds and dials a fresh v2c session for one device.
func (c *Client) connect(device *models.Device) (*gosnmp.GoSNMP, error) {
	conn := &gosnmp.GoSNMP{
		Target:         device.IP,
		Port:           device.EffectivePort(),
		Community:      device.EffectiveCommunity(),
		Version:        gosnmp.Version2c,
		Timeout:        c.config.Timeout,
		Retries:        c.config.Retries,
		MaxOids:        gosnmp.MaxOids,
		MaxRepetitions: defaultMaxRepetitions,
	}

	if err := conn.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConnect, err)
	}

	return conn, nil
}

func (c *Client) close(conn *gosnmp.GoSNMP, device *models.Device) {
	if err := conn.Conn.Close(); err != nil {
		c.logger.Debug().Err(err).Str("target", device.IP).Msg("Failed to close SNMP session")
	}
}

// formatValue renders a PDU value as a display string. Integral SNMP
// types (Integer, Gauge32, Counter32/64, TimeTicks, Uinteger32) come out
// in decimal form.
func formatValue(pdu gosnmp.SnmpPDU) (string, error) {
	switch pdu.Type {
	case gosnmp.NoSuchObject, gosnmp.NoSuchInstance, gosnmp.EndOfMibView, gosnmp.Null:
		return "", fmt.Errorf("%w: %s", ErrNoSuchObject, pdu.Name)
	case gosnmp.OctetString:
		if b, ok := pdu.Value.([]byte); ok {
			return string(b), nil
		}

		return fmt.Sprintf("%v", pdu.Value), nil
	case gosnmp.ObjectIdentifier, gosnmp.IPAddress:
		if s, ok := pdu.Value.(string); ok {
			return s, nil
		}

		return fmt.Sprintf("%v", pdu.Value), nil
	default:
		return gosnmp.ToBigInt(pdu.Value).String(), nil
	}
}
