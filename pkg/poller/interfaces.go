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

//go:generate mockgen -destination=mock_poller.go -package=poller github.com/carverauto/fleetmon/pkg/poller SNMPClient,MetricCollector

package poller

import (
	"github.com/carverauto/fleetmon/pkg/models"
)

// SNMPClient is the query transport the collector polls devices through.
// Both primitives report transport and protocol failures as errors;
// those are routine outcomes in a fleet scan and never abort anything.
type SNMPClient interface {
	// Get fetches a single OID value as a display-formatted string.
	Get(device *models.Device, oid string) (string, error)

	// Walk returns the subtree values under baseOID in lexicographic
	// order. Partial results gathered before an error are returned
	// alongside it.
	Walk(device *models.Device, baseOID string) ([]string, error)
}

// MetricCollector turns one device into one metrics record.
type MetricCollector interface {
	Collect(device *models.Device) models.DeviceMetrics
}
