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

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/fleetmon/pkg/logger"
	"github.com/carverauto/fleetmon/pkg/models"
)

// stubScanner returns a canned scan result and records the fleet it was
// asked to scan.
type stubScanner struct {
	statuses    []models.DeviceStatus
	lastDevices []models.Device
}

func (s *stubScanner) Scan(_ context.Context, devices []models.Device) []models.DeviceStatus {
	s.lastDevices = devices
	return s.statuses
}

func testStatuses() []models.DeviceStatus {
	uptime := "1234567"

	return []models.DeviceStatus{
		{
			Name: "core-sw",
			IP:   "192.168.1.1",
			Metrics: models.DeviceMetrics{
				Status:    models.StatusOnline,
				SysUpTime: &uptime,
			},
		},
		{
			Name:    "edge-7",
			IP:      "192.168.1.7",
			Metrics: models.DeviceMetrics{Status: models.StatusOffline},
		},
	}
}

func newTestServer(scanner FleetScanner, devices []models.Device) *APIServer {
	return NewAPIServer(
		WithScanner(scanner),
		WithDevices(devices),
		WithLogger(logger.NewTestLogger()),
	)
}

func TestGetStatus(t *testing.T) {
	devices := []models.Device{{Name: "core-sw", IP: "192.168.1.1"}, {Name: "edge-7", IP: "192.168.1.7"}}
	scanner := &stubScanner{statuses: testStatuses()}
	server := newTestServer(scanner, devices)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, devices, scanner.lastDevices)

	var decoded []map[string]interface{}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "core-sw", decoded[0]["name"])
	assert.Equal(t, "192.168.1.1", decoded[0]["ip"])

	online, ok := decoded[0]["metrics"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "online", online["status"])
	assert.Equal(t, "1234567", online["sysUpTime"])
	assert.Contains(t, online, "cpuLoad")
	assert.Nil(t, online["cpuLoad"])

	offline, ok := decoded[1]["metrics"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, offline, 1)
	assert.Equal(t, "offline", offline["status"])
}

func TestGetSummary(t *testing.T) {
	scanner := &stubScanner{statuses: testStatuses()}
	server := newTestServer(scanner, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"online":1,"offline":1}`, rec.Body.String())
}

func TestGetDashboard(t *testing.T) {
	scanner := &stubScanner{statuses: testStatuses()}
	server := newTestServer(scanner, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()

	assert.Contains(t, body, "core-sw")
	assert.Contains(t, body, "edge-7")
	assert.Contains(t, body, "1 online")
	assert.Contains(t, body, "1 offline")
}

func TestGetDashboardEmptyFleet(t *testing.T) {
	scanner := &stubScanner{statuses: []models.DeviceStatus{}}
	server := newTestServer(scanner, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No devices configured")
}

func TestEndpointsWithoutScanner(t *testing.T) {
	server := NewAPIServer(WithLogger(logger.NewTestLogger()))

	for _, path := range []string{"/api/status", "/api/summary", "/"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		server.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)

		var errResp models.ErrorResponse

		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, http.StatusInternalServerError, errResp.Status)
		assert.True(t, strings.Contains(errResp.Message, "Scanner"), errResp.Message)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	scanner := &stubScanner{statuses: testStatuses()}
	server := newTestServer(scanner, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/status", nil)
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
