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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/fleetmon/pkg/logger"
	"github.com/carverauto/fleetmon/pkg/models"
)

func onlineMetricsFor(name string) models.DeviceMetrics {
	return models.DeviceMetrics{
		Status:  models.StatusOnline,
		SysName: &name,
	}
}

func TestScanPreservesInputOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	devices := []models.Device{
		{Name: "slow", IP: "10.0.0.1"},
		{Name: "fast", IP: "10.0.0.2"},
		{Name: "dead", IP: "10.0.0.3"},
	}

	collector := NewMockMetricCollector(ctrl)

	// The first device answers last; its record must still come first.
	collector.EXPECT().Collect(&devices[0]).DoAndReturn(func(*models.Device) models.DeviceMetrics {
		time.Sleep(50 * time.Millisecond)
		return onlineMetricsFor("slow")
	})
	collector.EXPECT().Collect(&devices[1]).Return(onlineMetricsFor("fast"))
	collector.EXPECT().Collect(&devices[2]).Return(models.DeviceMetrics{Status: models.StatusOffline})

	scanner := NewScanner(collector, 3, logger.NewTestLogger())
	results := scanner.Scan(context.Background(), devices)

	require.Len(t, results, 3)
	assert.Equal(t, "slow", results[0].Name)
	assert.Equal(t, "10.0.0.1", results[0].IP)
	assert.Equal(t, "fast", results[1].Name)
	assert.Equal(t, "dead", results[2].Name)

	assert.True(t, results[0].Metrics.Online())
	assert.True(t, results[1].Metrics.Online())
	assert.False(t, results[2].Metrics.Online())
}

func TestScanEmptyFleet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := NewMockMetricCollector(ctrl)
	scanner := NewScanner(collector, 10, logger.NewTestLogger())

	results := scanner.Scan(context.Background(), nil)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestScanNameFallsBackToIP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	devices := []models.Device{{IP: "10.0.0.9"}}

	collector := NewMockMetricCollector(ctrl)
	collector.EXPECT().Collect(&devices[0]).Return(models.DeviceMetrics{Status: models.StatusOffline})

	scanner := NewScanner(collector, 1, logger.NewTestLogger())
	results := scanner.Scan(context.Background(), devices)

	require.Len(t, results, 1)
	assert.Equal(t, "10.0.0.9", results[0].Name)
}

func TestScanDuplicateIPsKeepSeparateRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	devices := []models.Device{
		{Name: "a", IP: "10.0.0.1"},
		{Name: "b", IP: "10.0.0.1"},
	}

	collector := NewMockMetricCollector(ctrl)
	collector.EXPECT().Collect(&devices[0]).Return(onlineMetricsFor("a"))
	collector.EXPECT().Collect(&devices[1]).Return(models.DeviceMetrics{Status: models.StatusOffline})

	scanner := NewScanner(collector, 2, logger.NewTestLogger())
	results := scanner.Scan(context.Background(), devices)

	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Name)
	assert.Equal(t, "b", results[1].Name)
	assert.True(t, results[0].Metrics.Online())
	assert.False(t, results[1].Metrics.Online())
}

func TestScanCanceledContextReportsOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	devices := []models.Device{
		{Name: "a", IP: "10.0.0.1"},
		{Name: "b", IP: "10.0.0.2"},
		{Name: "c", IP: "10.0.0.3"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A canceled feed may still hand out up to one job per worker from
	// the buffered channel, so accept any number of collect calls.
	collector := NewMockMetricCollector(ctrl)
	collector.EXPECT().Collect(gomock.Any()).Return(models.DeviceMetrics{Status: models.StatusOffline}).AnyTimes()

	scanner := NewScanner(collector, 1, logger.NewTestLogger())
	results := scanner.Scan(ctx, devices)

	require.Len(t, results, 3)

	for i := range results {
		assert.Equal(t, devices[i].Name, results[i].Name)
		assert.Equal(t, devices[i].IP, results[i].IP)
		assert.Equal(t, models.StatusOffline, results[i].Metrics.Status)
	}
}

func TestNewScannerDefaultsConcurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := NewScanner(NewMockMetricCollector(ctrl), 0, logger.NewTestLogger())

	assert.Equal(t, defaultConcurrency, scanner.concurrency)
}
