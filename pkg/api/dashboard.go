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
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/carverauto/fleetmon/pkg/models"
	"github.com/carverauto/fleetmon/pkg/poller"
)

//go:embed templates/index.html
var dashboardFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(dashboardFS, "templates/index.html"))

// deviceRow is the pre-formatted view of one device for the dashboard.
// Null metrics render as a dash.
type deviceRow struct {
	Name       string
	IP         string
	Online     bool
	Status     string
	UpTime     string
	SysName    string
	CPULoad    string
	Memory     string
	Interfaces string
}

type dashboardData struct {
	Rows        []deviceRow
	Summary     models.Summary
	GeneratedAt string
}

// getDashboard renders the HTML fleet overview.
func (s *APIServer) getDashboard(w http.ResponseWriter, r *http.Request) {
	if s.scanner == nil {
		writeError(w, "Scanner not configured", http.StatusInternalServerError)
		return
	}

	statuses := s.scan(r)

	data := dashboardData{
		Rows:        make([]deviceRow, 0, len(statuses)),
		Summary:     poller.Summarize(statuses),
		GeneratedAt: time.Now().Format(time.RFC1123),
	}

	for i := range statuses {
		data.Rows = append(data.Rows, newDeviceRow(&statuses[i]))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := dashboardTemplate.Execute(w, data); err != nil {
		s.logger.Error().Err(err).Msg("Error rendering dashboard")
	}
}

func newDeviceRow(status *models.DeviceStatus) deviceRow {
	row := deviceRow{
		Name:       status.Name,
		IP:         status.IP,
		Online:     status.Metrics.Online(),
		Status:     status.Metrics.Status,
		UpTime:     formatString(status.Metrics.SysUpTime),
		SysName:    formatString(status.Metrics.SysName),
		CPULoad:    formatPercent(status.Metrics.CPULoad),
		Memory:     formatPercent(status.Metrics.MemoryUsage),
		Interfaces: "—",
	}

	if status.Metrics.InterfacesUp != nil && status.Metrics.InterfacesTotal != nil && status.Metrics.InterfacesUpPct != nil {
		row.Interfaces = fmt.Sprintf("%d/%d (%.1f%%)",
			*status.Metrics.InterfacesUp, *status.Metrics.InterfacesTotal, *status.Metrics.InterfacesUpPct)
	}

	return row
}

func formatString(value *string) string {
	if value == nil {
		return "—"
	}

	return *value
}

func formatPercent(value *float64) string {
	if value == nil {
		return "—"
	}

	return fmt.Sprintf("%.1f%%", *value)
}
