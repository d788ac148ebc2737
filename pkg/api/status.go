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
	"net/http"

	"github.com/carverauto/fleetmon/pkg/poller"
)

// getStatus runs a fleet scan and returns the per-device status records
// as a JSON array, in configured device order.
func (s *APIServer) getStatus(w http.ResponseWriter, r *http.Request) {
	if s.scanner == nil {
		writeError(w, "Scanner not configured", http.StatusInternalServerError)
		return
	}

	statuses := s.scan(r)

	s.writeJSONResponse(w, statuses)
}

// getSummary runs a fleet scan and returns the online/offline counts.
func (s *APIServer) getSummary(w http.ResponseWriter, r *http.Request) {
	if s.scanner == nil {
		writeError(w, "Scanner not configured", http.StatusInternalServerError)
		return
	}

	statuses := s.scan(r)

	s.writeJSONResponse(w, poller.Summarize(statuses))
}
