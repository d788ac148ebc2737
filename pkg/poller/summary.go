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

import "github.com/carverauto/fleetmon/pkg/models"

// Summarize reduces a scan's status records to online/offline counts.
// A device is online iff its status is exactly "online"; anything else,
// including an empty status, counts as offline. The two counts always
// sum to the number of records.
func Summarize(statuses []models.DeviceStatus) models.Summary {
	var summary models.Summary

	for i := range statuses {
		if statuses[i].Metrics.Online() {
			summary.Online++
		} else {
			summary.Offline++
		}
	}

	return summary
}
