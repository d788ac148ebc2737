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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceDefaults(t *testing.T) {
	bare := Device{IP: "192.168.1.10"}

	assert.Equal(t, "192.168.1.10", bare.DisplayName())
	assert.Equal(t, DefaultCommunity, bare.EffectiveCommunity())
	assert.Equal(t, uint16(DefaultPort), bare.EffectivePort())

	full := Device{Name: "core-sw", IP: "192.168.1.10", Community: "ops", Port: 1161}

	assert.Equal(t, "core-sw", full.DisplayName())
	assert.Equal(t, "ops", full.EffectiveCommunity())
	assert.Equal(t, uint16(1161), full.EffectivePort())
}
