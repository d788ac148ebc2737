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

// Package api provides the HTTP API server and dashboard for fleetmon.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/carverauto/fleetmon/pkg/logger"
	"github.com/carverauto/fleetmon/pkg/models"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 90 * time.Second
	defaultIdleTimeout  = 60 * time.Second

	// defaultScanTimeout bounds the fleet scan behind one API request.
	defaultScanTimeout = 60 * time.Second

	defaultShutdownTimeout = 10 * time.Second
)

// APIServer serves the device status listing, the fleet summary, and the
// HTML dashboard. It owns no state: every request runs a fresh scan and
// the records are discarded once the response is written.
type APIServer struct {
	router     *mux.Router
	scanner    FleetScanner
	devices    []models.Device
	httpServer *http.Server
	logger     logger.Logger
}

// NewAPIServer creates a new API server instance.
func NewAPIServer(options ...func(server *APIServer)) *APIServer {
	s := &APIServer{
		router: mux.NewRouter(),
	}

	for _, o := range options {
		o(s)
	}

	s.setupRoutes()

	return s
}

// WithScanner sets the fleet scanner backing the API endpoints.
func WithScanner(scanner FleetScanner) func(server *APIServer) {
	return func(server *APIServer) {
		server.scanner = scanner
	}
}

// WithDevices sets the device fleet scanned on each request.
func WithDevices(devices []models.Device) func(server *APIServer) {
	return func(server *APIServer) {
		server.devices = devices
	}
}

// WithLogger sets the server logger.
func WithLogger(log logger.Logger) func(server *APIServer) {
	return func(server *APIServer) {
		server.logger = log
	}
}

// Router exposes the underlying router, mainly for tests.
func (s *APIServer) Router() *mux.Router {
	return s.router
}

func (s *APIServer) setupRoutes() {
	s.router.HandleFunc("/api/status", s.getStatus).Methods(http.MethodGet)
	s.router.HandleFunc("/api/summary", s.getSummary).Methods(http.MethodGet)
	s.router.HandleFunc("/", s.getDashboard).Methods(http.MethodGet)
}

// Start starts the API server on the specified address.
func (s *APIServer) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout, // A response includes a full fleet scan.
		IdleTimeout:  defaultIdleTimeout,
	}

	s.logger.Info().Str("addr", addr).Msg("Starting API server")

	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *APIServer) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultShutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}

// scan runs one scan cycle under the request-scoped timeout.
func (s *APIServer) scan(r *http.Request) []models.DeviceStatus {
	ctx, cancel := context.WithTimeout(r.Context(), defaultScanTimeout)
	defer cancel()

	return s.scanner.Scan(ctx, s.devices)
}

func (s *APIServer) writeJSONResponse(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("Error encoding response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errResponse := models.ErrorResponse{
		Message: message,
		Status:  statusCode,
	}

	if err := json.NewEncoder(w).Encode(errResponse); err != nil {
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
