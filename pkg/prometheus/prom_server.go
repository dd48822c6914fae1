/*
 * Copyright (C) 2023 IBM, Inc.
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
 *
 */

package prometheus

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/metricsentry/baseline-engine/pkg/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var plog = logrus.WithField("component", "prometheus")

// InitializePrometheus starts the metrics server when a port is configured.
func InitializePrometheus(settings *config.MetricsSettings) *http.Server {
	if settings.Port == 0 {
		plog.Info("prometheus metrics endpoint disabled (no port configured)")
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", settings.Address, settings.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		plog.Infof("prometheus server: addr = %s", server.Addr)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			plog.Errorf("error in http.ListenAndServe: %v", err)
			if !settings.NoPanic {
				os.Exit(1)
			}
		}
	}()
	return server
}
