/*
 * Copyright (C) 2024 IBM, Inc.
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

package analysis

import (
	operationalMetrics "github.com/metricsentry/baseline-engine/pkg/operational/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	typeLabel     = "type"
	severityLabel = "severity"
)

var metrics = newMetrics()

type metricsType struct {
	samplesProcessed  prometheus.Counter
	baselinesComputed prometheus.Counter
	trackedMetrics    prometheus.Gauge
	anomaliesDetected *prometheus.CounterVec
}

func newMetrics() *metricsType {
	var m metricsType

	m.samplesProcessed = operationalMetrics.NewCounter(prometheus.CounterOpts{
		Name: "analysis_samples_processed",
		Help: "The total number of samples added to metric windows.",
	})

	m.baselinesComputed = operationalMetrics.NewCounter(prometheus.CounterOpts{
		Name: "analysis_baselines_computed",
		Help: "The total number of baseline recomputations.",
	})

	m.trackedMetrics = operationalMetrics.NewGauge(prometheus.GaugeOpts{
		Name: "analysis_tracked_metrics",
		Help: "The number of metrics with an in-memory window.",
	})

	m.anomaliesDetected = operationalMetrics.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_anomalies_detected",
		Help: "The total number of triggered anomaly details per method and severity.",
	}, []string{typeLabel, severityLabel})

	return &m
}
