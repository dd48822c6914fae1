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

package process

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/metricsentry/baseline-engine/pkg/api"
	"github.com/metricsentry/baseline-engine/pkg/config"
)

func sampleRecord(metric string, value float64, ts int64) config.GenericMap {
	return config.GenericMap{"metric": metric, "value": value, "timestamp": ts}
}

// steadyRecords builds an alternating series around center with population
// std 1, enough to establish a baseline with default settings.
func steadyRecords(metric string, center float64, n int) []config.GenericMap {
	out := make([]config.GenericMap, n)
	for i := 0; i < n; i++ {
		v := center - 1
		if i%2 == 1 {
			v = center + 1
		}
		out[i] = sampleRecord(metric, v, int64(i+1))
	}
	return out
}

func TestProcessAnnotatesAnomaly(t *testing.T) {
	a := NewAnalysis(api.ProcessAnalysis{})
	a.Process(steadyRecords("cpu", 10, 10))

	out := a.Process([]config.GenericMap{sampleRecord("cpu", 20, 11)})
	require.Len(t, out, 1)
	require.Equal(t, true, out[0]["anomaly_detected"])
	require.Equal(t, 1.0, out[0]["anomaly_confidence"])
	require.Equal(t, "critical", out[0]["anomaly_severity"])
	require.Contains(t, out[0]["anomaly_types"], "zscore")
	require.Contains(t, out[0]["anomaly_types"], "iqr")
	// the input record is not mutated
	require.NotContains(t, sampleRecord("cpu", 20, 11), "anomaly_detected")
}

func TestProcessNormalValue(t *testing.T) {
	a := NewAnalysis(api.ProcessAnalysis{})
	a.Process(steadyRecords("cpu", 10, 10))

	out := a.Process([]config.GenericMap{sampleRecord("cpu", 10.5, 11)})
	require.Len(t, out, 1)
	require.Equal(t, false, out[0]["anomaly_detected"])
	require.NotContains(t, out[0], "anomaly_types")
	require.NotContains(t, out[0], "anomaly_severity")
}

func TestProcessInsufficientBaseline(t *testing.T) {
	a := NewAnalysis(api.ProcessAnalysis{})
	out := a.Process([]config.GenericMap{sampleRecord("cpu", 5, 1)})
	require.Len(t, out, 1)
	require.Equal(t, false, out[0]["anomaly_detected"])
	require.Equal(t, "Insufficient baseline data", out[0]["anomaly_reason"])
}

func TestProcessEvaluatesBeforeIngesting(t *testing.T) {
	a := NewAnalysis(api.ProcessAnalysis{})
	a.Process(steadyRecords("cpu", 10, 10))

	// the spike must be judged against the baseline that excludes itself
	out := a.Process([]config.GenericMap{sampleRecord("cpu", 20, 11)})
	require.Equal(t, true, out[0]["anomaly_detected"])

	// but it still lands in the window afterwards
	w := a.Engine().GetDataWindow("cpu")
	require.Equal(t, 20.0, w[len(w)-1].Value)
}

func TestProcessEmitAnomaliesOnly(t *testing.T) {
	a := NewAnalysis(api.ProcessAnalysis{EmitMode: EmitAnomalies})
	out := a.Process(steadyRecords("cpu", 10, 10))
	require.Empty(t, out)

	out = a.Process([]config.GenericMap{
		sampleRecord("cpu", 10.2, 11),
		sampleRecord("cpu", 20, 12),
	})
	require.Len(t, out, 1)
	require.Equal(t, 20.0, out[0]["value"])
}

func TestProcessDropsBadRecords(t *testing.T) {
	a := NewAnalysis(api.ProcessAnalysis{})
	out := a.Process([]config.GenericMap{
		{"value": 1.0},
		{"metric": "cpu", "value": "not-a-number"},
		sampleRecord("cpu", 3, 1),
	})
	require.Len(t, out, 1)
	require.Equal(t, 3.0, out[0]["value"])
}

func TestProcessFieldOverrides(t *testing.T) {
	a := NewAnalysis(api.ProcessAnalysis{
		MetricField:    "name",
		ValueField:     "reading",
		TimestampField: "at",
		Prefix:         "ml_",
	})
	out := a.Process([]config.GenericMap{{"name": "disk", "reading": 9.0, "at": int64(5)}})
	require.Len(t, out, 1)
	require.Equal(t, false, out[0]["ml_detected"])

	w := a.Engine().GetDataWindow("disk")
	require.Len(t, w, 1)
	require.Equal(t, 9.0, w[0].Value)
	require.Equal(t, int64(5), w[0].Timestamp)
}
