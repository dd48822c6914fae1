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
	"strings"

	"github.com/metricsentry/baseline-engine/pkg/analysis"
	"github.com/metricsentry/baseline-engine/pkg/api"
	"github.com/metricsentry/baseline-engine/pkg/config"
	operationalMetrics "github.com/metricsentry/baseline-engine/pkg/operational/metrics"
	"github.com/metricsentry/baseline-engine/pkg/pipeline/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	defaultMetricField    = "metric"
	defaultValueField     = "value"
	defaultTimestampField = "timestamp"
	defaultPrefix         = "anomaly_"

	EmitAll       = "all"
	EmitAnomalies = "anomalies"
)

var plog = logrus.WithField("component", "process.Analysis")

var errorsCounter = operationalMetrics.NewCounterVec(prometheus.CounterOpts{
	Name: "process_errors",
	Help: "Counter of records dropped by the analysis stage, per error type",
}, []string{"type", "field"})

// Analysis feeds each record's sample into the baseline engine and
// annotates the record with the anomaly evaluation.
type Analysis struct {
	engine         *analysis.Engine
	metricField    string
	valueField     string
	timestampField string
	prefix         string
	emitAnomalies  bool
}

// NewAnalysis creates the analysis stage around a fresh engine.
func NewAnalysis(cfg api.ProcessAnalysis) *Analysis {
	if cfg.MetricField == "" {
		cfg.MetricField = defaultMetricField
	}
	if cfg.ValueField == "" {
		cfg.ValueField = defaultValueField
	}
	if cfg.TimestampField == "" {
		cfg.TimestampField = defaultTimestampField
	}
	if cfg.Prefix == "" {
		cfg.Prefix = defaultPrefix
	}
	plog.Infof("NewAnalysis metricField=%s valueField=%s timestampField=%s emitMode=%s",
		cfg.MetricField, cfg.ValueField, cfg.TimestampField, cfg.EmitMode)
	return &Analysis{
		engine:         analysis.NewEngine(cfg.Analysis),
		metricField:    cfg.MetricField,
		valueField:     cfg.ValueField,
		timestampField: cfg.TimestampField,
		prefix:         cfg.Prefix,
		emitAnomalies:  cfg.EmitMode == EmitAnomalies,
	}
}

// Engine exposes the underlying engine for queries (analysis reports,
// correlation, baselines).
func (a *Analysis) Engine() *analysis.Engine {
	return a.engine
}

// Process evaluates then ingests each record's sample. Records whose value
// field is missing or non-numeric are dropped and counted.
func (a *Analysis) Process(in []config.GenericMap) []config.GenericMap {
	out := make([]config.GenericMap, 0, len(in))
	for _, record := range in {
		metricRaw, ok := record[a.metricField]
		if !ok {
			errorsCounter.WithLabelValues("MissingMetricName", a.metricField).Inc()
			continue
		}
		metric := utils.ConvertToString(metricRaw)
		value, err := utils.ConvertToFloat64(record[a.valueField])
		if err != nil {
			errorsCounter.WithLabelValues("ValueConversionError", a.valueField).Inc()
			continue
		}
		timestamp := int64(0)
		if raw, ok := record[a.timestampField]; ok {
			if ts, err := utils.ConvertToInt64(raw); err == nil {
				timestamp = ts
			} else {
				errorsCounter.WithLabelValues("TimestampConversionError", a.timestampField).Inc()
			}
		}

		// evaluate against the baseline built from previous samples only,
		// then add the sample to the window
		eval := a.engine.DetectAnomalies(metric, value, timestamp)
		a.engine.AddDataPoint(metric, value, timestamp)

		if a.emitAnomalies && !eval.IsAnomaly {
			continue
		}
		out = append(out, a.annotate(record, &eval))
	}
	return out
}

func (a *Analysis) annotate(record config.GenericMap, eval *analysis.Evaluation) config.GenericMap {
	output := record.Copy()
	output[a.prefix+"detected"] = eval.IsAnomaly
	output[a.prefix+"confidence"] = eval.Confidence
	if eval.Reason != "" {
		output[a.prefix+"reason"] = eval.Reason
	}
	if len(eval.Anomalies) > 0 {
		types := make([]string, 0, len(eval.Anomalies))
		maxSeverity := analysis.SeverityLow
		for _, detail := range eval.Anomalies {
			types = append(types, string(detail.Type))
			if severityRank(detail.Severity) > severityRank(maxSeverity) {
				maxSeverity = detail.Severity
			}
		}
		output[a.prefix+"types"] = strings.Join(types, ",")
		output[a.prefix+"severity"] = string(maxSeverity)
	}
	return output
}

func severityRank(s analysis.Severity) int {
	switch s {
	case analysis.SeverityCritical:
		return 3
	case analysis.SeverityHigh:
		return 2
	case analysis.SeverityMedium:
		return 1
	default:
		return 0
	}
}
