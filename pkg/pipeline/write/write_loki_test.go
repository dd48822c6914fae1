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

package write

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/common/model"
	"github.com/stretchr/testify/require"

	"github.com/metricsentry/baseline-engine/pkg/api"
	"github.com/metricsentry/baseline-engine/pkg/config"
)

type fakeEmitter struct {
	labels  []model.LabelSet
	records []string
}

func (f *fakeEmitter) Handle(labels model.LabelSet, _ time.Time, record string) error {
	f.labels = append(f.labels, labels)
	f.records = append(f.records, record)
	return nil
}

func testLoki(cfg api.WriteLoki) (*Loki, *fakeEmitter) {
	applyLokiDefaults(&cfg)
	emitter := &fakeEmitter{}
	return &Loki{
		apiConfig: cfg,
		client:    emitter,
		timeNow:   time.Now,
	}, emitter
}

func TestLokiProcessRecordLabels(t *testing.T) {
	l, emitter := testLoki(api.WriteLoki{
		URL:          "http://loki:3100",
		StaticLabels: map[string]string{"app": "baseline-engine"},
	})

	record := config.GenericMap{
		"metric":           "cpu-usage.node/1",
		"value":            42.0,
		"anomaly_detected": true,
	}
	require.NoError(t, l.ProcessRecord(record))

	require.Len(t, emitter.labels, 1)
	require.Equal(t, model.LabelSet{
		"app":    "baseline-engine",
		"metric": "cpu-usage.node/1",
	}, emitter.labels[0])

	var decoded map[string]interface{}
	require.NoError(t, jsoniter.UnmarshalFromString(emitter.records[0], &decoded))
	require.Equal(t, "cpu-usage.node/1", decoded["metric"])
	require.Equal(t, true, decoded["anomaly_detected"])
}

func TestLokiProcessRecordCustomMetricLabel(t *testing.T) {
	l, emitter := testLoki(api.WriteLoki{URL: "http://loki:3100", MetricLabel: "metric.name"})

	require.NoError(t, l.ProcessRecord(config.GenericMap{"metric.name": "mem", "value": 1.0}))
	require.Equal(t, model.LabelSet{"metric_name": "mem"}, emitter.labels[0])
}

func TestLokiDefaults(t *testing.T) {
	cfg := api.WriteLoki{URL: "http://loki:3100"}
	applyLokiDefaults(&cfg)
	require.Equal(t, "1s", cfg.BatchWait)
	require.Equal(t, 100*1024, cfg.BatchSize)
	require.Equal(t, 10, cfg.MaxRetries)
	require.Equal(t, "metric", cfg.MetricLabel)

	lokiConfig, err := buildLokiConfig(&cfg)
	require.NoError(t, err)
	require.Equal(t, time.Second, lokiConfig.BatchWait)
	require.Equal(t, "http://loki:3100/loki/api/v1/push", lokiConfig.URL.String())
}

func TestNewWriteLokiMissingURL(t *testing.T) {
	_, err := NewWriteLoki(config.Write{Type: api.LokiType})
	require.Error(t, err)

	_, err = NewWriteLoki(config.Write{Type: api.LokiType, Loki: &api.WriteLoki{}})
	require.Error(t, err)
}

func TestWriteFakeCopiesRecords(t *testing.T) {
	w := NewWriteFake()
	record := config.GenericMap{"metric": "cpu"}
	w.Write([]config.GenericMap{record})
	record["metric"] = "mutated"

	records := w.Records()
	require.Len(t, records, 1)
	require.Equal(t, "cpu", records[0]["metric"])
}
