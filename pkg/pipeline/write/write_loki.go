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
	"fmt"
	"strings"
	"time"

	logAdapter "github.com/go-kit/kit/log/logrus"
	jsonIter "github.com/json-iterator/go"
	"github.com/metricsentry/baseline-engine/pkg/api"
	"github.com/metricsentry/baseline-engine/pkg/config"
	operationalMetrics "github.com/metricsentry/baseline-engine/pkg/operational/metrics"
	pUtils "github.com/metricsentry/baseline-engine/pkg/pipeline/utils"
	"github.com/netobserv/loki-client-go/loki"
	"github.com/netobserv/loki-client-go/pkg/backoff"
	"github.com/netobserv/loki-client-go/pkg/urlutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/model"
	log "github.com/sirupsen/logrus"
)

var keyReplacer = strings.NewReplacer("/", "_", ".", "_", "-", "_")

type emitter interface {
	Handle(labels model.LabelSet, timestamp time.Time, record string) error
}

const channelSize = 1000

const (
	defaultBatchWait  = "1s"
	defaultBatchSize  = 100 * 1024
	defaultTimeout    = "10s"
	defaultMinBackoff = "1s"
	defaultMaxBackoff = "5m"
	defaultMaxRetries = 10
)

// Loki pushes anomaly records to a structured-log sink.
type Loki struct {
	lokiConfig loki.Config
	apiConfig  api.WriteLoki
	client     emitter
	timeNow    func() time.Time
	in         chan config.GenericMap
	exitChan   <-chan struct{}
}

var recordsWritten = operationalMetrics.NewCounter(prometheus.CounterOpts{
	Name: "loki_records_written",
	Help: "Number of records written to loki",
})

func applyLokiDefaults(c *api.WriteLoki) {
	if c.BatchWait == "" {
		c.BatchWait = defaultBatchWait
	}
	if c.BatchSize == 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.Timeout == "" {
		c.Timeout = defaultTimeout
	}
	if c.MinBackoff == "" {
		c.MinBackoff = defaultMinBackoff
	}
	if c.MaxBackoff == "" {
		c.MaxBackoff = defaultMaxBackoff
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = defaultMaxRetries
	}
	if c.MetricLabel == "" {
		c.MetricLabel = "metric"
	}
}

func buildLokiConfig(c *api.WriteLoki) (loki.Config, error) {
	batchWait, err := time.ParseDuration(c.BatchWait)
	if err != nil {
		return loki.Config{}, fmt.Errorf("failed in parsing BatchWait: %w", err)
	}
	timeout, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return loki.Config{}, fmt.Errorf("failed in parsing Timeout: %w", err)
	}
	minBackoff, err := time.ParseDuration(c.MinBackoff)
	if err != nil {
		return loki.Config{}, fmt.Errorf("failed in parsing MinBackoff: %w", err)
	}
	maxBackoff, err := time.ParseDuration(c.MaxBackoff)
	if err != nil {
		return loki.Config{}, fmt.Errorf("failed in parsing MaxBackoff: %w", err)
	}

	cfg := loki.Config{
		TenantID:  c.TenantID,
		BatchWait: batchWait,
		BatchSize: c.BatchSize,
		Timeout:   timeout,
		BackoffConfig: backoff.BackoffConfig{
			MinBackoff: minBackoff,
			MaxBackoff: maxBackoff,
			MaxRetries: c.MaxRetries,
		},
	}
	var clientURL urlutil.URLValue
	err = clientURL.Set(strings.TrimSuffix(c.URL, "/") + "/loki/api/v1/push")
	if err != nil {
		return cfg, fmt.Errorf("failed to parse client URL: %w", err)
	}
	cfg.URL = clientURL
	return cfg, nil
}

// ProcessRecord pushes one record as a log line. The metric name is
// promoted to a stream label next to the configured static labels.
func (l *Loki) ProcessRecord(record config.GenericMap) error {
	labels := model.LabelSet{}
	for k, v := range l.apiConfig.StaticLabels {
		labels[model.LabelName(k)] = model.LabelValue(v)
	}
	if metric, ok := record[l.apiConfig.MetricLabel]; ok {
		sanitizedKey := model.LabelName(keyReplacer.Replace(l.apiConfig.MetricLabel))
		lv := model.LabelValue(fmt.Sprint(metric))
		if sanitizedKey.IsValid() && lv.IsValid() {
			labels[sanitizedKey] = lv
		}
	}

	js, err := jsonIter.ConfigCompatibleWithStandardLibrary.Marshal(record)
	if err != nil {
		return err
	}

	err = l.client.Handle(labels, l.timeNow(), string(js))
	if err == nil {
		recordsWritten.Inc()
	}
	return err
}

// Write queues the records for the push loop
func (l *Loki) Write(entries []config.GenericMap) {
	log.Debugf("entering Loki Write")
	for _, entry := range entries {
		l.in <- entry
	}
}

func (l *Loki) processRecords() {
	for {
		select {
		case <-l.exitChan:
			log.Debugf("exiting writeLoki because of signal")
			return
		case record := <-l.in:
			err := l.ProcessRecord(record)
			if err != nil {
				log.Errorf("Write (Loki) error %v", err)
			}
		}
	}
}

// NewWriteLoki creates a Loki writer from configuration
func NewWriteLoki(params config.Write) (*Loki, error) {
	log.Debugf("entering NewWriteLoki")
	if params.Loki == nil || params.Loki.URL == "" {
		return nil, fmt.Errorf("loki url not specified")
	}
	apiConfig := *params.Loki
	applyLokiDefaults(&apiConfig)

	lokiConfig, err := buildLokiConfig(&apiConfig)
	if err != nil {
		return nil, err
	}
	client, err := loki.NewWithLogger(lokiConfig, logAdapter.NewLogger(log.WithField("module", "export/loki")))
	if err != nil {
		return nil, err
	}

	l := &Loki{
		lokiConfig: lokiConfig,
		apiConfig:  apiConfig,
		client:     client,
		timeNow:    time.Now,
		in:         make(chan config.GenericMap, channelSize),
		exitChan:   pUtils.ExitChannel(),
	}

	go l.processRecords()

	return l, nil
}
