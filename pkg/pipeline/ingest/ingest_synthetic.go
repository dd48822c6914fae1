/*
 * Copyright (C) 2024 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *	 http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package ingest

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/metricsentry/baseline-engine/pkg/api"
	"github.com/metricsentry/baseline-engine/pkg/config"
	"github.com/metricsentry/baseline-engine/pkg/pipeline/utils"
	log "github.com/sirupsen/logrus"
)

type ingestSynthetic struct {
	params   api.IngestSynthetic
	exitChan <-chan struct{}
	counter  int
}

const (
	defaultMetrics       = 4
	defaultBatchLen      = 10
	defaultSamplesPerMin = 2000
	defaultSpikeEvery    = 50
	syntheticPeriod      = 24
	spikeFactor          = 8
)

// IngestSynthetic generates metric samples: each metric follows a sinusoid
// with gaussian noise, with an outlier injected every SpikeEvery samples.
func (s *ingestSynthetic) Ingest(process ProcessFunction) {
	log.Debugf("entering ingestSynthetic Ingest, params = %v", s.params)

	ticker := time.NewTicker(time.Duration(int(time.Minute*time.Duration(s.params.BatchMaxLen)) / s.params.SamplesPerMin))
	defer ticker.Stop()

	for {
		select {
		case <-s.exitChan:
			log.Debugf("exiting ingestSynthetic because of signal")
			return
		case <-ticker.C:
			lines := make([]string, 0, s.params.BatchMaxLen)
			for len(lines) < s.params.BatchMaxLen {
				lines = append(lines, s.nextSample())
			}
			linesProcessed.Add(float64(len(lines)))
			process(lines)
		}
	}
}

func (s *ingestSynthetic) nextSample() string {
	metric := fmt.Sprintf("synthetic_%d", s.counter%s.params.Metrics)
	tick := s.counter / s.params.Metrics
	s.counter++

	value := 100 + 10*math.Sin(2*math.Pi*float64(tick)/syntheticPeriod) + rand.NormFloat64()
	if s.params.SpikeEvery > 0 && tick > 0 && tick%s.params.SpikeEvery == 0 {
		value += spikeFactor * 10
	}
	sample := config.GenericMap{
		"metric":    metric,
		"value":     value,
		"timestamp": time.Now().UnixMilli(),
	}
	line, _ := jsoniter.MarshalToString(sample)
	return line
}

// NewIngestSynthetic create a new synthetic sample generator
func NewIngestSynthetic(params config.Ingest) (Ingester, error) {
	log.Debugf("entering NewIngestSynthetic")
	syn := api.IngestSynthetic{}
	if params.Synthetic != nil {
		syn = *params.Synthetic
	}
	if syn.Metrics == 0 {
		syn.Metrics = defaultMetrics
	}
	if syn.SamplesPerMin == 0 {
		syn.SamplesPerMin = defaultSamplesPerMin
	}
	if syn.BatchMaxLen == 0 {
		syn.BatchMaxLen = defaultBatchLen
	}
	if syn.SpikeEvery == 0 {
		syn.SpikeEvery = defaultSpikeEvery
	}
	log.Debugf("params = %v", syn)

	return &ingestSynthetic{
		params:   syn,
		exitChan: utils.ExitChannel(),
	}, nil
}
