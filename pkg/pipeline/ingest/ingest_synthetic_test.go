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

package ingest

import (
	"sync"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mariomac/guara/pkg/test"
	"github.com/stretchr/testify/require"

	"github.com/metricsentry/baseline-engine/pkg/api"
	"github.com/metricsentry/baseline-engine/pkg/config"
)

func TestIngestSyntheticDefaults(t *testing.T) {
	ing, err := NewIngestSynthetic(config.Ingest{Type: api.SyntheticType})
	require.NoError(t, err)
	syn := ing.(*ingestSynthetic)
	require.Equal(t, defaultMetrics, syn.params.Metrics)
	require.Equal(t, defaultBatchLen, syn.params.BatchMaxLen)
	require.Equal(t, defaultSamplesPerMin, syn.params.SamplesPerMin)
	require.Equal(t, defaultSpikeEvery, syn.params.SpikeEvery)
}

func TestSyntheticSamples(t *testing.T) {
	syn := &ingestSynthetic{params: api.IngestSynthetic{Metrics: 2, SpikeEvery: -1}}

	seen := map[string]int{}
	for i := 0; i < 20; i++ {
		var sample map[string]interface{}
		require.NoError(t, jsoniter.UnmarshalFromString(syn.nextSample(), &sample))
		metric := sample["metric"].(string)
		seen[metric]++

		value := sample["value"].(float64)
		require.Greater(t, value, 50.0)
		require.Less(t, value, 150.0)
		require.Positive(t, sample["timestamp"].(float64))
	}
	// round robin over the configured metric names
	require.Equal(t, map[string]int{"synthetic_0": 10, "synthetic_1": 10}, seen)
}

func TestSyntheticSpikes(t *testing.T) {
	syn := &ingestSynthetic{params: api.IngestSynthetic{Metrics: 1, SpikeEvery: 2}}

	for tick := 0; tick < 10; tick++ {
		var sample map[string]interface{}
		require.NoError(t, jsoniter.UnmarshalFromString(syn.nextSample(), &sample))
		value := sample["value"].(float64)
		if tick > 0 && tick%2 == 0 {
			require.Greater(t, value, 150.0, "tick %d should carry a spike", tick)
		} else {
			require.Less(t, value, 150.0, "tick %d should be nominal", tick)
		}
	}
}

func TestIngestSyntheticBatches(t *testing.T) {
	exit := make(chan struct{})
	defer close(exit)
	syn := &ingestSynthetic{
		params:   api.IngestSynthetic{Metrics: 2, BatchMaxLen: 5, SamplesPerMin: 60000, SpikeEvery: -1},
		exitChan: exit,
	}

	var mu sync.Mutex
	var batches [][]string
	go syn.Ingest(func(lines []string) {
		mu.Lock()
		defer mu.Unlock()
		batches = append(batches, lines)
	})

	test.Eventually(t, 5*time.Second, func(t require.TestingT) {
		mu.Lock()
		defer mu.Unlock()
		require.NotEmpty(t, batches)
		require.Len(t, batches[0], 5)
	}, test.Interval(10*time.Millisecond))
}
