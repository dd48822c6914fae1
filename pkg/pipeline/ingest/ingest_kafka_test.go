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
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mariomac/guara/pkg/test"
	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/metricsentry/baseline-engine/pkg/api"
	"github.com/metricsentry/baseline-engine/pkg/config"
)

type fakeKafkaReader struct {
	mu       sync.Mutex
	messages []kafka.Message
}

var errQueueEmpty = errors.New("queue empty")

func (f *fakeKafkaReader) ReadMessage(_ context.Context) (kafka.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		// slow down the ingest loop once drained
		time.Sleep(20 * time.Millisecond)
		return kafka.Message{}, errQueueEmpty
	}
	m := f.messages[0]
	f.messages = f.messages[1:]
	return m, nil
}

func TestNewIngestKafkaValidation(t *testing.T) {
	_, err := NewIngestKafka(config.Ingest{Type: api.KafkaType})
	require.Error(t, err)

	_, err = NewIngestKafka(config.Ingest{Type: api.KafkaType, Kafka: &api.IngestKafka{Topic: "metrics"}})
	require.Error(t, err)

	_, err = NewIngestKafka(config.Ingest{Type: api.KafkaType, Kafka: &api.IngestKafka{Brokers: []string{"localhost:9092"}}})
	require.Error(t, err)

	ing, err := NewIngestKafka(config.Ingest{Type: api.KafkaType, Kafka: &api.IngestKafka{
		Brokers: []string{"localhost:9092"},
		Topic:   "metrics",
		GroupID: "baseline",
	}})
	require.NoError(t, err)
	require.NotNil(t, ing)
}

func TestIngestKafkaDeliversMessages(t *testing.T) {
	exit := make(chan struct{})
	defer close(exit)
	ing := &ingestKafka{
		kafkaReader: &fakeKafkaReader{messages: []kafka.Message{
			{Value: []byte(`{"metric":"cpu","value":1}`)},
			{Value: []byte(`{"metric":"cpu","value":2}`)},
		}},
		exitChan: exit,
	}

	var mu sync.Mutex
	var received []string
	go ing.Ingest(func(lines []string) {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, lines...)
	})

	test.Eventually(t, 5*time.Second, func(t require.TestingT) {
		mu.Lock()
		defer mu.Unlock()
		require.Equal(t, []string{
			`{"metric":"cpu","value":1}`,
			`{"metric":"cpu","value":2}`,
		}, received)
	}, test.Interval(10*time.Millisecond))
}
