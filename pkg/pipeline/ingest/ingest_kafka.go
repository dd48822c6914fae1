/*
 * Copyright (C) 2023 IBM, Inc.
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
	"context"
	"errors"

	"github.com/metricsentry/baseline-engine/pkg/api"
	"github.com/metricsentry/baseline-engine/pkg/config"
	"github.com/metricsentry/baseline-engine/pkg/pipeline/utils"
	kafka "github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

type kafkaReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ingestKafka struct {
	kafkaParams api.IngestKafka
	kafkaReader kafkaReader
	exitChan    <-chan struct{}
}

// Ingest reads messages from a kafka topic and sends each message value
// down the pipeline as one sample line.
func (r *ingestKafka) Ingest(process ProcessFunction) {
	log.Debugf("entering ingestKafka Ingest")
	lines := make([]string, 1)

	for {
		select {
		case <-r.exitChan:
			log.Debugf("exiting ingestKafka because of signal")
			return
		default:
		}
		m, err := r.kafkaReader.ReadMessage(context.Background())
		if err != nil {
			log.Errorln(err)
			continue
		}
		log.Debugf("message at topic:%v partition:%v offset:%v %s = %s", m.Topic, m.Partition, m.Offset, string(m.Key), string(m.Value))
		lines[0] = string(m.Value)
		linesProcessed.Inc()
		process(lines)
	}
}

// NewIngestKafka create a new kafka ingester
func NewIngestKafka(params config.Ingest) (Ingester, error) {
	log.Debugf("entering NewIngestKafka")
	if params.Kafka == nil {
		return nil, errors.New("kafka ingest parameters not specified")
	}
	kafkaParams := *params.Kafka
	if len(kafkaParams.Brokers) == 0 {
		return nil, errors.New("kafka brokers not specified")
	}
	if kafkaParams.Topic == "" {
		return nil, errors.New("kafka topic not specified")
	}

	startOffset := kafka.FirstOffset
	if kafkaParams.StartOffset == "LastOffset" {
		startOffset = kafka.LastOffset
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     kafkaParams.Brokers,
		Topic:       kafkaParams.Topic,
		GroupID:     kafkaParams.GroupID,
		StartOffset: startOffset,
	})

	return &ingestKafka{
		kafkaParams: kafkaParams,
		kafkaReader: reader,
		exitChan:    utils.ExitChannel(),
	}, nil
}
