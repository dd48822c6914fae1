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

package pipeline

import (
	"fmt"

	"github.com/heptiolabs/healthcheck"
	"github.com/metricsentry/baseline-engine/pkg/api"
	"github.com/metricsentry/baseline-engine/pkg/config"
	"github.com/metricsentry/baseline-engine/pkg/pipeline/decode"
	"github.com/metricsentry/baseline-engine/pkg/pipeline/ingest"
	"github.com/metricsentry/baseline-engine/pkg/pipeline/process"
	"github.com/metricsentry/baseline-engine/pkg/pipeline/write"
	log "github.com/sirupsen/logrus"
)

// Pipeline is the fixed linear chain ingest -> decode -> analysis -> write.
type Pipeline struct {
	IsRunning bool
	ingester  ingest.Ingester
	decoder   *decode.JSON
	analysis  *process.Analysis
	writer    write.Writer
}

func getIngester(params config.Ingest) (ingest.Ingester, error) {
	switch params.Type {
	case api.FileType, api.FileLoopType:
		return ingest.NewIngestFile(params)
	case api.KafkaType:
		return ingest.NewIngestKafka(params)
	case api.SyntheticType:
		return ingest.NewIngestSynthetic(params)
	default:
		return nil, fmt.Errorf("`ingest` type %s not defined", params.Type)
	}
}

func getWriter(params config.Write) (write.Writer, error) {
	switch params.Type {
	case api.StdoutType, "":
		return write.NewWriteStdout(params)
	case api.LokiType:
		return write.NewWriteLoki(params)
	case api.NoneType:
		return write.NewWriteNone()
	case api.FakeType:
		return write.NewWriteFake(), nil
	default:
		return nil, fmt.Errorf("`write` type %s not defined", params.Type)
	}
}

// NewPipeline assembles the stages from the parsed configuration.
func NewPipeline(cfg *config.ConfigFileStruct) (*Pipeline, error) {
	log.Debugf("entering NewPipeline")

	ingester, err := getIngester(cfg.Ingest)
	if err != nil {
		return nil, err
	}
	writer, err := getWriter(cfg.Write)
	if err != nil {
		return nil, err
	}
	analysisCfg := api.ProcessAnalysis{}
	if cfg.Process.Analysis != nil {
		analysisCfg = *cfg.Process.Analysis
	}

	return &Pipeline{
		ingester: ingester,
		decoder:  decode.NewDecodeJSON(),
		analysis: process.NewAnalysis(analysisCfg),
		writer:   writer,
	}, nil
}

// Run blocks until the ingester is exhausted or stopped.
func (p *Pipeline) Run() {
	p.IsRunning = true
	p.ingester.Ingest(p.Process)
	p.IsRunning = false
}

// Process pushes a batch of raw lines through decode, analysis and write.
func (p *Pipeline) Process(lines []string) {
	log.Debugf("entering pipeline.Process, %d lines", len(lines))
	records := p.decoder.Decode(lines)
	out := p.analysis.Process(records)
	p.writer.Write(out)
}

// Analysis exposes the analysis stage for report queries.
func (p *Pipeline) Analysis() *process.Analysis {
	return p.analysis
}

func (p *Pipeline) IsReady() healthcheck.Check {
	return func() error {
		if !p.IsRunning {
			return fmt.Errorf("pipeline is not running")
		}
		return nil
	}
}

func (p *Pipeline) IsAlive() healthcheck.Check {
	return func() error {
		if !p.IsRunning {
			return fmt.Errorf("pipeline is not running")
		}
		return nil
	}
}
