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
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/metricsentry/baseline-engine/pkg/config"
	"github.com/metricsentry/baseline-engine/pkg/pipeline/utils"
	log "github.com/sirupsen/logrus"
)

type ingestFile struct {
	fileName string
	loop     bool
	exitChan <-chan struct{}
}

const delaySeconds = 10

// Ingest reads sample lines from a file; in loop mode the same data is
// resent every delaySeconds seconds until the process exits.
func (r *ingestFile) Ingest(process ProcessFunction) {
	lines := make([]string, 0)
	file, err := os.Open(r.fileName)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		text := scanner.Text()
		log.Debugf("%s", text)
		lines = append(lines, text)
	}
	log.Infof("ingesting %d sample lines from %s", len(lines), r.fileName)
	if !r.loop {
		linesProcessed.Add(float64(len(lines)))
		process(lines)
		return
	}
	for {
		linesProcessed.Add(float64(len(lines)))
		process(lines)
		select {
		case <-r.exitChan:
			log.Debugf("exiting ingestFile because of signal")
			return
		case <-time.After(delaySeconds * time.Second):
		}
	}
}

// NewIngestFile create a new file ingester
func NewIngestFile(params config.Ingest) (Ingester, error) {
	log.Debugf("entering NewIngestFile")
	if params.File == nil || params.File.Filename == "" {
		return nil, fmt.Errorf("ingest filename not specified")
	}

	log.Infof("input file name = %s", params.File.Filename)

	return &ingestFile{
		fileName: params.File.Filename,
		loop:     params.Type == "file_loop",
		exitChan: utils.ExitChannel(),
	}, nil
}
