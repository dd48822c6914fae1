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

package write

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/metricsentry/baseline-engine/pkg/config"
	log "github.com/sirupsen/logrus"
)

type writeStdout struct {
	format string
}

// Write prints each record to stdout
func (t *writeStdout) Write(in []config.GenericMap) {
	log.Debugf("entering writeStdout Write")
	log.Debugf("writeStdout: number of entries = %d", len(in))
	if t.format == "json" {
		for _, v := range in {
			txt, _ := jsoniter.MarshalToString(v)
			fmt.Println(txt)
		}
	} else {
		for _, v := range in {
			fmt.Printf("%s: %v\n", time.Now().Format(time.StampMilli), v)
		}
	}
}

// NewWriteStdout create a new stdout writer
func NewWriteStdout(params config.Write) (Writer, error) {
	log.Debugf("entering NewWriteStdout")
	format := ""
	if params.Stdout != nil {
		format = params.Stdout.Format
	}
	return &writeStdout{
		format: format,
	}, nil
}
