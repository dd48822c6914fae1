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

package decode

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/metricsentry/baseline-engine/pkg/config"
	log "github.com/sirupsen/logrus"
)

type JSON struct{}

// Decode decodes input lines to a list of sample records. Malformed lines
// are skipped; null-valued fields are dropped.
func (c *JSON) Decode(in []string) []config.GenericMap {
	out := make([]config.GenericMap, 0, len(in))
	for _, line := range in {
		log.Debugf("decodeJSON: line = %v", line)
		var decodedLine map[string]interface{}
		if err := jsoniter.UnmarshalFromString(line, &decodedLine); err != nil {
			log.Errorf("decodeJSON: error unmarshalling line %q: %v", line, err)
			continue
		}
		record := make(config.GenericMap, len(decodedLine))
		for k, v := range decodedLine {
			if v == nil {
				continue
			}
			record[k] = v
		}
		out = append(out, record)
	}
	return out
}

// NewDecodeJSON create a new json decoder
func NewDecodeJSON() *JSON {
	log.Debugf("entering NewDecodeJSON")
	return &JSON{}
}
