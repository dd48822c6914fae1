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
	"github.com/metricsentry/baseline-engine/pkg/config"
	log "github.com/sirupsen/logrus"
)

type writeNone struct{}

// Write drops the records
func (t *writeNone) Write(in []config.GenericMap) {
	log.Debugf("writeNone: dropping %d entries", len(in))
}

// NewWriteNone create a new write
func NewWriteNone() (Writer, error) {
	return &writeNone{}, nil
}
