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
	"sync"

	"github.com/metricsentry/baseline-engine/pkg/config"
	log "github.com/sirupsen/logrus"
)

type WriteFake struct {
	mu         sync.Mutex
	allRecords []config.GenericMap
}

// Write stores in memory all records.
func (w *WriteFake) Write(in []config.GenericMap) {
	log.Debugf("entering writeFake Write")
	log.Debugf("writeFake: number of entries = %d", len(in))
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, r := range in {
		w.allRecords = append(w.allRecords, r.Copy())
	}
}

// Records returns a snapshot of everything written so far.
func (w *WriteFake) Records() []config.GenericMap {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]config.GenericMap, len(w.allRecords))
	copy(out, w.allRecords)
	return out
}

// NewWriteFake creates a new in-memory writer for tests.
func NewWriteFake() *WriteFake {
	log.Debugf("entering NewWriteFake")
	return &WriteFake{}
}
