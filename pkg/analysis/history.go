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

package analysis

// historyCapacity bounds the per-metric anomaly log.
const historyCapacity = 100

// HistoryEntry records one detected anomaly.
type HistoryEntry struct {
	Value      float64         `json:"value"`
	Timestamp  int64           `json:"timestamp"`
	Anomalies  []AnomalyDetail `json:"anomalies"`
	Confidence float64         `json:"confidence"`
}

// historyLog is a FIFO of anomaly records capped at historyCapacity.
type historyLog struct {
	buf  []HistoryEntry
	head int
	size int
}

func newHistoryLog() *historyLog {
	return &historyLog{buf: make([]HistoryEntry, historyCapacity)}
}

func (h *historyLog) push(e HistoryEntry) {
	if h.size < len(h.buf) {
		h.buf[(h.head+h.size)%len(h.buf)] = e
		h.size++
		return
	}
	h.buf[h.head] = e
	h.head = (h.head + 1) % len(h.buf)
}

func (h *historyLog) len() int {
	return h.size
}

// recent returns the latest n entries in arrival order.
func (h *historyLog) recent(n int) []HistoryEntry {
	if n > h.size {
		n = h.size
	}
	out := make([]HistoryEntry, n)
	for i := 0; i < n; i++ {
		out[i] = h.buf[(h.head+h.size-n+i)%len(h.buf)]
	}
	return out
}
