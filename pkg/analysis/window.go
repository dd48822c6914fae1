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

// DataPoint is a single timestamped sample of a metric.
type DataPoint struct {
	Value     float64 `json:"value"`
	Timestamp int64   `json:"timestamp"`
}

// window is a fixed-capacity FIFO of samples backed by a ring buffer.
// Pushing beyond capacity evicts the oldest sample.
type window struct {
	buf  []DataPoint
	head int
	size int
}

func newWindow(capacity int) *window {
	return &window{buf: make([]DataPoint, capacity)}
}

func (w *window) push(p DataPoint) {
	if w.size < len(w.buf) {
		w.buf[(w.head+w.size)%len(w.buf)] = p
		w.size++
		return
	}
	// full: overwrite the oldest slot
	w.buf[w.head] = p
	w.head = (w.head + 1) % len(w.buf)
}

func (w *window) len() int {
	return w.size
}

// points returns the samples in arrival order.
func (w *window) points() []DataPoint {
	out := make([]DataPoint, w.size)
	for i := 0; i < w.size; i++ {
		out[i] = w.buf[(w.head+i)%len(w.buf)]
	}
	return out
}

func (w *window) values() []float64 {
	out := make([]float64, w.size)
	for i := 0; i < w.size; i++ {
		out[i] = w.buf[(w.head+i)%len(w.buf)].Value
	}
	return out
}

// lastN returns the most recent n samples in arrival order (all of them
// when fewer than n are held).
func (w *window) lastN(n int) []DataPoint {
	if n > w.size {
		n = w.size
	}
	out := make([]DataPoint, n)
	for i := 0; i < n; i++ {
		out[i] = w.buf[(w.head+w.size-n+i)%len(w.buf)]
	}
	return out
}

func (w *window) last() (DataPoint, bool) {
	if w.size == 0 {
		return DataPoint{}, false
	}
	return w.buf[(w.head+w.size-1)%len(w.buf)], true
}
