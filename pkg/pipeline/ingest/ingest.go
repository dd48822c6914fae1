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

package ingest

import (
	operationalMetrics "github.com/metricsentry/baseline-engine/pkg/operational/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// ProcessFunction is called with each batch of raw input lines.
type ProcessFunction func(lines []string)

type Ingester interface {
	// Ingest reads samples from the input source and hands raw lines to
	// process. It returns when the source is exhausted or the exit channel
	// is closed.
	Ingest(process ProcessFunction)
}

var linesProcessed = operationalMetrics.NewCounter(prometheus.CounterOpts{
	Name: "ingest_lines_processed",
	Help: "Number of sample lines handed to the pipeline",
})
