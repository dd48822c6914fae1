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

package api

const (
	FileType      = "file"
	FileLoopType  = "file_loop"
	KafkaType     = "kafka"
	SyntheticType = "synthetic"
	StdoutType    = "stdout"
	LokiType      = "loki"
	FakeType      = "fake"
	NoneType      = "none"
)

type IngestKafka struct {
	Brokers     []string `yaml:"brokers,omitempty" json:"brokers,omitempty" doc:"list of kafka broker addresses"`
	Topic       string   `yaml:"topic,omitempty" json:"topic,omitempty" doc:"kafka topic to listen on"`
	GroupID     string   `yaml:"groupid,omitempty" json:"groupid,omitempty" doc:"consumer group id"`
	StartOffset string   `yaml:"startOffset,omitempty" json:"startOffset,omitempty" doc:"FirstOffset (default) or LastOffset"`
}

type IngestSynthetic struct {
	Metrics       int `yaml:"metrics,omitempty" json:"metrics,omitempty" doc:"number of distinct synthetic metric names (default 4)"`
	SamplesPerMin int `yaml:"samplesPerMin,omitempty" json:"samplesPerMin,omitempty" doc:"target sample rate (default 2000)"`
	BatchMaxLen   int `yaml:"batchMaxLen,omitempty" json:"batchMaxLen,omitempty" doc:"maximum batch size sent down the pipeline (default 10)"`
	SpikeEvery    int `yaml:"spikeEvery,omitempty" json:"spikeEvery,omitempty" doc:"inject an outlier every N samples per metric (default 50, negative disables)"`
}

type ProcessAnalysis struct {
	MetricField    string         `yaml:"metricField,omitempty" json:"metricField,omitempty" doc:"record field holding the metric name (default metric)"`
	ValueField     string         `yaml:"valueField,omitempty" json:"valueField,omitempty" doc:"record field holding the numeric sample (default value)"`
	TimestampField string         `yaml:"timestampField,omitempty" json:"timestampField,omitempty" doc:"record field holding the epoch-ms timestamp (default timestamp)"`
	Prefix         string         `yaml:"prefix,omitempty" json:"prefix,omitempty" doc:"prefix for fields appended to output records (default anomaly_)"`
	EmitMode       string         `yaml:"emitMode,omitempty" json:"emitMode,omitempty" doc:"all (default) or anomalies"`
	Analysis       AnalysisConfig `yaml:"analysis,omitempty" json:"analysis,omitempty" doc:"baseline engine configuration"`
}

type WriteLoki struct {
	URL          string            `yaml:"url,omitempty" json:"url,omitempty" doc:"loki address"`
	TenantID     string            `yaml:"tenantID,omitempty" json:"tenantID,omitempty" doc:"tenant id for the push request"`
	BatchWait    string            `yaml:"batchWait,omitempty" json:"batchWait,omitempty" doc:"maximum wait before sending a batch (default 1s)"`
	BatchSize    int               `yaml:"batchSize,omitempty" json:"batchSize,omitempty" doc:"maximum batch size in bytes (default 102400)"`
	Timeout      string            `yaml:"timeout,omitempty" json:"timeout,omitempty" doc:"request timeout (default 10s)"`
	MinBackoff   string            `yaml:"minBackoff,omitempty" json:"minBackoff,omitempty" doc:"initial retry backoff (default 1s)"`
	MaxBackoff   string            `yaml:"maxBackoff,omitempty" json:"maxBackoff,omitempty" doc:"maximum retry backoff (default 5m)"`
	MaxRetries   int               `yaml:"maxRetries,omitempty" json:"maxRetries,omitempty" doc:"maximum number of retries (default 10)"`
	StaticLabels map[string]string `yaml:"staticLabels,omitempty" json:"staticLabels,omitempty" doc:"labels attached to every stream"`
	MetricLabel  string            `yaml:"metricLabel,omitempty" json:"metricLabel,omitempty" doc:"record field promoted to a stream label (default metric)"`
}
