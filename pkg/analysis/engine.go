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

import (
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/metricsentry/baseline-engine/pkg/api"
	"github.com/sirupsen/logrus"
)

const (
	defaultWindowSize    = 100
	defaultSensitivity   = 2.0
	defaultMinDataPoints = 10
	defaultPeriod        = 24
	defaultHistoryLimit  = 50
	recentHistoryCount   = 5
)

var elog = logrus.WithField("component", "analysis.Engine")

// Engine holds the rolling windows, baselines and anomaly histories of all
// tracked metrics and answers anomaly and analysis queries against them.
// All state is partitioned by metric name and owned by the Engine instance.
type Engine struct {
	mu            sync.Mutex
	windowSize    int
	sensitivity   float64
	minDataPoints int
	trendEnabled  bool
	seasonEnabled bool
	extensions    map[string]interface{}
	clock         clock.Clock
	windows       map[string]*window
	baselines     map[string]*Baseline
	histories     map[string]*historyLog
}

// WindowState describes the current window of a metric.
type WindowState struct {
	Size            int     `json:"size"`
	LatestValue     float64 `json:"latestValue"`
	LatestTimestamp int64   `json:"latestTimestamp"`
}

// HistoryState summarizes a metric's anomaly history.
type HistoryState struct {
	Count  int            `json:"count"`
	Recent []HistoryEntry `json:"recent"`
}

// Analysis is the full per-metric report.
type Analysis struct {
	MetricName      string       `json:"metricName"`
	Baseline        *Baseline    `json:"baseline,omitempty"`
	CurrentWindow   WindowState  `json:"currentWindow"`
	AnomalyHistory  HistoryState `json:"anomalyHistory"`
	Seasonality     Seasonality  `json:"seasonality"`
	Recommendations []string     `json:"recommendations"`
}

// NewEngine creates an engine with the wall clock.
func NewEngine(cfg api.AnalysisConfig) *Engine {
	return NewEngineWithClock(cfg, clock.New())
}

// NewEngineWithClock creates an engine with an injected clock, which tests
// use to control baseline timestamps.
func NewEngineWithClock(cfg api.AnalysisConfig, clk clock.Clock) *Engine {
	windowSize := cfg.WindowSize
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	sensitivity := cfg.Sensitivity
	if sensitivity <= 0 {
		sensitivity = defaultSensitivity
	}
	minDataPoints := cfg.MinDataPoints
	if minDataPoints <= 0 {
		minDataPoints = defaultMinDataPoints
	}
	elog.Infof("NewEngine windowSize=%d sensitivity=%v minDataPoints=%d trend=%v seasonality=%v",
		windowSize, sensitivity, minDataPoints, cfg.TrendEnabled(), cfg.SeasonalityEnabled())
	return &Engine{
		windowSize:    windowSize,
		sensitivity:   sensitivity,
		minDataPoints: minDataPoints,
		trendEnabled:  cfg.TrendEnabled(),
		seasonEnabled: cfg.SeasonalityEnabled(),
		extensions:    cfg.Extensions,
		clock:         clk,
		windows:       make(map[string]*window),
		baselines:     make(map[string]*Baseline),
		histories:     make(map[string]*historyLog),
	}
}

// AddDataPoint appends a sample to the metric's window, evicting the oldest
// sample when the window is full, and recomputes the baseline once the
// window holds at least minDataPoints samples. A non-positive timestamp is
// replaced with the current time.
func (e *Engine) AddDataPoint(metric string, value float64, timestamp int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if timestamp <= 0 {
		timestamp = e.clock.Now().UnixMilli()
	}
	w, ok := e.windows[metric]
	if !ok {
		w = newWindow(e.windowSize)
		e.windows[metric] = w
		metrics.trackedMetrics.Set(float64(len(e.windows)))
	}
	w.push(DataPoint{Value: value, Timestamp: timestamp})
	metrics.samplesProcessed.Inc()

	if w.len() >= e.minDataPoints {
		e.updateBaseline(metric, w)
	}
}

// updateBaseline recomputes the stored baseline wholesale from the current
// window content. Caller must hold the lock.
func (e *Engine) updateBaseline(metric string, w *window) {
	stats := CalculateStatistics(w.values())
	if stats == nil {
		return
	}
	e.baselines[metric] = &Baseline{
		Statistics:  *stats,
		LastUpdated: e.clock.Now().UnixMilli(),
		DataPoints:  w.len(),
	}
	metrics.baselinesComputed.Inc()
}

// DetectAnomalies checks a sample against the metric's baseline with the
// z-score, IQR and (when enabled) trend methods. A triggered evaluation is
// appended to the metric's anomaly history.
func (e *Engine) DetectAnomalies(metric string, value float64, timestamp int64) Evaluation {
	e.mu.Lock()
	defer e.mu.Unlock()

	if timestamp <= 0 {
		timestamp = e.clock.Now().UnixMilli()
	}
	result := Evaluation{
		Metric:    metric,
		Value:     value,
		Timestamp: timestamp,
	}

	b, ok := e.baselines[metric]
	if !ok {
		result.Reason = insufficientBaselineReason
		return result
	}
	result.Baseline = &BaselineSummary{
		Mean:              b.Mean,
		Median:            b.Median,
		StandardDeviation: b.StandardDeviation,
	}

	if detail := checkZScore(b, value, e.sensitivity); detail != nil {
		result.Anomalies = append(result.Anomalies, *detail)
	}
	if detail := checkIQR(b, value); detail != nil {
		result.Anomalies = append(result.Anomalies, *detail)
	}
	if e.trendEnabled {
		if w, ok := e.windows[metric]; ok {
			if detail := checkTrend(w.lastN(trendPoints), b); detail != nil {
				result.Anomalies = append(result.Anomalies, *detail)
			}
		}
	}

	for _, detail := range result.Anomalies {
		if detail.Confidence > result.Confidence {
			result.Confidence = detail.Confidence
		}
		metrics.anomaliesDetected.WithLabelValues(string(detail.Type), string(detail.Severity)).Inc()
	}
	if len(result.Anomalies) > 0 {
		result.IsAnomaly = true
		e.recordAnomaly(metric, result)
	}
	return result
}

// recordAnomaly appends the evaluation to the metric's capped history.
// Caller must hold the lock.
func (e *Engine) recordAnomaly(metric string, eval Evaluation) {
	h, ok := e.histories[metric]
	if !ok {
		h = newHistoryLog()
		e.histories[metric] = h
	}
	h.push(HistoryEntry{
		Value:      eval.Value,
		Timestamp:  eval.Timestamp,
		Anomalies:  eval.Anomalies,
		Confidence: eval.Confidence,
	})
	elog.Debugf("anomaly recorded: metric=%s value=%v confidence=%v", metric, eval.Value, eval.Confidence)
}

// GetBaseline returns the metric's baseline, if one has been computed.
func (e *Engine) GetBaseline(metric string) (Baseline, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.baselines[metric]
	if !ok {
		return Baseline{}, false
	}
	return *b, true
}

// GetAllBaselines returns a copy of every stored baseline keyed by metric.
func (e *Engine) GetAllBaselines() map[string]Baseline {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]Baseline, len(e.baselines))
	for metric, b := range e.baselines {
		out[metric] = *b
	}
	return out
}

// GetAnomalyHistory returns the most recent limit history entries in
// arrival order. A non-positive limit defaults to 50.
func (e *Engine) GetAnomalyHistory(metric string, limit int) []HistoryEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	h, ok := e.histories[metric]
	if !ok {
		return []HistoryEntry{}
	}
	return h.recent(limit)
}

// GetDataWindow returns a copy of the metric's current window in arrival order.
func (e *Engine) GetDataWindow(metric string) []DataPoint {
	e.mu.Lock()
	defer e.mu.Unlock()
	w, ok := e.windows[metric]
	if !ok {
		return []DataPoint{}
	}
	return w.points()
}

// DetectSeasonality runs the lag autocorrelation check over the metric's
// window. A non-positive period defaults to 24.
func (e *Engine) DetectSeasonality(metric string, period int) Seasonality {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.detectSeasonality(metric, period)
}

func (e *Engine) detectSeasonality(metric string, period int) Seasonality {
	if period <= 0 {
		period = defaultPeriod
	}
	w, ok := e.windows[metric]
	if !ok {
		return Seasonality{}
	}
	return detectSeasonality(w.values(), period)
}

// CalculateCorrelation computes the Pearson correlation of two metric
// windows paired by position. The second return is false when either window
// is absent or the lengths differ.
func (e *Engine) CalculateCorrelation(metricA, metricB string) (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	wa, okA := e.windows[metricA]
	wb, okB := e.windows[metricB]
	if !okA || !okB || wa.len() != wb.len() || wa.len() == 0 {
		return 0, false
	}
	return pearson(wa.values(), wb.values()), true
}

// GetAnalysis assembles the full report for a metric.
func (e *Engine) GetAnalysis(metric string) Analysis {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := Analysis{MetricName: metric}
	if b, ok := e.baselines[metric]; ok {
		baseline := *b
		out.Baseline = &baseline
	}
	if w, ok := e.windows[metric]; ok {
		out.CurrentWindow.Size = w.len()
		if last, ok := w.last(); ok {
			out.CurrentWindow.LatestValue = last.Value
			out.CurrentWindow.LatestTimestamp = last.Timestamp
		}
	}
	historyCount := 0
	if h, ok := e.histories[metric]; ok {
		historyCount = h.len()
		out.AnomalyHistory.Count = historyCount
		out.AnomalyHistory.Recent = h.recent(recentHistoryCount)
	} else {
		out.AnomalyHistory.Recent = []HistoryEntry{}
	}
	if e.seasonEnabled {
		out.Seasonality = e.detectSeasonality(metric, defaultPeriod)
	}
	out.Recommendations = recommendations(out.Baseline, historyCount, out.Seasonality)
	return out
}

// ResetBaseline removes the metric's window, baseline and anomaly history
// together; a partial reset is never observable.
func (e *Engine) ResetBaseline(metric string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.windows, metric)
	delete(e.baselines, metric)
	delete(e.histories, metric)
	metrics.trackedMetrics.Set(float64(len(e.windows)))
	elog.Debugf("baseline reset: metric=%s", metric)
}
