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
	"math"
	"sort"
)

// Statistics is the descriptive summary of a set of samples. Variance and
// the standardized moments are population statistics (divide by N).
type Statistics struct {
	Count             int     `json:"count"`
	Mean              float64 `json:"mean"`
	Median            float64 `json:"median"`
	StandardDeviation float64 `json:"standardDeviation"`
	Variance          float64 `json:"variance"`
	Min               float64 `json:"min"`
	Max               float64 `json:"max"`
	Range             float64 `json:"range"`
	Q1                float64 `json:"q1"`
	Q3                float64 `json:"q3"`
	IQR               float64 `json:"iqr"`
	Skewness          float64 `json:"skewness"`
	Kurtosis          float64 `json:"kurtosis"`
}

// Baseline is the statistics snapshot a metric is compared against.
// Only the latest baseline per metric is retained.
type Baseline struct {
	Statistics
	LastUpdated int64 `json:"lastUpdated"`
	DataPoints  int   `json:"dataPoints"`
}

// CalculateStatistics computes the descriptive statistics of values.
// Returns nil for an empty input.
func CalculateStatistics(values []float64) *Statistics {
	n := len(values)
	if n == 0 {
		return nil
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := float64(0)
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	sumSq := float64(0)
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	variance := sumSq / float64(n)
	stdDev := math.Sqrt(variance)

	s := Statistics{
		Count:             n,
		Mean:              mean,
		Median:            median(sorted),
		StandardDeviation: stdDev,
		Variance:          variance,
		Min:               sorted[0],
		Max:               sorted[n-1],
		Range:             sorted[n-1] - sorted[0],
		Q1:                percentile(sorted, 25),
		Q3:                percentile(sorted, 75),
	}
	s.IQR = s.Q3 - s.Q1

	// standardized moments are undefined for a constant series; report 0
	if stdDev > 0 {
		sumCube := float64(0)
		sumQuad := float64(0)
		for _, v := range values {
			z := (v - mean) / stdDev
			sumCube += z * z * z
			sumQuad += z * z * z * z
		}
		s.Skewness = sumCube / float64(n)
		s.Kurtosis = sumQuad/float64(n) - 3
	}

	return &s
}

// median of an ascending-sorted non-empty slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// percentile interpolates linearly between the two closest ranks of an
// ascending-sorted non-empty slice. p is in [0,100].
func percentile(sorted []float64, p float64) float64 {
	index := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	weight := index - float64(lower)
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
