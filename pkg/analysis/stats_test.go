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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateStatistics(t *testing.T) {
	stats := CalculateStatistics([]float64{1, 2, 3, 4, 5})
	require.NotNil(t, stats)

	require.Equal(t, 5, stats.Count)
	require.Equal(t, 3.0, stats.Mean)
	require.Equal(t, 3.0, stats.Median)
	require.Equal(t, 2.0, stats.Variance)
	require.InDelta(t, 1.4142, stats.StandardDeviation, 0.0001)
	require.Equal(t, 2.0, stats.Q1)
	require.Equal(t, 4.0, stats.Q3)
	require.Equal(t, 2.0, stats.IQR)
	require.Equal(t, 1.0, stats.Min)
	require.Equal(t, 5.0, stats.Max)
	require.Equal(t, 4.0, stats.Range)
}

func TestCalculateStatisticsEmpty(t *testing.T) {
	require.Nil(t, CalculateStatistics(nil))
	require.Nil(t, CalculateStatistics([]float64{}))
}

func TestCalculateStatisticsConstantSeries(t *testing.T) {
	stats := CalculateStatistics([]float64{7, 7, 7, 7, 7, 7})
	require.NotNil(t, stats)

	// a flat series must never produce NaN
	require.Equal(t, 0.0, stats.StandardDeviation)
	require.Equal(t, 0.0, stats.Variance)
	require.Equal(t, 0.0, stats.Skewness)
	require.Equal(t, 0.0, stats.Kurtosis)
	require.Equal(t, 7.0, stats.Mean)
	require.Equal(t, 7.0, stats.Median)
	require.Equal(t, 0.0, stats.Range)
}

func TestMedianEvenCount(t *testing.T) {
	stats := CalculateStatistics([]float64{4, 1, 3, 2})
	require.NotNil(t, stats)
	require.Equal(t, 2.5, stats.Median)
}

func TestPercentileInterpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}
	// index = 0.25 * 3 = 0.75 -> between 10 and 20
	require.InDelta(t, 17.5, percentile(sorted, 25), 1e-9)
	require.Equal(t, 40.0, percentile(sorted, 100))
	require.Equal(t, 10.0, percentile(sorted, 0))
}

func TestSkewnessSign(t *testing.T) {
	rightSkewed := CalculateStatistics([]float64{1, 1, 1, 1, 10})
	require.Greater(t, rightSkewed.Skewness, 0.0)

	leftSkewed := CalculateStatistics([]float64{10, 10, 10, 10, 1})
	require.Less(t, leftSkewed.Skewness, 0.0)
}
