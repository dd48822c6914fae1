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

import "math"

// trendPoints is the number of most recent samples the trend check regresses over.
const trendPoints = 5

// checkTrend fits an ordinary least-squares line through the last
// trendPoints samples (value against index) and triggers when the slope
// magnitude exceeds twice the baseline standard deviation.
func checkTrend(recent []DataPoint, b *Baseline) *AnomalyDetail {
	if len(recent) < trendPoints {
		return nil
	}
	values := make([]float64, len(recent))
	for i, p := range recent {
		values[i] = p.Value
	}
	slope, intercept, rSquared := linearRegression(values)

	threshold := 2 * b.StandardDeviation
	if math.Abs(slope) <= threshold {
		return nil
	}
	return &AnomalyDetail{
		Type:       AnomalyTrend,
		Severity:   SeverityHigh,
		Confidence: math.Min(math.Abs(slope)/threshold, 1.0),
		Trend: &TrendDetails{
			Slope:     slope,
			Intercept: intercept,
			RSquared:  rSquared,
		},
	}
}

// linearRegression regresses values against their indices 0..n-1.
func linearRegression(values []float64) (slope, intercept, rSquared float64) {
	n := float64(len(values))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	slope = (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept = (sumY - slope*sumX) / n

	meanY := sumY / n
	var ssRes, ssTot float64
	for i, y := range values {
		fit := intercept + slope*float64(i)
		ssRes += (y - fit) * (y - fit)
		ssTot += (y - meanY) * (y - meanY)
	}
	if ssTot == 0 {
		// flat series: a zero residual is a perfect fit
		if ssRes == 0 {
			return slope, intercept, 1
		}
		return slope, intercept, 0
	}
	return slope, intercept, 1 - ssRes/ssTot
}
