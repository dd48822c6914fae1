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

// autocorrelation above this magnitude flags seasonality
const seasonalityThreshold = 0.3

// Seasonality is the outcome of a lag-period autocorrelation check.
type Seasonality struct {
	HasSeasonality  bool    `json:"hasSeasonality"`
	Autocorrelation float64 `json:"autocorrelation,omitempty"`
	Period          int     `json:"period,omitempty"`
	Strength        float64 `json:"strength,omitempty"`
}

// detectSeasonality computes the lag-period autocorrelation of the series.
// At least two full periods of data are required.
func detectSeasonality(values []float64, period int) Seasonality {
	n := len(values)
	if n < 2*period {
		return Seasonality{}
	}

	sum := float64(0)
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	variance := float64(0)
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(n)
	if variance == 0 {
		return Seasonality{Period: period}
	}

	autocorr := float64(0)
	for i := 0; i < n-period; i++ {
		autocorr += (values[i] - mean) * (values[i+period] - mean)
	}
	autocorr /= float64(n-period) * variance

	return Seasonality{
		HasSeasonality:  math.Abs(autocorr) > seasonalityThreshold,
		Autocorrelation: autocorr,
		Period:          period,
		Strength:        math.Abs(autocorr),
	}
}
