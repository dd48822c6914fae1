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

func TestRecommendationsNoBaseline(t *testing.T) {
	out := recommendations(nil, 0, Seasonality{})
	require.Equal(t, []string{"Collect more data to establish baseline"}, out)
}

func TestRecommendationsQuietMetric(t *testing.T) {
	b := testBaseline(Statistics{Mean: 100, StandardDeviation: 5})
	require.Empty(t, recommendations(b, 0, Seasonality{}))
}

func TestRecommendationsAllFire(t *testing.T) {
	b := testBaseline(Statistics{Mean: 10, StandardDeviation: 8, Skewness: 2.5})
	out := recommendations(b, 12, Seasonality{HasSeasonality: true, Period: 24})

	require.Len(t, out, 4)
	require.Contains(t, out[0], "High anomaly frequency detected (12 recent anomalies)")
	require.Contains(t, out[1], "High variability")
	require.Contains(t, out[2], "period 24")
	require.Contains(t, out[3], "skewed")
}

func TestRecommendationsBoundaries(t *testing.T) {
	// exactly 10 anomalies, std exactly half the mean, skewness exactly 2:
	// none of the thresholds are inclusive
	b := testBaseline(Statistics{Mean: 10, StandardDeviation: 5, Skewness: -2})
	require.Empty(t, recommendations(b, 10, Seasonality{}))
}
