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
	"fmt"
	"math"
)

// recommendations derives advisory strings from the metric state. The
// check order is fixed; several advisories may apply at once.
func recommendations(b *Baseline, historyCount int, seasonality Seasonality) []string {
	if b == nil {
		return []string{"Collect more data to establish baseline"}
	}
	out := []string{}
	if historyCount > 10 {
		out = append(out, fmt.Sprintf("High anomaly frequency detected (%d recent anomalies) - investigate underlying cause", historyCount))
	}
	if b.StandardDeviation > 0.5*b.Mean {
		out = append(out, "High variability detected - consider increasing the analysis window")
	}
	if seasonality.HasSeasonality {
		out = append(out, fmt.Sprintf("Seasonal pattern detected with period %d - account for periodicity in alerting", seasonality.Period))
	}
	if math.Abs(b.Skewness) > 2 {
		out = append(out, "Highly skewed distribution - consider a data transformation")
	}
	return out
}
