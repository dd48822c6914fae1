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

// pearson computes the Pearson correlation coefficient of two equal-length
// series paired by position. Returns 0 for a degenerate (constant) series.
func pearson(a, b []float64) float64 {
	n := len(a)
	var sumA, sumB float64
	for i := 0; i < n; i++ {
		sumA += a[i]
		sumB += b[i]
	}
	meanA := sumA / float64(n)
	meanB := sumB / float64(n)

	var cov, sqA, sqB float64
	for i := 0; i < n; i++ {
		diffA := a[i] - meanA
		diffB := b[i] - meanB
		cov += diffA * diffB
		sqA += diffA * diffA
		sqB += diffB * diffB
	}

	denom := math.Sqrt(sqA * sqB)
	if denom == 0 {
		return 0
	}
	return cov / denom
}
