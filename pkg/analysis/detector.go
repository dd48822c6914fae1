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

type AnomalyType string

const (
	AnomalyZScore AnomalyType = "zscore"
	AnomalyIQR    AnomalyType = "iqr"
	AnomalyTrend  AnomalyType = "trend"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

const insufficientBaselineReason = "Insufficient baseline data"

// AnomalyDetail reports one triggered detection method. Exactly one of the
// detail payloads is set, matching Type.
type AnomalyDetail struct {
	Type       AnomalyType    `json:"type"`
	Severity   Severity       `json:"severity"`
	Confidence float64        `json:"confidence"`
	ZScore     *ZScoreDetails `json:"zscore,omitempty"`
	IQR        *IQRDetails    `json:"iqr,omitempty"`
	Trend      *TrendDetails  `json:"trend,omitempty"`
}

type ZScoreDetails struct {
	ZScore float64 `json:"zScore"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
}

type IQRDetails struct {
	LowerBound float64 `json:"lowerBound"`
	UpperBound float64 `json:"upperBound"`
	Q1         float64 `json:"q1"`
	Q3         float64 `json:"q3"`
	IQR        float64 `json:"iqr"`
	Distance   float64 `json:"distance"`
}

type TrendDetails struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"rSquared"`
}

// BaselineSummary is the baseline subset attached to evaluations.
type BaselineSummary struct {
	Mean              float64 `json:"mean"`
	Median            float64 `json:"median"`
	StandardDeviation float64 `json:"standardDeviation"`
}

// Evaluation is the outcome of checking one sample against a baseline. Any
// single triggered method marks the sample anomalous; the overall confidence
// is the maximum over the triggered methods.
type Evaluation struct {
	Metric     string           `json:"metric"`
	Value      float64          `json:"value"`
	Timestamp  int64            `json:"timestamp"`
	IsAnomaly  bool             `json:"isAnomaly"`
	Reason     string           `json:"reason,omitempty"`
	Anomalies  []AnomalyDetail  `json:"anomalies,omitempty"`
	Confidence float64          `json:"confidence"`
	Baseline   *BaselineSummary `json:"baseline,omitempty"`
}

// checkZScore triggers when the sample lies more than sensitivity standard
// deviations from the baseline mean. Skipped for a flat baseline.
func checkZScore(b *Baseline, value, sensitivity float64) *AnomalyDetail {
	if b.StandardDeviation == 0 {
		return nil
	}
	z := math.Abs(value-b.Mean) / b.StandardDeviation
	if z <= sensitivity {
		return nil
	}
	return &AnomalyDetail{
		Type:       AnomalyZScore,
		Severity:   zscoreSeverity(z),
		Confidence: math.Min(z/sensitivity, 1.0),
		ZScore: &ZScoreDetails{
			ZScore: z,
			Mean:   b.Mean,
			StdDev: b.StandardDeviation,
		},
	}
}

// severity thresholds are absolute z values, independent of sensitivity
func zscoreSeverity(z float64) Severity {
	switch {
	case z >= 4:
		return SeverityCritical
	case z >= 3:
		return SeverityHigh
	case z >= 2:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// checkIQR triggers when the sample falls outside [q1-1.5*iqr, q3+1.5*iqr].
func checkIQR(b *Baseline, value float64) *AnomalyDetail {
	lower := b.Q1 - 1.5*b.IQR
	upper := b.Q3 + 1.5*b.IQR
	if value >= lower && value <= upper {
		return nil
	}
	var distance float64
	if value < lower {
		distance = (lower - value) / b.IQR
	} else {
		distance = (value - upper) / b.IQR
	}
	return &AnomalyDetail{
		Type:       AnomalyIQR,
		Severity:   iqrSeverity(distance),
		Confidence: math.Min(distance/2, 1.0),
		IQR: &IQRDetails{
			LowerBound: lower,
			UpperBound: upper,
			Q1:         b.Q1,
			Q3:         b.Q3,
			IQR:        b.IQR,
			Distance:   distance,
		},
	}
}

func iqrSeverity(distance float64) Severity {
	switch {
	case distance >= 3:
		return SeverityCritical
	case distance >= 2:
		return SeverityHigh
	case distance >= 1:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
