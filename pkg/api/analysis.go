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

// AnalysisConfig drives the statistical baseline engine. Zero values are
// replaced by defaults when the engine is created. Unrecognized keys are
// collected into Extensions and carried along untouched.
type AnalysisConfig struct {
	WindowSize                 int                    `yaml:"windowSize,omitempty" json:"windowSize,omitempty" mapstructure:"windowSize,omitempty" doc:"number of samples retained per metric (default 100)"`
	Sensitivity                float64                `yaml:"sensitivity,omitempty" json:"sensitivity,omitempty" mapstructure:"sensitivity,omitempty" doc:"z-score threshold above which a sample is anomalous (default 2.0)"`
	MinDataPoints              int                    `yaml:"minDataPoints,omitempty" json:"minDataPoints,omitempty" mapstructure:"minDataPoints,omitempty" doc:"samples required before a baseline is computed (default 10)"`
	EnableTrendAnalysis        *bool                  `yaml:"enableTrendAnalysis,omitempty" json:"enableTrendAnalysis,omitempty" mapstructure:"enableTrendAnalysis,omitempty" doc:"run the linear-regression trend check (default true)"`
	EnableSeasonalityDetection *bool                  `yaml:"enableSeasonalityDetection,omitempty" json:"enableSeasonalityDetection,omitempty" mapstructure:"enableSeasonalityDetection,omitempty" doc:"run autocorrelation seasonality analysis (default true)"`
	Extensions                 map[string]interface{} `yaml:"-" json:"-" mapstructure:",remain" doc:"unrecognized configuration keys, passed through"`
}

func (c *AnalysisConfig) TrendEnabled() bool {
	return c.EnableTrendAnalysis == nil || *c.EnableTrendAnalysis
}

func (c *AnalysisConfig) SeasonalityEnabled() bool {
	return c.EnableSeasonalityDetection == nil || *c.EnableSeasonalityDetection
}
