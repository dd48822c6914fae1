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

package config

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/metricsentry/baseline-engine/pkg/api"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Options holds the raw command line / environment configuration before parsing.
type Options struct {
	PipeLine        string
	Health          Health
	Profile         Profile
	MetricsSettings MetricsSettings
}

type Health struct {
	Address string
	Port    string
}

type Profile struct {
	Port int
}

type MetricsSettings struct {
	Address string `yaml:"address,omitempty" json:"address,omitempty" doc:"address of the prometheus server"`
	Port    int    `yaml:"port,omitempty" json:"port,omitempty" doc:"port of the prometheus server (default: disabled)"`
	NoPanic bool   `yaml:"noPanic,omitempty" json:"noPanic,omitempty" doc:"do not exit the process on server failure"`
}

// ConfigFileStruct is the parsed pipeline definition: a single linear chain
// of ingest -> (json decode) -> analysis -> write.
type ConfigFileStruct struct {
	Ingest  Ingest  `yaml:"ingest,omitempty" json:"ingest,omitempty"`
	Process Process `yaml:"process,omitempty" json:"process,omitempty"`
	Write   Write   `yaml:"write,omitempty" json:"write,omitempty"`
}

type Ingest struct {
	Type      string               `yaml:"type,omitempty" json:"type,omitempty"`
	File      *File                `yaml:"file,omitempty" json:"file,omitempty"`
	Kafka     *api.IngestKafka     `yaml:"kafka,omitempty" json:"kafka,omitempty"`
	Synthetic *api.IngestSynthetic `yaml:"synthetic,omitempty" json:"synthetic,omitempty"`
}

type File struct {
	Filename string `yaml:"filename,omitempty" json:"filename,omitempty"`
}

type Process struct {
	Analysis *api.ProcessAnalysis `yaml:"analysis,omitempty" json:"analysis,omitempty"`
}

type Write struct {
	Type   string         `yaml:"type,omitempty" json:"type,omitempty"`
	Loki   *api.WriteLoki `yaml:"loki,omitempty" json:"loki,omitempty"`
	Stdout *Stdout        `yaml:"stdout,omitempty" json:"stdout,omitempty"`
}

type Stdout struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}

// ParseConfig creates the internal pipeline representation from the json
// string passed on the command line (or through the config file). The json
// is decoded through an intermediate map so that unrecognized analysis keys
// land in the engine's extension map instead of being silently dropped.
func ParseConfig(opts *Options) (ConfigFileStruct, error) {
	out := ConfigFileStruct{}

	log.Debugf("opts.PipeLine = %v ", opts.PipeLine)
	if opts.PipeLine == "" {
		return out, errors.New("pipeline configuration is empty")
	}
	raw := map[string]interface{}{}
	if err := jsoniter.Unmarshal([]byte(opts.PipeLine), &raw); err != nil {
		return out, errors.Wrap(err, "error reading pipeline configuration")
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return out, errors.Wrap(err, "error creating pipeline configuration decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return out, errors.Wrap(err, "error decoding pipeline configuration")
	}
	log.Debugf("parsed pipeline = %v ", out)
	return out, nil
}
