// Copyright 2021 The FuseQuery Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the engine parameters from a TOML file and
// fills in defaults for everything left unset.
package config

import (
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/logutil"
)

// EngineParameters sizes the execution engine.
type EngineParameters struct {
	// HostMmuLimitation caps the memory of the whole process.
	// default: 1 << 40
	HostMmuLimitation int64 `toml:"hostMmuLimitation"`

	// GuestMmuLimitation caps the memory of one query process.
	// default: 1 << 40
	GuestMmuLimitation int64 `toml:"guestMmuLimitation"`

	// ProcessLimitationSize is process.Limitation.Size.
	// default: 10 << 32
	ProcessLimitationSize int64 `toml:"processLimitationSize"`

	// ProcessLimitationBatchRows is process.Limitation.BatchRows.
	// default: 8192
	ProcessLimitationBatchRows int64 `toml:"processLimitationBatchRows"`

	// ProcessLimitationPartitionRows is process.Limitation.PartitionRows.
	// default: 10 << 32
	ProcessLimitationPartitionRows int64 `toml:"processLimitationPartitionRows"`

	// Parallel is the default partition count of a query.
	// default: the CPU count
	Parallel int `toml:"parallel"`

	Log logutil.LogConfig `toml:"log"`
}

func Default() EngineParameters {
	return EngineParameters{
		HostMmuLimitation:              1 << 40,
		GuestMmuLimitation:             1 << 40,
		ProcessLimitationSize:          10 << 32,
		ProcessLimitationBatchRows:     8192,
		ProcessLimitationPartitionRows: 10 << 32,
		Parallel:                       runtime.NumCPU(),
		Log:                            logutil.LogConfig{Level: "info"},
	}
}

// Load reads the parameters from path over the defaults. An empty path
// yields the defaults.
func Load(path string) (EngineParameters, error) {
	params := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &params); err != nil {
			return params, moerr.NewBadConfig("parse '%s': %v", path, err)
		}
	}
	if err := params.Validate(); err != nil {
		return params, err
	}
	return params, nil
}

func (p *EngineParameters) Validate() error {
	if p.HostMmuLimitation <= 0 {
		return moerr.NewBadConfig("hostMmuLimitation %v out of range", p.HostMmuLimitation)
	}
	if p.GuestMmuLimitation <= 0 || p.GuestMmuLimitation > p.HostMmuLimitation {
		return moerr.NewBadConfig("guestMmuLimitation %v out of range", p.GuestMmuLimitation)
	}
	if p.ProcessLimitationSize <= 0 {
		return moerr.NewBadConfig("processLimitationSize %v out of range", p.ProcessLimitationSize)
	}
	if p.ProcessLimitationBatchRows <= 0 {
		return moerr.NewBadConfig("processLimitationBatchRows %v out of range", p.ProcessLimitationBatchRows)
	}
	if p.ProcessLimitationPartitionRows <= 0 {
		return moerr.NewBadConfig("processLimitationPartitionRows %v out of range", p.ProcessLimitationPartitionRows)
	}
	if p.Parallel < 1 {
		return moerr.NewBadConfig("parallel %v out of range", p.Parallel)
	}
	return nil
}
