// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/lassandro/gointcode/pkg/machine"
)

// RunConfig is a TOML run file: canned inputs, pre-run memory patches, and
// expected outputs for regression runs.
//
//	inputs = [5]
//	text = "NOT A J\nWALK\n"
//	step_limit = 1000000
//	expect = [19355645]
//
//	[[poke]]
//	addr = 1
//	value = 12
type RunConfig struct {
	Inputs    []int64   `toml:"inputs"`
	Text      string    `toml:"text"`
	StepLimit uint64    `toml:"step_limit"`
	ASCII     bool      `toml:"ascii"`
	Expect    []int64   `toml:"expect"`
	Pokes     []RunPoke `toml:"poke"`
}

type RunPoke struct {
	Addr  int64 `toml:"addr"`
	Value int64 `toml:"value"`
}

func loadRunConfig(path string) (*RunConfig, error) {
	var config RunConfig

	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (config *RunConfig) apply(mc *machine.Machine) error {
	for _, poke := range config.Pokes {
		if err := mc.Poke(poke.Addr, poke.Value); err != nil {
			return err
		}
	}

	mc.AppendInput(config.Inputs...)

	if config.Text != "" {
		mc.AppendString(config.Text)
	}

	if config.StepLimit > 0 {
		mc.StepLimit = config.StepLimit
	}

	return nil
}

// verify compares the collected outputs against the run file's expected
// values, returning a process exit code.
func (config *RunConfig) verify(outputs []int64) int {
	if len(config.Expect) == 0 {
		return 0
	}

	if len(outputs) != len(config.Expect) {
		log.Printf(
			"output mismatch\nwant:%v\nhave:%v", config.Expect, outputs,
		)
		return 1
	}

	for i, want := range config.Expect {
		if outputs[i] != want {
			log.Printf(
				"output mismatch\nwant:%v\nhave:%v", config.Expect, outputs,
			)
			return 1
		}
	}

	return 0
}
