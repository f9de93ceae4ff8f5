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

package machine

// RunState is the outcome of a decode-execute step. Run never returns
// RUNNING; Step returns it for every instruction that neither suspended nor
// halted the machine.
type RunState uint

const (
	RUNNING RunState = iota
	BLOCKED_INPUT
	BLOCKED_OUTPUT
	FINISHED
)

func (state RunState) String() string {
	switch state {
	case RUNNING:
		return "running"
	case BLOCKED_INPUT:
		return "blocked on input"
	case BLOCKED_OUTPUT:
		return "blocked on output"
	case FINISHED:
		return "finished"
	}
	return "<invalid>"
}

// MachineState is the complete resumable state of a machine. It holds no
// references besides its own slices, so copying it with the slices duplicated
// yields an independent machine (see Clone).
type MachineState struct {
	Memory   []int64
	Program  int64
	Relative int64

	// Pending input values, front of the queue first.
	Inputs []int64

	// At most one produced value is buffered; the machine suspends until the
	// host takes it.
	Output    int64
	HasOutput bool

	Finished bool
	Steps    uint64
}

type MachineDebugger interface {
	Step(mc *Machine)
	Read(addr int64, mc *Machine)
	Write(addr int64, mc *Machine)
}

type Machine struct {
	State MachineState

	// StepLimit aborts execution with a LimitError once exceeded. Zero means
	// no limit; legitimate programs can run for a very long time, so the
	// limit is host policy rather than machine policy.
	StepLimit uint64

	Debugger MachineDebugger
}
