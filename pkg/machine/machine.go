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

import (
	"io"
	"strings"

	"github.com/lassandro/gointcode/pkg/listing"
)

// New creates a machine with the given program loaded at address zero. The
// program slice is copied.
func New(program []int64) *Machine {
	mc := &Machine{}
	mc.State.Memory = append([]int64(nil), program...)
	return mc
}

// Parse creates a machine from a comma-separated program listing.
func Parse(text string) (*Machine, error) {
	program, err := listing.Parse(strings.NewReader(text))

	if err != nil {
		return nil, err
	}

	return New(program), nil
}

// LoadListing replaces the machine's memory with the listing read from
// reader and resets all execution state.
func (mc *Machine) LoadListing(reader io.Reader) error {
	program, err := listing.Parse(reader)

	if err != nil {
		return err
	}

	mc.State = MachineState{Memory: program}
	return nil
}

func (mc *Machine) read(addr int64) (int64, error) {
	if addr < 0 {
		return 0, &AddressError{Address: addr}
	}

	var value int64
	if addr < int64(len(mc.State.Memory)) {
		value = mc.State.Memory[addr]
	}

	if mc.Debugger != nil {
		mc.Debugger.Read(addr, mc)
	}

	return value, nil
}

func (mc *Machine) write(addr int64, value int64) error {
	if addr < 0 || addr >= MEM_LIMIT {
		return &AddressError{Address: addr}
	}

	for addr >= int64(len(mc.State.Memory)) {
		mc.State.Memory = append(mc.State.Memory, 0)
	}

	mc.State.Memory[addr] = value

	if mc.Debugger != nil {
		mc.Debugger.Write(addr, mc)
	}

	return nil
}

func (mc *Machine) load(param Parameter) (int64, error) {
	switch param.Mode {
	case MODE_POSITION:
		return mc.read(param.Value)
	case MODE_IMMEDIATE:
		return param.Value, nil
	case MODE_RELATIVE:
		return mc.read(mc.State.Relative + param.Value)
	}
	panic("machine: parameter mode not validated by decode")
}

func (mc *Machine) store(param Parameter, value int64) error {
	switch param.Mode {
	case MODE_POSITION:
		return mc.write(param.Value, value)
	case MODE_IMMEDIATE:
		return &StoreError{Program: mc.State.Program}
	case MODE_RELATIVE:
		return mc.write(mc.State.Relative+param.Value, value)
	}
	panic("machine: parameter mode not validated by decode")
}

// Peek reads the memory cell at addr without executing anything.
func (mc *Machine) Peek(addr int64) (int64, error) {
	if addr < 0 {
		return 0, &AddressError{Address: addr}
	}

	if addr < int64(len(mc.State.Memory)) {
		return mc.State.Memory[addr], nil
	}

	return 0, nil
}

// Poke overwrites the memory cell at addr, growing memory if needed. Used by
// hosts that patch a loaded program before running it.
func (mc *Machine) Poke(addr int64, value int64) error {
	return mc.write(addr, value)
}

// AppendInput pushes values onto the back of the input queue.
func (mc *Machine) AppendInput(values ...int64) {
	mc.State.Inputs = append(mc.State.Inputs, values...)
}

// AppendString queues the bytes of text as individual input values, for
// programs speaking an ASCII protocol.
func (mc *Machine) AppendString(text string) {
	for _, ch := range []byte(text) {
		mc.State.Inputs = append(mc.State.Inputs, int64(ch))
	}
}

// TakeOutput removes and returns the buffered output value, allowing
// execution to proceed past the producing instruction. Calling it with
// nothing buffered is a host programming error.
func (mc *Machine) TakeOutput() int64 {
	if !mc.State.HasOutput {
		panic("machine: TakeOutput with no buffered output")
	}

	mc.State.HasOutput = false
	return mc.State.Output
}

// Clone returns an independent copy of the machine: memory, program counter,
// relative base and queued input are duplicated, and the two machines share
// no state afterwards. The debugger hook is not carried over.
func (mc *Machine) Clone() *Machine {
	clone := &Machine{State: mc.State, StepLimit: mc.StepLimit}
	clone.State.Memory = append([]int64(nil), mc.State.Memory...)
	clone.State.Inputs = append([]int64(nil), mc.State.Inputs...)
	return clone
}

// Step decodes and executes a single instruction.
//
// An input instruction with an empty queue suspends without mutating
// anything; it is re-attempted on the next call. An output instruction always
// suspends after buffering its value, and the machine stays suspended until
// the host calls TakeOutput. Stepping a finished machine is a host
// programming error.
func (mc *Machine) Step() (RunState, error) {
	if mc.State.Finished {
		panic("machine: Step after finish")
	}

	if mc.State.HasOutput {
		return BLOCKED_OUTPUT, nil
	}

	mc.State.Steps++

	if mc.StepLimit > 0 && mc.State.Steps > mc.StepLimit {
		return RUNNING, &LimitError{Steps: mc.StepLimit}
	}

	instr, err := Decode(mc.State.Memory, mc.State.Program)

	if err != nil {
		return RUNNING, err
	}

	state := RUNNING

	switch instr.Opcode {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		a, err := mc.load(instr.Params[0])

		if err != nil {
			return RUNNING, err
		}

		b, err := mc.load(instr.Params[1])

		if err != nil {
			return RUNNING, err
		}

		var value int64

		switch instr.Opcode {
		case OP_ADD:
			value = a + b
		case OP_MUL:
			value = a * b
		case OP_LT:
			if a < b {
				value = 1
			}
		case OP_EQ:
			if a == b {
				value = 1
			}
		}

		if err := mc.store(instr.Params[2], value); err != nil {
			return RUNNING, err
		}

		mc.State.Program += instr.Size()

	case OP_IN:
		if len(mc.State.Inputs) == 0 {
			return BLOCKED_INPUT, nil
		}

		value := mc.State.Inputs[0]
		mc.State.Inputs = mc.State.Inputs[1:]

		if err := mc.store(instr.Params[0], value); err != nil {
			return RUNNING, err
		}

		mc.State.Program += instr.Size()

	case OP_OUT:
		value, err := mc.load(instr.Params[0])

		if err != nil {
			return RUNNING, err
		}

		mc.State.Output = value
		mc.State.HasOutput = true
		mc.State.Program += instr.Size()

		state = BLOCKED_OUTPUT

	case OP_JT, OP_JF:
		a, err := mc.load(instr.Params[0])

		if err != nil {
			return RUNNING, err
		}

		if (a != 0) == (instr.Opcode == OP_JT) {
			target, err := mc.load(instr.Params[1])

			if err != nil {
				return RUNNING, err
			}

			if target < 0 {
				return RUNNING, &AddressError{Address: target}
			}

			mc.State.Program = target
		} else {
			mc.State.Program += instr.Size()
		}

	case OP_ARB:
		value, err := mc.load(instr.Params[0])

		if err != nil {
			return RUNNING, err
		}

		mc.State.Relative += value
		mc.State.Program += instr.Size()

	case OP_HALT:
		mc.State.Finished = true
		state = FINISHED
	}

	if mc.Debugger != nil {
		mc.Debugger.Step(mc)
	}

	return state, nil
}

// Run steps the machine until it suspends, finishes, or faults.
func (mc *Machine) Run() (RunState, error) {
	for {
		state, err := mc.Step()

		if err != nil || state != RUNNING {
			return state, err
		}
	}
}

// ReadASCII steps the machine, collecting output values in the printable
// ASCII range into a string. It stops at the first out-of-range value
// (leaving it buffered), at input starvation, at a fault, or when the
// program finishes.
func (mc *Machine) ReadASCII() (string, error) {
	var out strings.Builder

	for {
		state, err := mc.Step()

		if err != nil {
			return out.String(), err
		}

		switch state {
		case RUNNING:

		case BLOCKED_OUTPUT:
			if mc.State.Output < 0 || mc.State.Output >= ASCII_LIMIT {
				return out.String(), nil
			}
			out.WriteByte(byte(mc.TakeOutput()))

		default:
			return out.String(), nil
		}
	}
}
