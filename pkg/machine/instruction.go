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
	"fmt"
	"strings"
)

type Parameter struct {
	Mode  int64
	Value int64
}

func (param Parameter) String() string {
	switch param.Mode {
	case MODE_POSITION:
		return fmt.Sprintf("[%d]", param.Value)
	case MODE_IMMEDIATE:
		return fmt.Sprintf("%d", param.Value)
	case MODE_RELATIVE:
		if param.Value < 0 {
			return fmt.Sprintf("[rb%d]", param.Value)
		}
		return fmt.Sprintf("[rb+%d]", param.Value)
	}
	return "<invalid>"
}

// Instruction is a decoded cell: the opcode and its operands with their
// addressing modes. Operand values are the raw cells following the opcode;
// they are resolved against memory only when loaded or stored.
type Instruction struct {
	Opcode int64
	Params []Parameter
}

// Size returns the number of memory cells the instruction occupies, which is
// also the program counter advance for every opcode that does not jump.
func (instr Instruction) Size() int64 {
	return int64(1 + len(instr.Params))
}

func (instr Instruction) Mnemonic() string {
	switch instr.Opcode {
	case OP_ADD:
		return "add"
	case OP_MUL:
		return "mul"
	case OP_IN:
		return "in"
	case OP_OUT:
		return "out"
	case OP_JT:
		return "jt"
	case OP_JF:
		return "jf"
	case OP_LT:
		return "lt"
	case OP_EQ:
		return "eq"
	case OP_ARB:
		return "arb"
	case OP_HALT:
		return "halt"
	}
	return "<invalid>"
}

func (instr Instruction) String() string {
	parts := make([]string, 0, 1+len(instr.Params))
	parts = append(parts, instr.Mnemonic())

	for _, param := range instr.Params {
		parts = append(parts, param.String())
	}

	return strings.Join(parts, " ")
}

func operandCount(opcode int64) (int, bool) {
	switch opcode {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		return 3, true
	case OP_JT, OP_JF:
		return 2, true
	case OP_IN, OP_OUT, OP_ARB:
		return 1, true
	case OP_HALT:
		return 0, true
	}
	return 0, false
}

// Decode reads the instruction at addr. The opcode is the low two decimal
// digits of the cell; each successive higher digit selects the addressing
// mode of the corresponding operand. Cells past the end of memory read as
// zero. Decode does not touch the machine, so it serves disassembly as well
// as execution.
func Decode(memory []int64, addr int64) (Instruction, error) {
	var cell int64
	if addr >= 0 && addr < int64(len(memory)) {
		cell = memory[addr]
	}

	opcode := cell % 100
	count, ok := operandCount(opcode)

	if !ok {
		return Instruction{}, &OpcodeError{Program: addr, Value: cell}
	}

	instr := Instruction{Opcode: opcode}
	modes := cell / 100

	for i := 0; i < count; i++ {
		mode := modes % 10
		modes /= 10

		switch mode {
		case MODE_POSITION, MODE_IMMEDIATE, MODE_RELATIVE:
		default:
			return Instruction{}, &ModeError{
				Program: addr,
				Value:   cell,
				Operand: i,
			}
		}

		var value int64
		if index := addr + 1 + int64(i); index < int64(len(memory)) {
			value = memory[index]
		}

		instr.Params = append(instr.Params, Parameter{
			Mode:  mode,
			Value: value,
		})
	}

	return instr, nil
}
