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

package machine_test

import (
	"errors"
	"testing"

	"github.com/lassandro/gointcode/pkg/machine"
)

func TestDecode(t *testing.T) {
	instr, err := machine.Decode([]int64{1002, 4, 3, 4, 33}, 0)

	if err != nil {
		t.Fatal(err)
	}

	if instr.Opcode != machine.OP_MUL {
		t.Errorf("Opcode mismatch\nwant:%d\nhave:%d",
			machine.OP_MUL, instr.Opcode)
	}

	if instr.Size() != 4 {
		t.Errorf("Size mismatch\nwant:4\nhave:%d", instr.Size())
	}

	want := []machine.Parameter{
		{Mode: machine.MODE_POSITION, Value: 4},
		{Mode: machine.MODE_IMMEDIATE, Value: 3},
		{Mode: machine.MODE_POSITION, Value: 4},
	}

	for i, param := range instr.Params {
		if param != want[i] {
			t.Errorf(
				"Parameter mismatch\nwant:%+v (want[%d])\nhave:%+v",
				want[i],
				i,
				param,
			)
		}
	}
}

func TestDecodeRelative(t *testing.T) {
	instr, err := machine.Decode([]int64{204, -1}, 0)

	if err != nil {
		t.Fatal(err)
	}

	if instr.Opcode != machine.OP_OUT {
		t.Errorf("Opcode mismatch\nwant:%d\nhave:%d",
			machine.OP_OUT, instr.Opcode)
	}

	param := instr.Params[0]

	if param.Mode != machine.MODE_RELATIVE || param.Value != -1 {
		t.Errorf("Parameter mismatch\nhave:%+v", param)
	}
}

func TestDecodeBeyondMemory(t *testing.T) {
	// Operand cells past the end of memory read as zero
	instr, err := machine.Decode([]int64{4}, 0)

	if err != nil {
		t.Fatal(err)
	}

	if instr.Params[0].Value != 0 {
		t.Errorf("Parameter mismatch\nhave:%+v", instr.Params[0])
	}

	// An empty cell decodes as opcode zero, which is invalid
	_, err = machine.Decode(nil, 0)

	var opErr *machine.OpcodeError
	if !errors.As(err, &opErr) {
		t.Fatalf("Error mismatch\nwant:OpcodeError\nhave:%v", err)
	}
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		Memory []int64
		Want   string
	}{
		{[]int64{1002, 4, 3, 4}, "mul [4] 3 [4]"},
		{[]int64{1101, 7, 9, 7}, "add 7 9 [7]"},
		{[]int64{204, -1}, "out [rb-1]"},
		{[]int64{203, 5}, "in [rb+5]"},
		{[]int64{109, 19}, "arb 19"},
		{[]int64{1105, 1, 46}, "jt 1 46"},
		{[]int64{6, 12, 15}, "jf [12] [15]"},
		{[]int64{7, 1, 2, 3}, "lt [1] [2] [3]"},
		{[]int64{1108, -1, 8, 3}, "eq -1 8 [3]"},
		{[]int64{99}, "halt"},
	}

	for _, test := range tests {
		instr, err := machine.Decode(test.Memory, 0)

		if err != nil {
			t.Fatal(err)
		}

		if have := instr.String(); have != test.Want {
			t.Errorf(
				"Rendering mismatch\nwant:%q\nhave:%q", test.Want, have,
			)
		}
	}
}

func TestDisassemble(t *testing.T) {
	lines := machine.Disassemble([]int64{109, 1, 204, -1, 55555, 99}, 0, 10)

	want := []string{
		"[0] arb 1",
		"[2] out [rb-1]",
		"[4] dat 55555",
		"[5] halt",
	}

	if len(lines) != len(want) {
		t.Fatalf("Line count mismatch\nwant:%v\nhave:%v", want, lines)
	}

	for i, line := range lines {
		if line != want[i] {
			t.Errorf(
				"Line mismatch\nwant:%q (want[%d])\nhave:%q",
				want[i],
				i,
				line,
			)
		}
	}
}
