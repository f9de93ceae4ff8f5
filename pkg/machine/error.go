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
)

// All machine faults are unrecoverable: once Step returns an error the
// machine must not be stepped again.

type OpcodeError struct {
	Program int64
	Value   int64
}

func (err *OpcodeError) Error() string {
	return fmt.Sprintf(
		"invalid opcode at pc=%d (cell value %d)", err.Program, err.Value,
	)
}

type ModeError struct {
	Program int64
	Value   int64
	Operand int
}

func (err *ModeError) Error() string {
	return fmt.Sprintf(
		"invalid parameter mode for operand %d at pc=%d (cell value %d)",
		err.Operand,
		err.Program,
		err.Value,
	)
}

type AddressError struct {
	Address int64
}

func (err *AddressError) Error() string {
	return fmt.Sprintf("invalid memory address %d", err.Address)
}

type StoreError struct {
	Program int64
}

func (err *StoreError) Error() string {
	return fmt.Sprintf(
		"cannot store to immediate parameter at pc=%d", err.Program,
	)
}

type LimitError struct {
	Steps uint64
}

func (err *LimitError) Error() string {
	return fmt.Sprintf("step limit exceeded after %d steps", err.Steps)
}
