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

const (
	OP_ADD  int64 = 1
	OP_MUL  int64 = 2
	OP_IN   int64 = 3
	OP_OUT  int64 = 4
	OP_JT   int64 = 5
	OP_JF   int64 = 6
	OP_LT   int64 = 7
	OP_EQ   int64 = 8
	OP_ARB  int64 = 9
	OP_HALT int64 = 99
)

const (
	MODE_POSITION  int64 = 0
	MODE_IMMEDIATE int64 = 1
	MODE_RELATIVE  int64 = 2
)

// Stores above this address are rejected so that a runaway program faults
// instead of exhausting the host. Reads have no ceiling since they cannot
// grow memory.
const MEM_LIMIT int64 = 128 * 1024

// Output values inside [0, ASCII_LIMIT) are treated as text by ReadASCII.
const ASCII_LIMIT int64 = 128
