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

// Disassemble renders up to count instructions starting at addr, one line
// per instruction, each prefixed with its address. A cell that does not
// decode is emitted as a raw data word and skipped. Rendering stops at the
// end of memory.
func Disassemble(memory []int64, addr int64, count int) []string {
	lines := make([]string, 0, count)

	for i := 0; i < count && addr < int64(len(memory)); i++ {
		instr, err := Decode(memory, addr)

		if err != nil {
			lines = append(
				lines, fmt.Sprintf("[%d] dat %d", addr, memory[addr]),
			)
			addr++
			continue
		}

		lines = append(lines, fmt.Sprintf("[%d] %s", addr, instr))
		addr += instr.Size()
	}

	return lines
}
