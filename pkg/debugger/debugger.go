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

package debugger

import (
	"fmt"

	"github.com/lassandro/gointcode/pkg/machine"
)

func (dbg *Debugger) Step(mc *machine.Machine) {
	if dbg.Break {
		dbg.HandleBreak(dbg, mc)
		return
	}

	for _, breakpoint := range dbg.Breakpoints {
		if mc.State.Program == breakpoint.Addr {
			dbg.HandleBreak(dbg, mc)
			break
		}
	}
}

func (dbg *Debugger) Read(addr int64, mc *machine.Machine) {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == WriteWatch {
			continue
		}

		if addr == watchpoint.Addr {
			dbg.HandleRead(addr, dbg, mc)
			break
		}
	}
}

func (dbg *Debugger) Write(addr int64, mc *machine.Machine) {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == ReadWatch {
			continue
		}

		if addr == watchpoint.Addr {
			dbg.HandleWrite(addr, dbg, mc)
			break
		}
	}
}

func (dbg *Debugger) PrintMem(mc *machine.MachineState, addr, count int64) {
	for i := addr; i < addr+count; i++ {
		if i < 0 || i >= int64(len(mc.Memory)) {
			fmt.Printf("\033[1m[%d]\033[0m 0\n", i)
			continue
		}

		fmt.Printf("\033[1m[%d]\033[0m %d\n", i, mc.Memory[i])
	}
}

func (dbg *Debugger) PrintDisasm(mc *machine.MachineState, addr int64, count int) {
	for _, line := range machine.Disassemble(mc.Memory, addr, count) {
		fmt.Println(line)
	}
}

func (dbg *Debugger) PrintState(mc *machine.Machine) {
	fmt.Printf(
		"\033[1mPC:\033[0m %d\t\033[1mRB:\033[0m %d\t\033[1mSTEPS:\033[0m %d\n",
		mc.State.Program,
		mc.State.Relative,
		mc.State.Steps,
	)

	if mc.State.HasOutput {
		fmt.Printf("\033[1mOUT:\033[0m %d (buffered)\n", mc.State.Output)
	}

	if len(mc.State.Inputs) > 0 {
		fmt.Printf("\033[1mIN:\033[0m %v\n", mc.State.Inputs)
	}

	if mc.State.Finished {
		fmt.Println("Program finished")
	}
}
