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
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/lassandro/gointcode/pkg/debugger"
	"github.com/lassandro/gointcode/pkg/machine"
)

var lastcmd []string

func debugBreak(dbg *debugger.Debugger, args []string) {
	const usage = "break [add|list|remove]"

	if len(args) == 0 {
		args = append(args, "l")
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		const usage = "break add [addr]"

		if len(args) != 1 {
			log.Println(usage)
			return
		}

		addr, err := strconv.ParseInt(args[0], 10, 64)

		if err != nil {
			log.Println(err)
			return
		}

		exists := false

		for _, breakpoint := range dbg.Breakpoints {
			if breakpoint.Addr == addr {
				exists = true
				break
			}
		}

		if !exists {
			dbg.Breakpoints = append(
				dbg.Breakpoints,
				debugger.Breakpoint{Addr: addr},
			)

			fmt.Printf("Breakpoint added [%d]\n", addr)
		}

	case "l", "ls", "list":
		for i, breakpoint := range dbg.Breakpoints {
			fmt.Printf("#%d: [%d]\n", i, breakpoint.Addr)
		}

	case "r", "rm", "remove":
		const usage = "break remove [#]"

		if len(args) != 1 {
			log.Println(usage)
			return
		}

		i, err := strconv.ParseInt(args[0], 10, 64)

		if err != nil {
			log.Println(err)
			return
		}

		if i < 0 || i >= int64(len(dbg.Breakpoints)) {
			log.Println("Invalid breakpoint number")
			return
		}

		dbg.Breakpoints[i] = dbg.Breakpoints[len(dbg.Breakpoints)-1]
		dbg.Breakpoints = dbg.Breakpoints[:len(dbg.Breakpoints)-1]
		fmt.Printf("Breakpoint removed [%d]\n", i)

	case "clear":
		dbg.Breakpoints = nil
		fmt.Println("Breakpoints reset")

	default:
		log.Printf("break: '%s' is not a valid command\n", cmd)
	}
}

func debugWatch(dbg *debugger.Debugger, args []string) {
	const usage = "watch [add|list|rm]"

	if len(args) == 0 {
		log.Println(usage)
		return
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		const usage = "watch add [addr] [read|write|readwrite]"

		if len(args) != 2 {
			log.Println(usage)
			return
		}

		addr, err := strconv.ParseInt(args[0], 10, 64)

		if err != nil {
			log.Println(err)
			return
		}

		var wtype debugger.WatchpointType

		switch args[1] {
		case "r", "read":
			wtype = debugger.ReadWatch
		case "w", "write":
			wtype = debugger.WriteWatch
		case "rw", "rwrite", "readwrite":
			wtype = debugger.ReadWriteWatch
		default:
			log.Println(usage)
			return
		}

		exists := false

		for _, watchpoint := range dbg.Watchpoints {
			if watchpoint.Addr == addr && watchpoint.Type == wtype {
				exists = true
				break
			}
		}

		if !exists {
			dbg.Watchpoints = append(
				dbg.Watchpoints,
				debugger.Watchpoint{Addr: addr, Type: wtype},
			)

			fmt.Printf("Watchpoint added [%d]\n", addr)
		}

	case "l", "ls", "list":
		for i, watchpoint := range dbg.Watchpoints {
			var typename string

			switch watchpoint.Type {
			case debugger.ReadWatch:
				typename = "read"
			case debugger.WriteWatch:
				typename = "write"
			case debugger.ReadWriteWatch:
				typename = "rwrite"
			}

			fmt.Printf("#%d: [%d] %s\n", i, watchpoint.Addr, typename)
		}

	case "r", "rm", "remove":
		const usage = "watch rm [#]"

		if len(args) != 1 {
			log.Println(usage)
			return
		}

		i, err := strconv.ParseInt(args[0], 10, 64)

		if err != nil {
			log.Println(err)
			return
		}

		if i < 0 || i >= int64(len(dbg.Watchpoints)) {
			log.Println("Invalid watchpoint number")
			return
		}

		dbg.Watchpoints[i] = dbg.Watchpoints[len(dbg.Watchpoints)-1]
		dbg.Watchpoints = dbg.Watchpoints[:len(dbg.Watchpoints)-1]
		fmt.Printf("Watchpoint removed [%d]\n", i)

	case "clear":
		dbg.Watchpoints = nil
		fmt.Println("Watchpoints reset")

	default:
		log.Printf("watch: '%s' is not a valid command\n", cmd)
	}
}

func debugMemory(dbg *debugger.Debugger, mc *machine.MachineState, args []string) {
	const usage = "memory [addr] [#]"

	if len(args) > 2 {
		log.Println(usage)
		return
	}

	addr := mc.Program
	count := int64(1)

	if len(args) > 0 {
		value, err := strconv.ParseInt(args[0], 10, 64)

		if err != nil {
			log.Println(err)
			return
		}

		addr = value
	}

	if len(args) > 1 {
		value, err := strconv.ParseInt(args[1], 10, 64)

		if err != nil {
			log.Println(err)
			return
		}

		count = value
	}

	dbg.PrintMem(mc, addr, count)
}

func debugDisasm(dbg *debugger.Debugger, mc *machine.MachineState, args []string) {
	const usage = "disasm [addr] [#]"

	if len(args) > 2 {
		log.Println(usage)
		return
	}

	addr := mc.Program
	count := 4

	if len(args) > 0 {
		value, err := strconv.ParseInt(args[0], 10, 64)

		if err != nil {
			log.Println(err)
			return
		}

		addr = value
	}

	if len(args) > 1 {
		value, err := strconv.Atoi(args[1])

		if err != nil {
			log.Println(err)
			return
		}

		count = value
	}

	dbg.PrintDisasm(mc, addr, count)
}

func debugSet(mc *machine.Machine, args []string) {
	const usage = "set [addr] [value]"

	if len(args) != 2 {
		log.Println(usage)
		return
	}

	addr, err := strconv.ParseInt(args[0], 10, 64)

	if err != nil {
		log.Println(err)
		return
	}

	value, err := strconv.ParseInt(args[1], 10, 64)

	if err != nil {
		log.Println(err)
		return
	}

	if err := mc.Poke(addr, value); err != nil {
		log.Println(err)
		return
	}

	fmt.Printf("\033[1m[%d]\033[0m %d\n", addr, value)
}

func debugJump(mc *machine.Machine, args []string) {
	const usage = "jump [addr]"

	if len(args) != 1 {
		log.Println(usage)
		return
	}

	addr, err := strconv.ParseInt(args[0], 10, 64)

	if err != nil {
		log.Println(err)
		return
	}

	if addr < 0 {
		log.Println("Invalid address")
		return
	}

	mc.State.Program = addr
	fmt.Printf("\033[1mPC:\033[0m %d\n", addr)
}

func debugBase(mc *machine.Machine, args []string) {
	const usage = "base [value]"

	if len(args) > 1 {
		log.Println(usage)
		return
	}

	if len(args) == 1 {
		value, err := strconv.ParseInt(args[0], 10, 64)

		if err != nil {
			log.Println(err)
			return
		}

		mc.State.Relative = value
	}

	fmt.Printf("\033[1mRB:\033[0m %d\n", mc.State.Relative)
}

func debugInput(mc *machine.Machine, args []string) {
	const usage = "input [value...]"

	if len(args) == 0 {
		log.Println(usage)
		return
	}

	for _, arg := range args {
		value, err := strconv.ParseInt(arg, 10, 64)

		if err != nil {
			log.Println(err)
			return
		}

		mc.AppendInput(value)
	}

	fmt.Printf("\033[1mIN:\033[0m %v\n", mc.State.Inputs)
}

func debugText(mc *machine.Machine, args []string) {
	const usage = "text [line]"

	if len(args) == 0 {
		log.Println(usage)
		return
	}

	line := strings.Join(args, " ")
	mc.AppendString(line + "\n")
	fmt.Printf("Queued %d bytes\n", len(line)+1)
}

func debugOutput(mc *machine.Machine) {
	if !mc.State.HasOutput {
		fmt.Println("No buffered output")
		return
	}

	fmt.Printf("\033[1mOUT:\033[0m %d\n", mc.TakeOutput())
}

func debugSave(mc *machine.Machine, args []string) {
	const usage = "save [filename]"

	if len(args) != 1 {
		log.Println(usage)
		return
	}

	file, err := os.Create(args[0])

	if err != nil {
		log.Println(err)
		return
	}

	defer file.Close()

	if err := mc.Save(file); err != nil {
		log.Println(err)
		return
	}

	fmt.Printf("Saved machine state to %s\n", args[0])
}

func debugRestore(mc *machine.Machine, args []string) {
	const usage = "restore [filename]"

	if len(args) != 1 {
		log.Println(usage)
		return
	}

	file, err := os.Open(args[0])

	if err != nil {
		log.Println(err)
		return
	}

	defer file.Close()

	restored, err := machine.Restore(file)

	if err != nil {
		log.Println(err)
		return
	}

	mc.State = restored.State
	fmt.Printf("Restored machine state from %s\n", args[0])
}

func debugREPL(dbg *debugger.Debugger, mc *machine.Machine) {
	if termRaw {
		exitRawTerm()
		defer enterRawTerm()
	}

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("\033[1;30m(dbg)\033[0m ")

		if !scanner.Scan() {
			fmt.Println()
			shouldexit = true
			return
		}

		line := strings.TrimSpace(scanner.Text())
		args := strings.Split(line, " ")

		if len(args[0]) == 0 {
			if len(lastcmd) == 0 {
				continue
			}
			args = lastcmd
		} else {
			lastcmd = make([]string, len(args))
			copy(lastcmd, args)
		}

		cmd := args[0]
		args = args[1:]

		switch cmd {
		case "b", "bp", "break", "breakpoint":
			debugBreak(dbg, args)

		case "w", "wp", "watch", "watchpoint":
			debugWatch(dbg, args)

		case "m", "mem", "memory":
			debugMemory(dbg, &mc.State, args)

		case "d", "dis", "disasm":
			debugDisasm(dbg, &mc.State, args)

		case "p", "state":
			dbg.PrintState(mc)

		case "set":
			debugSet(mc, args)

		case "j", "jmp", "jump":
			debugJump(mc, args)

		case "base":
			debugBase(mc, args)

		case "i", "in", "input":
			debugInput(mc, args)

		case "text":
			debugText(mc, args)

		case "o", "out", "output":
			debugOutput(mc)

		case "save":
			debugSave(mc, args)

		case "restore":
			debugRestore(mc, args)

		case "c", "continue":
			dbg.Break = false
			return

		case "n", "next":
			dbg.Break = true
			return

		case "q", "quit", "exit":
			shouldexit = true
			return

		case "clear":
			fmt.Print("\033[H\033[2J")

		default:
			fmt.Printf("error: '%s' is not a valid command\n", cmd)
		}
	}
}

func handleBreak(dbg *debugger.Debugger, mc *machine.Machine) {
	if !dbg.Break {
		fmt.Println()
		fmt.Println("Program stopped")
		dbg.PrintDisasm(&mc.State, mc.State.Program, 4)
	}
	debugREPL(dbg, mc)
}

func handleRead(addr int64, dbg *debugger.Debugger, mc *machine.Machine) {
	fmt.Println()
	fmt.Println("Program stopped")
	dbg.PrintMem(&mc.State, addr, 1)
	debugREPL(dbg, mc)
}

func handleWrite(addr int64, dbg *debugger.Debugger, mc *machine.Machine) {
	fmt.Println()
	fmt.Println("Program stopped")
	dbg.PrintMem(&mc.State, addr, 1)
	debugREPL(dbg, mc)
}
