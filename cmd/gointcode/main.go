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
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lassandro/gointcode/pkg/debugger"
	"github.com/lassandro/gointcode/pkg/listing"
	"github.com/lassandro/gointcode/pkg/machine"
)

var helpvar bool
var debugvar bool
var asciivar bool
var runvar string
var inputvar string
var limitvar uint64
var shouldexit bool

const usage = "gointcode [-debug] [-ascii] [-run runfile] [-input values] filename"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(&debugvar, "debug", false, "Runs the machine in a debug CLI")
	flag.BoolVar(
		&asciivar, "ascii", false,
		"Drives the program as an interactive ASCII console",
	)
	flag.StringVar(
		&runvar, "run", "",
		"Loads run options (inputs, pokes, limits, expected outputs) "+
			"from a TOML file",
	)
	flag.StringVar(
		&inputvar, "input", "",
		"Comma-separated input values queued before running",
	)
	flag.Uint64Var(
		&limitvar, "limit", 0,
		"Aborts execution after this many steps (0 = no limit)",
	)
	flag.Parse()
}

func gointcode() int {
	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	args := flag.Args()

	if len(args) != 1 {
		log.Println(usage)
		return 1
	}

	file, err := os.Open(args[0])

	if err != nil {
		log.Println(err)
		return 1
	}

	defer file.Close()

	mc := &machine.Machine{}

	if err := mc.LoadListing(file); err != nil {
		log.Println(err)
		return 1
	}

	var config *RunConfig

	if runvar != "" {
		config, err = loadRunConfig(runvar)

		if err != nil {
			log.Println(err)
			return 1
		}

		if err := config.apply(mc); err != nil {
			log.Println(err)
			return 1
		}

		asciivar = asciivar || config.ASCII
	}

	if inputvar != "" {
		values, err := listing.Parse(strings.NewReader(inputvar))

		if err != nil {
			log.Println(err)
			return 1
		}

		mc.AppendInput(values...)
	}

	if limitvar > 0 {
		mc.StepLimit = limitvar
	}

	if debugvar {
		var dbg debugger.Debugger
		dbg.HandleBreak = handleBreak
		dbg.HandleRead = handleRead
		dbg.HandleWrite = handleWrite
		mc.Debugger = &dbg

		c := make(chan os.Signal, 1)
		defer close(c)

		signal.Notify(c, os.Interrupt)
		go func() {
			for range c {
				fmt.Println()
				dbg.Break = true
			}
		}()

		debugREPL(&dbg, mc)

		if shouldexit {
			return 0
		}
	}

	if asciivar {
		return asciiSession(mc)
	}

	return batchSession(mc, config)
}

// batchSession drives the machine with numeric stdin/stdout: every produced
// value is printed on its own line, and input starvation reads one value per
// line from stdin.
func batchSession(mc *machine.Machine, config *RunConfig) int {
	scanner := bufio.NewScanner(os.Stdin)

	var outputs []int64

	for !shouldexit {
		state, err := mc.Step()

		if err != nil {
			log.Println(err)
			return 1
		}

		switch state {
		case machine.RUNNING:

		case machine.BLOCKED_INPUT:
			if !scanner.Scan() {
				log.Println("input exhausted")
				return 1
			}

			value, err := strconv.ParseInt(
				strings.TrimSpace(scanner.Text()), 10, 64,
			)

			if err != nil {
				log.Println(err)
				return 1
			}

			mc.AppendInput(value)

		case machine.BLOCKED_OUTPUT:
			value := mc.TakeOutput()
			outputs = append(outputs, value)
			fmt.Println(value)

		case machine.FINISHED:
			if config != nil {
				return config.verify(outputs)
			}
			return 0
		}
	}

	return 0
}

// asciiSession drives an ASCII-protocol program interactively: program text
// goes to the terminal, keystrokes are fed back one byte at a time, and any
// out-of-range output value (e.g. a final score) is printed numerically.
func asciiSession(mc *machine.Machine) int {
	enterRawTerm()
	defer exitRawTerm()

	reader := bufio.NewReader(os.Stdin)
	writer := bufio.NewWriter(os.Stdout)

	for !shouldexit {
		text, err := mc.ReadASCII()

		writer.WriteString(strings.ReplaceAll(text, "\n", "\r\n"))
		writer.Flush()

		if err != nil {
			log.Println(err)
			return 1
		}

		if mc.State.Finished {
			return 0
		}

		if mc.State.HasOutput {
			fmt.Fprintf(writer, "%d\r\n", mc.TakeOutput())
			writer.Flush()
			continue
		}

		key, err := reader.ReadByte()

		if err != nil {
			log.Println(err)
			return 1
		}

		// ETX: the interrupt key does not reach the signal handler while
		// the terminal is raw
		if key == 0x03 {
			return 130
		}

		if key == '\r' {
			key = '\n'
		}

		if key == '\n' {
			writer.WriteString("\r\n")
		} else {
			writer.WriteByte(key)
		}

		writer.Flush()
		mc.AppendInput(int64(key))
	}

	return 0
}

func main() {
	os.Exit(gointcode())
}
