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

// Package listing reads and writes program listings: a single
// whitespace-trimmed block of comma-separated base-10 integers, parsed in
// order into memory cells 0..N-1.
package listing

import (
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"
)

type TokenError struct {
	Cell  int
	Token string
	Err   error
}

func (err *TokenError) Error() string {
	return fmt.Sprintf(
		"invalid value %q at cell %d: %v", err.Token, err.Cell, err.Err,
	)
}

func (err *TokenError) Unwrap() error {
	return err.Err
}

// Parse reads a comma-separated listing from reader. A token that fails
// integer parsing aborts the load with a TokenError naming it.
func Parse(reader io.Reader) ([]int64, error) {
	data, err := ioutil.ReadAll(reader)

	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(string(data))

	if text == "" {
		return nil, nil
	}

	tokens := strings.Split(text, ",")
	program := make([]int64, 0, len(tokens))

	for i, token := range tokens {
		token = strings.TrimSpace(token)
		value, err := strconv.ParseInt(token, 10, 64)

		if err != nil {
			return nil, &TokenError{Cell: i, Token: token, Err: err}
		}

		program = append(program, value)
	}

	return program, nil
}

// Render formats a program back into canonical listing text.
func Render(program []int64) string {
	parts := make([]string, len(program))

	for i, value := range program {
		parts[i] = strconv.FormatInt(value, 10)
	}

	return strings.Join(parts, ",")
}
