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
	"io/ioutil"

	"github.com/fxamacker/cbor/v2"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()

	if err != nil {
		panic(err)
	}

	cborEncMode = em
}

// Save writes the complete machine state to writer as CBOR. A saved machine
// resumes from exactly the point the snapshot was taken, like an on-disk
// Clone. The step limit and debugger hook are host policy and are not part
// of the snapshot.
func (mc *Machine) Save(writer io.Writer) error {
	data, err := cborEncMode.Marshal(&mc.State)

	if err != nil {
		return err
	}

	_, err = writer.Write(data)
	return err
}

// Restore creates a machine from a snapshot previously written by Save.
func Restore(reader io.Reader) (*Machine, error) {
	data, err := ioutil.ReadAll(reader)

	if err != nil {
		return nil, err
	}

	var state MachineState

	if err := cbor.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	return &Machine{State: state}, nil
}
