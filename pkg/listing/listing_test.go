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

package listing_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/lassandro/gointcode/pkg/listing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		Name string
		Text string
		Want []int64
	}{
		{
			Name: "Simple",
			Text: "1,2,3",
			Want: []int64{1, 2, 3},
		},
		{
			Name: "Negative Values",
			Text: "109,1,204,-1,99",
			Want: []int64{109, 1, 204, -1, 99},
		},
		{
			Name: "Surrounding Whitespace",
			Text: "\n 1, 2 ,3 \n",
			Want: []int64{1, 2, 3},
		},
		{
			Name: "Wide Values",
			Text: "104,1125899906842624,99",
			Want: []int64{104, 1125899906842624, 99},
		},
		{
			Name: "Empty",
			Text: "",
			Want: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			have, err := listing.Parse(strings.NewReader(test.Text))

			if err != nil {
				t.Fatal(err)
			}

			if !reflect.DeepEqual(have, test.Want) {
				t.Errorf(
					"Program mismatch\nwant:%v\nhave:%v", test.Want, have,
				)
			}
		})
	}
}

func TestParseBadToken(t *testing.T) {
	_, err := listing.Parse(strings.NewReader("1,two,3"))

	var tokenErr *listing.TokenError
	if !errors.As(err, &tokenErr) {
		t.Fatalf("Error mismatch\nwant:TokenError\nhave:%v", err)
	}

	if tokenErr.Cell != 1 || tokenErr.Token != "two" {
		t.Errorf("Fault detail mismatch\nhave:%+v", tokenErr)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	const text = "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"

	program, err := listing.Parse(strings.NewReader(text))

	if err != nil {
		t.Fatal(err)
	}

	if have := listing.Render(program); have != text {
		t.Errorf("Rendering mismatch\nwant:%q\nhave:%q", text, have)
	}
}
