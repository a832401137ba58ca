// LIBCRC - A generic cyclic redundancy check calculator.
// Copyright (C) 2015 Douglas Hall
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Result describes a computed CRC and the parameters used to compute it.
// Register values are hex encoded, zero padded to the register width.
type Result struct {
	XMLName xml.Name `xml:"crc" json:"-"`

	File   string `xml:",attr"`
	Engine string `xml:",attr"`
	Width  uint   `xml:",attr"`
	Shift  string `xml:",attr"`
	Length int64  `xml:",attr"`

	Poly string
	Seed string
	CRC  string

	Table []string `json:",omitempty" xml:"Table>Entry,omitempty"`
}

func NewResult(cfg Config) Result {
	return Result{
		File:   cfg.Filename,
		Engine: cfg.Engine(),
		Width:  cfg.Width,
		Shift:  cfg.Shift.String(),
		Poly:   FormatRegister(cfg.Poly, cfg.Width),
		Seed:   FormatRegister(cfg.Seed, cfg.Width),
	}
}

// FormatRegister formats v as upper case hex with one digit per nibble of
// the register.
func FormatRegister(v uint64, width uint) string {
	return fmt.Sprintf("%0*X", int(width/4), v)
}

func (r Result) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "File      : %s\n", r.File)
	fmt.Fprintf(&b, "Algorithm : CRC%d (%s shift, %s)\n", r.Width, r.Shift, r.Engine)
	fmt.Fprintf(&b, "Length    : %d\n", r.Length)
	fmt.Fprintf(&b, "Polynomial: %s\n", r.Poly)
	fmt.Fprintf(&b, "Seed      : %s\n", r.Seed)
	fmt.Fprintf(&b, "CRC       : %s", r.CRC)

	for idx, entry := range r.Table {
		if idx%8 == 0 {
			fmt.Fprintf(&b, "\n%02X:", idx)
		}
		fmt.Fprintf(&b, " %s", entry)
	}

	return b.String()
}

func (r Result) Header() []string {
	return []string{"File", "Engine", "Width", "Shift", "Length", "Poly", "Seed", "CRC"}
}

func (r Result) Record() []string {
	return []string{
		r.File,
		r.Engine,
		strconv.FormatUint(uint64(r.Width), 10),
		r.Shift,
		strconv.FormatInt(r.Length, 10),
		r.Poly,
		r.Seed,
		r.CRC,
	}
}
