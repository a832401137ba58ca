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
	"flag"
	"strings"

	"github.com/pkg/errors"

	"github.com/bemasher/libcrc/crc"
)

// Config holds the validated command line parameters.
type Config struct {
	poly  HexUint
	seed  HexUint
	shift string

	Filename string

	Width uint
	Shift crc.Direction
	Poly  uint64
	Seed  uint64

	Table     bool
	DumpTable bool
	BufSize   int
	Format    string

	Verbose bool
	Version bool
}

// RegisterFlags binds the configuration to fs.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	c.poly = 0x1021

	fs.Var(&c.poly, "poly", "polynomial in natural (msb-first) notation, without the implicit top bit")
	fs.Var(&c.seed, "seed", "initial register value, or the crc of preceding data")
	fs.UintVar(&c.Width, "width", 16, "register width in bits: 8, 16, 32 or 64")
	fs.StringVar(&c.shift, "shift", "right", "shift direction: left (msb-first) or right (lsb-first)")
	fs.BoolVar(&c.Table, "table", false, "compute using a precomputed lookup table")
	fs.BoolVar(&c.DumpTable, "dumptable", false, "print the lookup table along with the crc")
	fs.IntVar(&c.BufSize, "bufsize", 4096, "size in bytes of each chunk read from the file")
	fs.StringVar(&c.Format, "format", "plain", "output format: plain, csv, json, or xml")
	fs.BoolVar(&c.Verbose, "verbose", false, "log configuration and progress to stderr")
	fs.BoolVar(&c.Version, "version", false, "display build date and commit hash")
}

// Validate checks flag values and takes the filename from the remaining
// arguments.
func (c *Config) Validate(args []string) (err error) {
	if len(args) < 1 {
		return errors.New("a filename is required")
	}
	c.Filename = args[0]

	switch c.Width {
	case 8, 16, 32, 64:
	default:
		return errors.Errorf("invalid register width: %d", c.Width)
	}

	c.Shift, err = crc.ParseDirection(c.shift)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Poly = uint64(c.poly)
	c.Seed = uint64(c.seed)

	if c.Width < 64 {
		if c.Poly>>c.Width != 0 {
			return errors.Errorf("polynomial 0x%X exceeds %d bits", c.Poly, c.Width)
		}
		if c.Seed>>c.Width != 0 {
			return errors.Errorf("seed 0x%X exceeds %d bits", c.Seed, c.Width)
		}
	}

	if c.BufSize <= 0 {
		return errors.Errorf("invalid buffer size: %d", c.BufSize)
	}

	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case "plain", "csv", "json", "xml":
	default:
		return errors.Errorf("invalid output format: %q", c.Format)
	}

	return nil
}

// Engine names the algorithm selected by the configuration.
func (c Config) Engine() string {
	if c.Table || c.DumpTable {
		return "lookup"
	}
	return "direct"
}
