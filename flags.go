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
	"encoding/json"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bemasher/libcrc/csv"
)

// HexUint is a flag value accepting decimal, octal (0 prefix) or hexadecimal
// (0x prefix) integers, printed as hex.
type HexUint uint64

func (h HexUint) String() string {
	return fmt.Sprintf("0x%X", uint64(h))
}

func (h *HexUint) Set(value string) error {
	n, err := strconv.ParseUint(value, 0, 64)
	if err != nil {
		return err
	}
	*h = HexUint(n)
	return nil
}

// Usage prints a synopsis followed by the flag defaults.
func Usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(fs.Output(), "Usage of %s: [flags] FILE\n", fs.Name())
		fs.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(fs.Output(), "  -%s=%s: %s\n", f.Name, f.Value, f.Usage)
		})
	}
}

// EnvOverride sets each flag in fs from the environment variable formed by
// prefix and the upper case flag name, when that variable is set.
func EnvOverride(fs *flag.FlagSet, prefix string) {
	fs.VisitAll(func(f *flag.Flag) {
		envName := prefix + strings.ToUpper(f.Name)
		flagValue := os.Getenv(envName)
		if flagValue == "" {
			return
		}

		entry := log.WithFields(log.Fields{
			"env":   envName,
			"flag":  f.Name,
			"value": flagValue,
		})
		if err := fs.Set(f.Name, flagValue); err != nil {
			entry.WithError(err).Warn("environment variable failed to override flag")
		} else {
			entry.Debug("environment variable overrides flag")
		}
	})
}

// JSON, XML and CSV all implement this interface so we can simplify
// output formatting.
type Encoder interface {
	Encode(interface{}) error
}

// NewEncoder returns the encoder for the named output format.
func NewEncoder(format string, w io.Writer) Encoder {
	switch format {
	case "csv":
		return csv.NewEncoder(w)
	case "json":
		return json.NewEncoder(w)
	case "xml":
		return XMLEncoder{xml.NewEncoder(w), w}
	}
	return PlainEncoder{w}
}

type PlainEncoder struct {
	w io.Writer
}

func (pe PlainEncoder) Encode(msg interface{}) (err error) {
	_, err = fmt.Fprintln(pe.w, msg)
	return
}

// XMLEncoder terminates each element with a newline so output is one
// record per line.
type XMLEncoder struct {
	enc *xml.Encoder
	w   io.Writer
}

func (xe XMLEncoder) Encode(msg interface{}) error {
	if err := xe.enc.Encode(msg); err != nil {
		return err
	}
	_, err := fmt.Fprintln(xe.w)
	return err
}
