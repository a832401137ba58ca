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
	"bytes"
	"encoding/json"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func newConfig(t *testing.T, args ...string) (cfg Config, err error) {
	t.Helper()

	fs := flag.NewFlagSet("libcrc", flag.ContinueOnError)
	fs.SetOutput(ioutil.Discard)
	cfg.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate(fs.Args())
}

func checkFile(t *testing.T) string {
	t.Helper()

	filename := filepath.Join(t.TempDir(), "check.txt")
	if err := ioutil.WriteFile(filename, []byte("123456789"), 0644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		args  []string
		valid bool
	}{
		{[]string{"file"}, true},
		{[]string{}, false},
		{[]string{"-width=12", "file"}, false},
		{[]string{"-width=8", "file"}, false},
		{[]string{"-width=8", "-poly=0x07", "file"}, true},
		{[]string{"-width=8", "-poly=7", "-seed=0x100", "file"}, false},
		{[]string{"-width=64", "-poly=0x42F0E1EBA9EA3693", "-seed=0xFFFFFFFFFFFFFFFF", "file"}, true},
		{[]string{"-shift=up", "file"}, false},
		{[]string{"-shift=LEFT", "file"}, true},
		{[]string{"-bufsize=0", "file"}, false},
		{[]string{"-format=gob", "file"}, false},
		{[]string{"-format=JSON", "file"}, true},
		{[]string{"-poly=xyz", "file"}, false},
	} {
		_, err := newConfig(t, tc.args...)
		if (err == nil) != tc.valid {
			t.Fatalf("%q: expected valid %v got %+v\n", tc.args, tc.valid, err)
		}
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("LIBCRC_WIDTH", "32")
	t.Setenv("LIBCRC_POLY", "0x04C11DB7")
	t.Setenv("LIBCRC_SHIFT", "left")

	var cfg Config
	fs := flag.NewFlagSet("libcrc", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	EnvOverride(fs, "LIBCRC_")

	if err := fs.Parse([]string{"-shift=right", "file"}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(fs.Args()); err != nil {
		t.Fatal(err)
	}

	if cfg.Width != 32 || cfg.Poly != 0x04C11DB7 {
		t.Fatalf("environment not applied: %+v\n", cfg)
	}
	if cfg.Shift.String() != "right" {
		t.Fatalf("command line should take precedence: %s\n", cfg.Shift)
	}
}

func TestRun(t *testing.T) {
	filename := checkFile(t)

	for _, tc := range []struct {
		name string
		args []string
		crc  string
	}{
		{"XMODEM", []string{"-shift=left"}, "31C3"},
		{"KERMIT", []string{"-shift=right"}, "2189"},
		{"CRC32", []string{"-width=32", "-poly=0x04C11DB7", "-seed=0xFFFFFFFF"}, "340BC6D9"},
		{"SMBUS", []string{"-width=8", "-poly=0x07", "-shift=left"}, "F4"},
		{"ECMA182", []string{"-width=64", "-poly=0x42F0E1EBA9EA3693", "-shift=left"}, "6C40DF5F0B497347"},
	} {
		for _, engine := range []string{"-table=false", "-table=true"} {
			for _, bufSize := range []string{"-bufsize=1", "-bufsize=4", "-bufsize=4096"} {
				args := append(append([]string{engine, bufSize}, tc.args...), filename)

				cfg, err := newConfig(t, args...)
				if err != nil {
					t.Fatal(err)
				}

				res, err := Run(cfg)
				if err != nil {
					t.Fatal(err)
				}

				if res.CRC != tc.crc {
					t.Fatalf("%s %q: expected %s got %s\n", tc.name, args, tc.crc, res.CRC)
				}
				if res.Length != 9 {
					t.Fatalf("%s: expected 9 bytes got %d\n", tc.name, res.Length)
				}
			}
		}
	}
}

func TestRunMissingFile(t *testing.T) {
	cfg, err := newConfig(t, filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = Run(cfg)
	if err == nil {
		t.Fatal("expected error opening missing file")
	}
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("unexpected error: %+v\n", err)
	}
}

func TestDumpTable(t *testing.T) {
	cfg, err := newConfig(t, "-dumptable", "-shift=left", checkFile(t))
	if err != nil {
		t.Fatal(err)
	}

	res, err := Run(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if res.Engine != "lookup" {
		t.Fatalf("expected lookup engine got %s\n", res.Engine)
	}
	if len(res.Table) != 256 {
		t.Fatalf("expected 256 entries got %d\n", len(res.Table))
	}

	want := []string{"0000", "1021", "2042", "3063"}
	if diff := cmp.Diff(want, res.Table[:4]); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(res.String(), "\nF8: ") {
		t.Fatalf("plain output missing last table row:\n%s\n", res)
	}
}

func TestEncoders(t *testing.T) {
	cfg, err := newConfig(t, "-shift=left", checkFile(t))
	if err != nil {
		t.Fatal(err)
	}

	res, err := Run(cfg)
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := NewEncoder("plain", buf).Encode(res); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "CRC       : 31C3\n") {
		t.Fatalf("unexpected plain output:\n%s\n", buf)
	}

	buf.Reset()
	if err := NewEncoder("csv", buf).Encode(res); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || lines[0] != "File,Engine,Width,Shift,Length,Poly,Seed,CRC" {
		t.Fatalf("unexpected csv output:\n%s\n", buf)
	}
	if !strings.HasSuffix(lines[1], ",direct,16,left,9,1021,0000,31C3") {
		t.Fatalf("unexpected csv record: %s\n", lines[1])
	}

	buf.Reset()
	if err := NewEncoder("json", buf).Encode(res); err != nil {
		t.Fatal(err)
	}
	var decoded Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(res, decoded); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := NewEncoder("xml", buf).Encode(res); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "<crc ") || !strings.Contains(buf.String(), "<CRC>31C3</CRC>") {
		t.Fatalf("unexpected xml output:\n%s\n", buf)
	}
}

func TestHexUint(t *testing.T) {
	var h HexUint

	for _, tc := range []struct {
		in   string
		want uint64
	}{
		{"0x1021", 0x1021},
		{"4129", 0x1021},
		{"0X04c11db7", 0x04C11DB7},
		{"0xFFFFFFFFFFFFFFFF", ^uint64(0)},
	} {
		if err := h.Set(tc.in); err != nil {
			t.Fatal(err)
		}
		if uint64(h) != tc.want {
			t.Fatalf("%q: expected 0x%X got %s\n", tc.in, tc.want, h)
		}
	}

	if h.String() != "0xFFFFFFFFFFFFFFFF" {
		t.Fatalf("unexpected string: %s\n", h)
	}
	if err := h.Set("-1"); err == nil {
		t.Fatal("expected error for negative value")
	}
}
