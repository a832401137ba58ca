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
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/bemasher/libcrc/crc"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05.000000",
	})
}

var (
	buildTag   = "dev"     // v#.#.#
	buildDate  = "unknown" // date -u '+%Y-%m-%d'
	commitHash = "unknown" // git rev-parse HEAD
)

func main() {
	var cfg Config

	cfg.RegisterFlags(flag.CommandLine)
	flag.Usage = Usage(flag.CommandLine)
	EnvOverride(flag.CommandLine, "LIBCRC_")
	flag.Parse()

	if cfg.Version {
		fmt.Println("Build Tag: ", buildTag)
		fmt.Println("Build Date:", buildDate)
		fmt.Println("Commit:    ", commitHash)
		os.Exit(0)
	}

	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := cfg.Validate(flag.Args()); err != nil {
		flag.Usage()
		log.WithError(err).Fatal("invalid arguments")
	}

	log.WithFields(log.Fields{
		"file":    cfg.Filename,
		"width":   cfg.Width,
		"shift":   cfg.Shift,
		"poly":    FormatRegister(cfg.Poly, cfg.Width),
		"seed":    FormatRegister(cfg.Seed, cfg.Width),
		"engine":  cfg.Engine(),
		"bufsize": cfg.BufSize,
	}).Debug("configuration")

	res, err := Run(cfg)
	if err != nil {
		log.WithField("file", cfg.Filename).WithError(err).Fatal("computing crc")
	}

	if err := NewEncoder(cfg.Format, os.Stdout).Encode(res); err != nil {
		log.WithError(err).Fatal("encoding result")
	}
}

// Run reads the configured file in chunks of cfg.BufSize bytes and returns
// its CRC.
func Run(cfg Config) (Result, error) {
	f, err := os.Open(cfg.Filename)
	if err != nil {
		return Result{}, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	switch cfg.Width {
	case 8:
		return checksum[uint8](f, cfg)
	case 16:
		return checksum[uint16](f, cfg)
	case 32:
		return checksum[uint32](f, cfg)
	case 64:
		return checksum[uint64](f, cfg)
	}

	return Result{}, errors.Errorf("invalid register width: %d", cfg.Width)
}

func checksum[T crc.Register](r io.Reader, cfg Config) (Result, error) {
	res := NewResult(cfg)

	var engine crc.Engine[T]
	if cfg.Engine() == "lookup" {
		l := crc.NewLookup(T(cfg.Poly), cfg.Shift)
		if cfg.DumpTable {
			for _, v := range l.Table() {
				res.Table = append(res.Table, FormatRegister(uint64(v), cfg.Width))
			}
		}
		engine = l
	} else {
		engine = crc.NewDirect(T(cfg.Poly), cfg.Shift)
	}

	// The running crc of each chunk seeds the next.
	digest := crc.NewDigest(engine, T(cfg.Seed))
	buf := make([]byte, cfg.BufSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			digest.Write(buf[:n])
			res.Length += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, errors.Wrap(err, "reading file")
		}
	}

	res.CRC = FormatRegister(uint64(digest.Value()), cfg.Width)

	log.WithFields(log.Fields{
		"bytes": res.Length,
		"crc":   res.CRC,
	}).Debug("checksum complete")

	return res, nil
}
