// seehuhn.de/go/fontmerge - merge single-script fonts into multi-script families
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Fontmerge generates multi-script fonts from directories of
// single-script donor fonts.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"seehuhn.de/go/fontmerge"
)

func main() {
	configFile := flag.String("config", "", "configuration `file` (JSON)")
	inputDir := flag.String("input", "", "input `directory`, one subdirectory per weight")
	outputDir := flag.String("output", "", "output `directory` for the merged fonts")
	family := flag.String("family", "", "base family `name` for the merged fonts")
	jobs := flag.Int("jobs", 0, "number of `units` to process in parallel")
	logFile := flag.String("log", "", "append log output to `file`")
	dryRun := flag.Bool("n", false, "only show the selected candidates")
	verbose := flag.Bool("v", false, "enable debug output")
	flag.Parse()

	cfg := fontmerge.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = fontmerge.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if *inputDir != "" {
		cfg.InputDir = *inputDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *family != "" {
		cfg.Family = *family
	}
	if *jobs != 0 {
		cfg.Jobs = *jobs
	}
	cfg.DryRun = *dryRun

	log := logrus.New()
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: !isTTY || *logFile != "",
	})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if *logFile != "" {
		fd, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		defer fd.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, fd))
	}
	cfg.Log = log

	if _, err := fontmerge.Run(cfg); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
