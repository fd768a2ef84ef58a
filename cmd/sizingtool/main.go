// cmd/sizingtool/main.go
// Copyright(c) 2024-2025 DBF2025-SizingTool contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// Developer CLI for the sizing pipeline: loads an aircraft design file,
// validates it, and prints its canonical fingerprint. The analysis engine
// itself is driven elsewhere; this tool only exercises the configuration
// and cache surface.

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/airframe"
	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/config"
	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/log"
	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/results"

	"github.com/goforj/godump"
)

var (
	logLevel     = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir       = flag.String("logdir", "", "log file directory")
	aircraftFile = flag.String("aircraft", "", "filename of JSON file with an aircraft design")
	presetsFile  = flag.String("presets", "", "filename of JSON file with preset value overrides")
	cacheDir     = flag.String("cachedir", "", "analysis results cache directory")
	cullCacheMB  = flag.Int64("cullcache", 0, "cull the results cache down to the given size in MB and exit")
	checkOnly    = flag.Bool("check", false, "validate the design without printing a fingerprint")
)

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)

	if *cullCacheMB > 0 {
		if *cacheDir == "" {
			fmt.Fprintln(os.Stderr, "-cullcache requires -cachedir")
			os.Exit(1)
		}
		cache := results.New(64, 4*time.Hour, *cacheDir, lg)
		if err := cache.Cull(*cullCacheMB << 20); err != nil {
			lg.Errorf("%s: %v", *cacheDir, err)
			os.Exit(1)
		}
		return
	}

	if *aircraftFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	presets := config.DefaultPresets()
	if *presetsFile != "" {
		var err error
		presets, err = config.LoadPresets(*presetsFile, lg)
		if err != nil {
			lg.Errorf("%s: %v", *presetsFile, err)
			os.Exit(1)
		}
	}
	lg.Debug("presets", "dump", godump.DumpStr(presets))

	ac, err := config.LoadAircraft(*aircraftFile, lg)
	if err != nil {
		lg.Errorf("%s: %v", *aircraftFile, err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", *aircraftFile, err)
		os.Exit(1)
	}
	lg.Debug("aircraft", "dump", godump.DumpStr(ac))

	if *checkOnly {
		fmt.Printf("%s: ok (%d flap segments)\n", *aircraftFile, ac.NumFlapSegments())
		return
	}

	fp, err := ac.Fingerprint()
	if err != nil {
		// Validation passed at load so only a degenerate design gets here.
		if errors.Is(err, airframe.ErrInvalidConfiguration) || errors.Is(err, airframe.ErrLengthMismatch) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", *aircraftFile, err)
			os.Exit(1)
		}
		lg.Errorf("%s: %v", *aircraftFile, err)
		os.Exit(1)
	}

	fmt.Printf("%016x\n", fp)
}
