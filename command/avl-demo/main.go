// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "config", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] [--print] [--config=FILE] [key…]", program)
	}

	configurationFileName := ""
	if len(options["config"]) > 0 {
		configurationFileName = options["config"][0]
	}

	demo, err := getConfiguration(configurationFileName)
	if err != nil {
		exitwithstatus.Message("%s: configuration: %q  error: %s", program, configurationFileName, err)
	}

	// keys on the command line replace the inserted list
	if len(arguments) > 0 {
		demo.Insert = make([]int, 0, len(arguments))
		for _, a := range arguments {
			key, err := strconv.Atoi(a)
			if err != nil {
				exitwithstatus.Message("%s: invalid key: %q", program, a)
			}
			demo.Insert = append(demo.Insert, key)
		}
	}

	if len(options["print"]) > 0 {
		demo.PrintTree = true
	}
	if len(options["verbose"]) > 0 {
		demo.Logging.Console = true
		demo.Logging.Levels[logger.DefaultTag] = "debug"
	}

	// start logging
	if err = logger.Initialise(demo.Logging); err != nil {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// set up the fault panic log (now that logging is available)
	if err = startFaultLog(); err != nil {
		exitwithstatus.Message("%s: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %q", configurationFileName)

	// ------------------
	// start of real main
	// ------------------

	if err := runDemo(logger.New("demo"), os.Stdout, demo); err != nil {
		fault.Criticalf("demo failed: %s", err)
		exitwithstatus.Exit(1)
	}
}

// set up the fault panic log, the logger must already be initialised
func startFaultLog() error {
	if err := fault.Initialise(); nil != err {
		return fmt.Errorf("fault setup failed with error: %w", err)
	}
	return nil
}
