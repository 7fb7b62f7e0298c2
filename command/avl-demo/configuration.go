// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories are relative to the configuration file,
// or to the current directory if there is none)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avl-demo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// the keys used when neither a configuration nor arguments are given
var defaultInsertKeys = []int{15, 10, 20, 8, 12, 16, 25, 5, 11, 13}

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "info",
	}
)

// the configuration file's levels are merged into the map so each
// configuration needs its own copy
func (m LoglevelMap) copy() map[string]string {
	c := make(map[string]string, len(m))
	for tag, level := range m {
		c[tag] = level
	}
	return c
}

// Configuration - what the demonstration does
type Configuration struct {
	Insert    []int                `gluamapper:"insert" json:"insert"`
	Find      []int                `gluamapper:"find" json:"find"`
	Erase     []int                `gluamapper:"erase" json:"erase"`
	Clear     bool                 `gluamapper:"clear" json:"clear"`
	PrintTree bool                 `gluamapper:"print_tree" json:"print_tree"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

// the canonical scenario
func defaultConfiguration() *Configuration {
	return &Configuration{
		Insert:    append([]int(nil), defaultInsertKeys...),
		Find:      []int{10},
		Erase:     []int{10},
		Clear:     true,
		PrintTree: false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    defaultLogLevels.copy(),
		},
	}
}

// will read decode and verify the configuration
//
// an empty file name gives the default scenario with logging relative
// to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	baseDirectory := ""
	if "" == configurationFileName {
		wd, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		baseDirectory = wd
	} else {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the configuration's directory
		baseDirectory, _ = filepath.Split(fileName)

		// lists from the file replace the defaults, the decoder would
		// otherwise overwrite a default list element by element
		options.Insert = nil
		options.Find = nil
		options.Erase = nil

		if err := configuration.ParseConfigurationFile(fileName, options); err != nil {
			return nil, err
		}

		defaults := defaultConfiguration()
		if nil == options.Insert {
			options.Insert = defaults.Insert
		}
		if nil == options.Find {
			options.Find = defaults.Find
		}
		if nil == options.Erase {
			options.Erase = defaults.Erase
		}
	}

	// the log file must be a simple file name placed in the log directory
	if !util.IsPlainName(options.Logging.File) {
		return nil, fmt.Errorf("log file: %q is not a plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(baseDirectory, options.Logging.Directory)
	if err := util.EnsureDirectory(options.Logging.Directory); nil != err {
		return nil, err
	}

	// done
	return options, nil
}
