// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the Lua configuration file
package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/critterd/publish"
)

// default file name when only a directory is supplied
const defaultFileName = "critterd.conf"

// Configuration - the configuration of the whole daemon
type Configuration struct {
	DataDirectory string                `gluamapper:"data_directory" json:"data_directory"`
	Database      string                `gluamapper:"database" json:"database"`
	RandomSeed    string                `gluamapper:"random_seed" json:"random_seed"`
	Publishing    publish.Configuration `gluamapper:"publishing" json:"publishing"`
	Logging       LoggerSection         `gluamapper:"logging" json:"logging"`
}

// LoggerSection - logging setup
type LoggerSection struct {
	Directory string            `gluamapper:"directory" json:"directory"`
	File      string            `gluamapper:"file" json:"file"`
	Size      int               `gluamapper:"size" json:"size"`
	Count     int               `gluamapper:"count" json:"count"`
	Console   bool              `gluamapper:"console" json:"console"`
	Levels    map[string]string `gluamapper:"levels" json:"levels"`
}

// GetConfiguration - read and parse a configuration file
//
// all relative file paths in the configuration are resolved against
// the directory holding the configuration file
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// if the file name is a directory, use the default name inside it
	if info, err := os.Stat(configurationFileName); nil == err && info.IsDir() {
		configurationFileName = filepath.Join(configurationFileName, defaultFileName)
	}

	options := &Configuration{
		DataDirectory: ".",
		Database:      "critterd",
		Logging: LoggerSection{
			Directory: "log",
			File:      "critterd.log",
			Size:      1048576,
			Count:     10,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "error",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// resolve relative paths
	baseDirectory := filepath.Dir(configurationFileName)
	options.DataDirectory = ensureAbsolute(baseDirectory, options.DataDirectory)
	options.Database = ensureAbsolute(options.DataDirectory, options.Database)
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)

	return options, nil
}

// DatabasePath - prefix handed to the storage layer
func (c *Configuration) DatabasePath() string {
	return c.Database
}

func ensureAbsolute(directory string, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Clean(filepath.Join(directory, filePath))
}
