// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/critterd/configuration"
)

const configurationText = `
local M = {}

M.data_directory = "data"
M.database = "critters"
M.random_seed = "0123456789abcdef"

M.publishing = {
    broadcast = {
        "tcp://127.0.0.1:7654",
    },
}

M.logging = {
    directory = "log",
    file = "critterd.log",
    size = 1048576,
    count = 20,
    console = false,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func TestGetConfiguration(t *testing.T) {
	directory, err := ioutil.TempDir("", "configuration-test")
	assert.Nil(t, err, "temp dir error")
	defer os.RemoveAll(directory)

	fileName := filepath.Join(directory, "critterd.conf")
	err = ioutil.WriteFile(fileName, []byte(configurationText), 0600)
	assert.Nil(t, err, "write error")

	options, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "0123456789abcdef", options.RandomSeed, "wrong seed")
	assert.Equal(t, 20, options.Logging.Count, "wrong log count")
	assert.Equal(t, []string{"tcp://127.0.0.1:7654"}, options.Publishing.Broadcast, "wrong broadcast")

	// relative paths resolve under the configuration directory
	assert.Equal(t, filepath.Join(directory, "data"), options.DataDirectory, "wrong data directory")
	assert.Equal(t, filepath.Join(directory, "data", "critters"), options.Database, "wrong database")
	assert.Equal(t, filepath.Join(directory, "data", "log"), options.Logging.Directory, "wrong log directory")
}

func TestGetConfigurationMissingFile(t *testing.T) {
	_, err := configuration.GetConfiguration("/nonexistent/critterd.conf")
	assert.NotNil(t, err, "missing file was accepted")
}
