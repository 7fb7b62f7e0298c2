// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/log/demo", util.EnsureAbsolute("/var", "log/demo"))
	assert.Equal(t, "/tmp/demo", util.EnsureAbsolute("/var", "/tmp/demo"))
	assert.Equal(t, "/var/demo", util.EnsureAbsolute("/var/log", "../demo"))
}

func TestEnsureDirectoryAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	assert.False(t, util.EnsureFileExists(dir), "directory exists before creation")
	require.NoError(t, util.EnsureDirectory(dir))
	require.NoError(t, util.EnsureDirectory(dir), "second creation")

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.True(t, util.EnsureFileExists(dir))
}

func TestIsPlainName(t *testing.T) {
	assert.True(t, util.IsPlainName("demo.log"))
	assert.False(t, util.IsPlainName("log/demo.log"))
	assert.False(t, util.IsPlainName("/demo.log"))
}
