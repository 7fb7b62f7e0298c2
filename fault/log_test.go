// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func TestPanicChannel(t *testing.T) {
	require.NoError(t, fault.Initialise())
	defer fault.Finalise()

	assert.Equal(t, fault.ErrAlreadyInitialised, fault.Initialise())

	fault.Critical("critical message")
	fault.Criticalf("critical: %d", 1)
	fault.PanicIfError("no error", nil)

	assert.PanicsWithValue(t, "check failed with error: record one", func() {
		fault.PanicIfError("check", ErrRecordOne)
	})
	assert.PanicsWithValue(t, "abort, see last messages in log file", func() {
		fault.Panicf("stop: %d", 2)
	})
}

func TestFinaliseAllowsRestart(t *testing.T) {
	require.NoError(t, fault.Initialise())
	fault.Finalise()
	require.NoError(t, fault.Initialise())
	fault.Finalise()

	// without a channel messages go to standard output
	fault.Criticalf("after finalise: %d", 3)
}
