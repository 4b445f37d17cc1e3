// SPDX-License-Identifier: MIT
package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/mstcluster/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, true, "debug")
	require.NoError(t, err)

	log.Debugw("step done", "step", 3)
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "step done", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.EqualValues(t, 3, entry["step"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, false, "warn")
	require.NoError(t, err)

	log.Infow("hidden")
	log.Warnw("shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "WARN")
}

func TestNew_DefaultLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, false, "")
	require.NoError(t, err)

	log.Debug("quiet")
	log.Info("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New(&bytes.Buffer{}, false, "chatty")
	assert.True(t, errors.Is(err, logging.ErrBadLevel))
}
