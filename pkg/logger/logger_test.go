package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ParsesLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("not-a-level").GetLevel())
}

func TestNewWithOutput_WritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithOutput("info", buf)

	log.WithField("incident_id", "a1").Info("Incident fetched")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Incident fetched", entry["msg"])
	assert.Equal(t, "a1", entry["incident_id"])
	assert.Equal(t, "info", entry["level"])
}
