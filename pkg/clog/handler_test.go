package clog

import (
	"bytes"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/stretchr/testify/require"
)

func TestHandlerSortsFields(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf)
	h.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }

	logger := &log.Logger{Handler: h, Level: log.InfoLevel}
	logger.WithFields(log.Fields{"id": 4, "attack": "chatouille"}).Info("created attack")

	require.Equal(t, " INFO 2024-03-01 10:00:00 created attack            attack=chatouille id=4\n", buf.String())
}

func TestHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := &log.Logger{Handler: NewHandler(&buf), Level: log.WarnLevel}

	logger.Info("hidden")
	require.Empty(t, buf.String())

	logger.Warn("shown")
	require.Contains(t, buf.String(), "WARN")
	require.Contains(t, buf.String(), "shown")
}

func TestSetupRejectsBadLevel(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, Setup(&buf, "loud"))
	require.NoError(t, Setup(&buf, ""))
}
