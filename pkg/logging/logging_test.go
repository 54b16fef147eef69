package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/inputbox/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv(paths.EnvStateDir, "")
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "inputbox", "inputbox.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created at %s", logPath)
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("state dir override wins", func(t *testing.T) {
		t.Setenv(paths.EnvStateDir, "/custom/inputbox")
		t.Setenv("XDG_STATE_HOME", "/ignored")
		assert.Equal(t, "/custom/inputbox/inputbox.log", getLogFilePath())
	})

	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv(paths.EnvStateDir, "")
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		assert.Equal(t, "/custom/state/inputbox/inputbox.log", getLogFilePath())
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    zerolog.Level
		wantErr bool
	}{
		{"DEBUG", zerolog.DebugLevel, false},
		{"info", zerolog.InfoLevel, false},
		{"WARNING", zerolog.WarnLevel, false},
		{"warn", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"CRITICAL", zerolog.FatalLevel, false},
		{"loud", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyConfiguredLevel(t *testing.T) {
	original := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(original)

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	require.NoError(t, ApplyConfiguredLevel(0, "debug"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	// -v on the command line wins over the configured level
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	require.NoError(t, ApplyConfiguredLevel(1, "error"))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	assert.Error(t, ApplyConfiguredLevel(0, "loud"))
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	defer func() { log.Logger = original }()
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("linking.creator")
	logger.Warn().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"linking.creator"`)
}

func TestSetupLogFile_Rotates(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "state", "inputbox.log")

	w, err := setupLogFile(logPath)
	require.NoError(t, err)

	rotating, ok := w.(*lumberjack.Logger)
	require.True(t, ok, "log file writer should rotate")
	assert.Equal(t, logPath, rotating.Filename)
	assert.Equal(t, 10, rotating.MaxSize)
	assert.Equal(t, 5, rotating.MaxBackups)

	_, err = rotating.Write([]byte("line\n"))
	require.NoError(t, err)
	require.NoError(t, rotating.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))
}

func TestSetupLogFile_UnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := setupLogFile(filepath.Join(blocker, "inputbox.log"))
	assert.Error(t, err)
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	defer func() { log.Logger = original }()
	log.Logger = zerolog.New(&buf)

	logger := WithFields(map[string]interface{}{"link": "/tmp/wl/a", "count": 2})
	logger.Warn().Msg("with fields")

	assert.Contains(t, buf.String(), `"link":"/tmp/wl/a"`)
	assert.Contains(t, buf.String(), `"count":2`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	original := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(original)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	done := LogOperationStart(logger, "try-link")
	done()

	assert.Contains(t, buf.String(), "Operation started")
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), "try-link")
}

func TestVerbosityLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, VerbosityLevel(-1))
	assert.Equal(t, zerolog.WarnLevel, VerbosityLevel(0))
	assert.Equal(t, zerolog.InfoLevel, VerbosityLevel(1))
	assert.Equal(t, zerolog.DebugLevel, VerbosityLevel(2))
	assert.Equal(t, zerolog.TraceLevel, VerbosityLevel(3))
	assert.Equal(t, zerolog.TraceLevel, VerbosityLevel(10))
}
