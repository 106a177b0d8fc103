package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name  string
		json  bool
		debug bool
		want  zapcore.Level
	}{
		{"console default", false, false, zapcore.WarnLevel},
		{"console debug", false, true, zapcore.DebugLevel},
		{"json default", true, false, zapcore.WarnLevel},
		{"json debug", true, true, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.json, tt.debug)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.want))
			assert.False(t, log.Core().Enabled(tt.want-1))
		})
	}
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "", TruncateForLog("abc", 0))
	assert.Equal(t, "abc", TruncateForLog("abc", 3))
	assert.Equal(t, "ab...", TruncateForLog("abc", 2))
	assert.Equal(t, "ré...", TruncateForLog("résumé", 2))
}
