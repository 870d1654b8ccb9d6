package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		debugOn bool
		warnOn  bool
	}{
		{name: "quiet", verbose: false, debugOn: false, warnOn: true},
		{name: "verbose", verbose: true, debugOn: true, warnOn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.verbose)
			require.NoError(t, err)
			require.NotNil(t, logger)

			assert.Equal(t, tt.debugOn, logger.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.warnOn, logger.Core().Enabled(zapcore.WarnLevel))
		})
	}
}
