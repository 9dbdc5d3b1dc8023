package audioctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cc := NewConfig(testLogger())

	require.NoError(t, cc.Load())

	assert.Equal(t, FormatHuman, cc.OutputFormat)
	assert.True(t, cc.SyncSystemSounds)
	assert.False(t, cc.Notifications)
}
