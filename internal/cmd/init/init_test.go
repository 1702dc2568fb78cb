package init

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmdInit_Flags(t *testing.T) {
	cmd := NewCmdInit()
	assert.Equal(t, "init", cmd.Use)

	flag := cmd.Flags().Lookup("vault")
	require.NotNil(t, flag)
	assert.Empty(t, flag.DefValue)
}
