package ziggurat

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewPrimaryLayer verifies the top-level wrapper writes a valid container.
func TestNewPrimaryLayer(t *testing.T) {
	layer, err := NewPrimaryLayer(3, []int64{0, 3})
	require.NoError(t, err)
	require.NotNil(t, layer)

	var buf bytes.Buffer
	require.NoError(t, layer.Write(&buf))
}

// TestNewPlainStringVariable verifies a variable can be built against a layer's UUID.
func TestNewPlainStringVariable(t *testing.T) {
	layer, err := NewPrimaryLayer(3, []int64{0, 3})
	require.NoError(t, err)

	variable, err := NewPlainStringVariable(layer.UUID, []string{"the", "cat", "sat"})
	require.NoError(t, err)
	require.NotNil(t, variable.BaseUUID1)
	require.Equal(t, layer.UUID, *variable.BaseUUID1)

	var buf bytes.Buffer
	require.NoError(t, variable.Write(&buf))
}
