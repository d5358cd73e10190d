package chdf5

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaultPropertiesMatchesLibrary verifies the default property-list
// identifier against the library's own value.
func TestDefaultPropertiesMatchesLibrary(t *testing.T) {
	require.Equal(t, probeDefaultProperties(), DefaultProperties())

	// Idempotent.
	first := DefaultProperties()
	for i := 0; i < 10; i++ {
		require.Equal(t, first, DefaultProperties())
	}
}
