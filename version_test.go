package chdf5

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLibraryVersion checks the linked library reports a plausible version.
func TestLibraryVersion(t *testing.T) {
	major, minor, release, err := LibraryVersion()
	require.NoError(t, err)
	require.GreaterOrEqual(t, major, uint(1))

	// Stable across calls.
	major2, minor2, release2, err := LibraryVersion()
	require.NoError(t, err)
	require.Equal(t, major, major2)
	require.Equal(t, minor, minor2)
	require.Equal(t, release, release2)
}

// TestVersionString checks the formatted version agrees with the
// component query.
func TestVersionString(t *testing.T) {
	major, minor, release, err := LibraryVersion()
	require.NoError(t, err)

	require.Equal(t, fmt.Sprintf("%d.%d.%d", major, minor, release), VersionString())
}
