package chdf5

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScalarDoubleRoundTrip drives the wrapped library end to end using
// only values obtained from the accessors: create a temporary file, write
// one scalar double dataset with the double-precision type identifier,
// close, reopen read-only, and confirm the value round-trips. The library
// rejects read-mode bits in its create call, so creation uses the
// truncate flag alone and the read-write flag is exercised on reopen.
func TestScalarDoubleRoundTrip(t *testing.T) {
	const value = 6.62607015e-34
	path := filepath.Join(t.TempDir(), "roundtrip.h5")

	file, err := probeCreateFile(path, FileAccessTruncate())
	require.NoError(t, err)

	require.NoError(t, probeWriteScalarDouble(file, "measurement", value))
	require.NoError(t, probeCloseFile(file))

	// Reopen writable and add a second dataset, proving the read-write
	// flag opens an existing file for modification.
	file, err = probeOpenFile(path, FileAccessReadWrite())
	require.NoError(t, err)
	require.NoError(t, probeWriteScalarDouble(file, "extra", 1.5))
	require.NoError(t, probeCloseFile(file))

	// Reopen read-only and verify both datasets survived.
	file, err = probeOpenFile(path, FileAccessReadOnly())
	require.NoError(t, err)
	defer func() { _ = probeCloseFile(file) }()

	got, err := probeReadScalarDouble(file, "measurement")
	require.NoError(t, err)
	require.Equal(t, value, got)

	extra, err := probeReadScalarDouble(file, "extra")
	require.NoError(t, err)
	require.Equal(t, 1.5, extra)
}

// TestExclusiveCreateRefusesExisting checks the exclusive flag fails the
// create call when the file already exists.
func TestExclusiveCreateRefusesExisting(t *testing.T) {
	probeSilenceErrorStack()
	path := filepath.Join(t.TempDir(), "exists.h5")

	file, err := probeCreateFile(path, FileAccessTruncate())
	require.NoError(t, err)
	require.NoError(t, probeCloseFile(file))

	_, err = probeCreateFile(path, FileAccessExclusive())
	require.Error(t, err)
}

// TestReadOnlyOpenRefusesWrite checks a file opened with the read-only
// flag rejects dataset creation.
func TestReadOnlyOpenRefusesWrite(t *testing.T) {
	probeSilenceErrorStack()
	path := filepath.Join(t.TempDir(), "readonly.h5")

	file, err := probeCreateFile(path, FileAccessTruncate())
	require.NoError(t, err)
	require.NoError(t, probeCloseFile(file))

	file, err = probeOpenFile(path, FileAccessReadOnly())
	require.NoError(t, err)
	defer func() { _ = probeCloseFile(file) }()

	require.Error(t, probeWriteScalarDouble(file, "blocked", 1.0))
}
