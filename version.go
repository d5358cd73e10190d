package chdf5

/*
#include <hdf5.h>
*/
import "C"

import (
	"fmt"

	"github.com/scigolib/chdf5/internal/utils"
)

// LibraryVersion returns the version of the HDF5 library linked into the
// process.
func LibraryVersion() (major, minor, release uint, err error) {
	var maj, min, rel C.unsigned
	status := C.H5get_libversion(&maj, &min, &rel)
	if err := utils.StatusError("library version query failed", int64(status)); err != nil {
		return 0, 0, 0, err
	}
	return uint(maj), uint(min), uint(rel), nil
}

// VersionString returns the linked library version as "major.minor.release",
// or "unknown" if the library refuses the query.
func VersionString() string {
	major, minor, release, err := LibraryVersion()
	if err != nil {
		return "unknown"
	}
	return fmt.Sprintf("%d.%d.%d", major, minor, release)
}
