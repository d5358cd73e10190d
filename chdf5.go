// Package chdf5 exposes HDF5 library constants through plain function calls.
//
// The HDF5 C library defines most of its public constants as preprocessor
// macros, and many of them are not plain integers: the native datatype
// identifiers expand to globals initialized on first library access, and
// identifiers such as the default property list carry cast expressions.
// None of these can be imported as cgo constants, so this package relays
// each value through a small C helper compiled into the package. Callers
// always receive the exact value used by the library linked at build time.
//
// Every accessor is pure: no input, no side effects, no failure path, and
// an identical result on every call within a process. Accessors are safe
// to call from any goroutine without synchronization.
//
// Building requires the HDF5 development headers and library. For
// installations outside the default search paths, point CGO_CFLAGS and
// CGO_LDFLAGS at the include and lib directories.
package chdf5

/*
#cgo LDFLAGS: -lhdf5
#include <hdf5.h>
*/
import "C"

// ID is an opaque identifier handle, sized to the library's hid_t. The
// library alone gives these values meaning; this package never creates,
// mutates, or releases them, it only relays constant handles.
type ID int64

// Flags is the unsigned bitmask accepted by the library's file open and
// create calls. Values combine with bitwise OR.
type Flags uint

// SpaceClass tags the shape category of a dataspace: a single scalar
// value, a simple N-dimensional array, or a null region with no data.
type SpaceClass int
