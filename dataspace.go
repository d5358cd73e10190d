package chdf5

/*
#include <hdf5.h>

static H5S_class_t chdf5_s_scalar(void) { return H5S_SCALAR; }
static H5S_class_t chdf5_s_simple(void) { return H5S_SIMPLE; }
static H5S_class_t chdf5_s_null(void)   { return H5S_NULL; }

// H5S_ALL is a cast-expression macro, not an importable constant.
static hid_t chdf5_s_all(void) { return H5S_ALL; }
*/
import "C"

// SpaceScalar returns the dataspace class tag for a scalar (single value)
// dataspace.
func SpaceScalar() SpaceClass {
	return SpaceClass(C.chdf5_s_scalar())
}

// SpaceSimple returns the dataspace class tag for a simple N-dimensional
// array dataspace.
func SpaceSimple() SpaceClass {
	return SpaceClass(C.chdf5_s_simple())
}

// SpaceNull returns the dataspace class tag for a null dataspace, which
// holds no data elements.
func SpaceNull() SpaceClass {
	return SpaceClass(C.chdf5_s_null())
}

// SelectAll returns the dataspace selection marker meaning the entire
// dataspace, passed where the library expects a selection identifier.
func SelectAll() ID {
	return ID(C.chdf5_s_all())
}

// String returns a human-readable dataspace class name.
func (c SpaceClass) String() string {
	switch c {
	case SpaceScalar():
		return "scalar"
	case SpaceSimple():
		return "simple"
	case SpaceNull():
		return "null"
	default:
		return "unknown"
	}
}
