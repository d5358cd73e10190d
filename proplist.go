package chdf5

/*
#include <hdf5.h>

// H5P_DEFAULT is a cast-expression macro, not an importable constant.
static hid_t chdf5_p_default(void) { return H5P_DEFAULT; }
*/
import "C"

// DefaultProperties returns the identifier for the default property list,
// passed wherever the library accepts a property list and the defaults
// are wanted.
func DefaultProperties() ID {
	return ID(C.chdf5_p_default())
}
