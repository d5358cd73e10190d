package chdf5

/*
#include <hdf5.h>

// Recent library versions route the file access flags through version and
// initialization guards, so cgo cannot import them as constants.
static unsigned chdf5_f_acc_rdonly(void) { return H5F_ACC_RDONLY; }
static unsigned chdf5_f_acc_rdwr(void)   { return H5F_ACC_RDWR; }
static unsigned chdf5_f_acc_trunc(void)  { return H5F_ACC_TRUNC; }
static unsigned chdf5_f_acc_excl(void)   { return H5F_ACC_EXCL; }
*/
import "C"

// FileAccessReadOnly returns the flag for opening an existing file
// without write access.
func FileAccessReadOnly() Flags {
	return Flags(C.chdf5_f_acc_rdonly())
}

// FileAccessReadWrite returns the flag for opening an existing file with
// read and write access.
func FileAccessReadWrite() Flags {
	return Flags(C.chdf5_f_acc_rdwr())
}

// FileAccessTruncate returns the flag for creating a file, overwriting
// any existing file of the same name.
func FileAccessTruncate() Flags {
	return Flags(C.chdf5_f_acc_trunc())
}

// FileAccessExclusive returns the flag for creating a file, failing if a
// file of the same name already exists.
func FileAccessExclusive() Flags {
	return Flags(C.chdf5_f_acc_excl())
}
