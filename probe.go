package chdf5

// Test support. The package tests cannot use cgo (the cgo tool does not
// process _test.go files), so the helpers below relay raw library values
// and drive the minimal create/write/read cycle the tests need. Nothing
// in this file is public API.

/*
#include <stdlib.h>
#include <hdf5.h>

// Independent expansions of the guarded macros, so tests compare the
// accessors against the library's own values rather than literals.
static unsigned chdf5_probe_f_acc_rdonly(void) { return H5F_ACC_RDONLY; }
static unsigned chdf5_probe_f_acc_rdwr(void)   { return H5F_ACC_RDWR; }
static unsigned chdf5_probe_f_acc_trunc(void)  { return H5F_ACC_TRUNC; }
static unsigned chdf5_probe_f_acc_excl(void)   { return H5F_ACC_EXCL; }
static hid_t    chdf5_probe_p_default(void)    { return H5P_DEFAULT; }
static hid_t    chdf5_probe_s_all(void)        { return H5S_ALL; }

// H5E_DEFAULT is a cast-expression macro as well.
static herr_t chdf5_probe_silence_errors(void) {
	return H5Eset_auto2(H5E_DEFAULT, NULL, NULL);
}
*/
import "C"

import (
	"unsafe"

	"github.com/scigolib/chdf5/internal/utils"
)

// Raw macro values for comparison against the accessors.

func probeFileAccessFlags() (rdonly, rdwr, trunc, excl Flags) {
	return Flags(C.chdf5_probe_f_acc_rdonly()),
		Flags(C.chdf5_probe_f_acc_rdwr()),
		Flags(C.chdf5_probe_f_acc_trunc()),
		Flags(C.chdf5_probe_f_acc_excl())
}

func probeDefaultProperties() ID { return ID(C.chdf5_probe_p_default()) }
func probeSelectAll() ID         { return ID(C.chdf5_probe_s_all()) }

// Dataspace class enum values. Enum constants import cleanly, unlike the
// guarded macros above.

func probeSpaceScalar() SpaceClass { return SpaceClass(C.H5S_SCALAR) }
func probeSpaceSimple() SpaceClass { return SpaceClass(C.H5S_SIMPLE) }
func probeSpaceNull() SpaceClass   { return SpaceClass(C.H5S_NULL) }

// Datatype class and sign enum values.

func probeClassInteger() int { return int(C.H5T_INTEGER) }
func probeClassFloat() int   { return int(C.H5T_FLOAT) }
func probeClassString() int  { return int(C.H5T_STRING) }
func probeSignNone() int     { return int(C.H5T_SGN_NONE) }
func probeSignTwo() int      { return int(C.H5T_SGN_2) }

// Live-library introspection of a type identifier.

func probeTypeSize(id ID) uint {
	return uint(C.H5Tget_size(C.hid_t(id)))
}

func probeTypeClass(id ID) int {
	return int(C.H5Tget_class(C.hid_t(id)))
}

func probeTypeSign(id ID) int {
	return int(C.H5Tget_sign(C.hid_t(id)))
}

// probeSilenceErrorStack turns off the library's automatic error printing
// for the whole process. Tests that provoke failures call this so expected
// errors do not spray the C error stack over the test output.
func probeSilenceErrorStack() {
	_ = C.chdf5_probe_silence_errors()
}

// Minimal file and dataset calls for the round-trip test. The shim's
// constants drive every one of them; the calls themselves belong to the
// wrapped library.

func probeCreateFile(path string, flags Flags) (ID, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	fid := C.H5Fcreate(cpath, C.unsigned(flags),
		C.hid_t(DefaultProperties()), C.hid_t(DefaultProperties()))
	if err := utils.StatusError("file create failed", int64(fid)); err != nil {
		return 0, utils.WrapError(path, err)
	}
	return ID(fid), nil
}

func probeOpenFile(path string, flags Flags) (ID, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	fid := C.H5Fopen(cpath, C.unsigned(flags), C.hid_t(DefaultProperties()))
	if err := utils.StatusError("file open failed", int64(fid)); err != nil {
		return 0, utils.WrapError(path, err)
	}
	return ID(fid), nil
}

func probeCloseFile(file ID) error {
	status := C.H5Fclose(C.hid_t(file))
	return utils.StatusError("file close failed", int64(status))
}

func probeWriteScalarDouble(file ID, name string, value float64) error {
	sid := C.H5Screate(C.H5S_class_t(SpaceScalar()))
	if err := utils.StatusError("dataspace create failed", int64(sid)); err != nil {
		return err
	}
	defer C.H5Sclose(sid)

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	did := C.H5Dcreate2(C.hid_t(file), cname, C.hid_t(NativeDouble()), sid,
		C.hid_t(DefaultProperties()), C.hid_t(DefaultProperties()),
		C.hid_t(DefaultProperties()))
	if err := utils.StatusError("dataset create failed", int64(did)); err != nil {
		return err
	}
	defer C.H5Dclose(did)

	v := C.double(value)
	status := C.H5Dwrite(did, C.hid_t(NativeDouble()),
		C.hid_t(SelectAll()), C.hid_t(SelectAll()),
		C.hid_t(DefaultProperties()), unsafe.Pointer(&v))
	return utils.StatusError("dataset write failed", int64(status))
}

func probeReadScalarDouble(file ID, name string) (float64, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	did := C.H5Dopen2(C.hid_t(file), cname, C.hid_t(DefaultProperties()))
	if err := utils.StatusError("dataset open failed", int64(did)); err != nil {
		return 0, err
	}
	defer C.H5Dclose(did)

	var v C.double
	status := C.H5Dread(did, C.hid_t(NativeDouble()),
		C.hid_t(SelectAll()), C.hid_t(SelectAll()),
		C.hid_t(DefaultProperties()), unsafe.Pointer(&v))
	if err := utils.StatusError("dataset read failed", int64(status)); err != nil {
		return 0, err
	}
	return float64(v), nil
}
