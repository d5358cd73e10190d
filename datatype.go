package chdf5

/*
#include <hdf5.h>

// The native type identifiers expand to globals that the library fills in
// during initialization. Going through H5OPEN inside the macro makes that
// initialization implicit, so these helpers are valid from the first call.
static hid_t chdf5_t_native_int8(void)   { return H5T_NATIVE_INT8; }
static hid_t chdf5_t_native_int16(void)  { return H5T_NATIVE_INT16; }
static hid_t chdf5_t_native_int32(void)  { return H5T_NATIVE_INT32; }
static hid_t chdf5_t_native_int64(void)  { return H5T_NATIVE_INT64; }
static hid_t chdf5_t_native_uint8(void)  { return H5T_NATIVE_UINT8; }
static hid_t chdf5_t_native_uint16(void) { return H5T_NATIVE_UINT16; }
static hid_t chdf5_t_native_uint32(void) { return H5T_NATIVE_UINT32; }
static hid_t chdf5_t_native_uint64(void) { return H5T_NATIVE_UINT64; }
static hid_t chdf5_t_native_float(void)  { return H5T_NATIVE_FLOAT; }
static hid_t chdf5_t_native_double(void) { return H5T_NATIVE_DOUBLE; }
static hid_t chdf5_t_native_char(void)   { return H5T_NATIVE_CHAR; }
static hid_t chdf5_t_c_s1(void)          { return H5T_C_S1; }
*/
import "C"

// NativeInt8 returns the type identifier for a native 8-bit signed integer.
func NativeInt8() ID {
	return ID(C.chdf5_t_native_int8())
}

// NativeInt16 returns the type identifier for a native 16-bit signed integer.
func NativeInt16() ID {
	return ID(C.chdf5_t_native_int16())
}

// NativeInt32 returns the type identifier for a native 32-bit signed integer.
func NativeInt32() ID {
	return ID(C.chdf5_t_native_int32())
}

// NativeInt64 returns the type identifier for a native 64-bit signed integer.
func NativeInt64() ID {
	return ID(C.chdf5_t_native_int64())
}

// NativeUint8 returns the type identifier for a native 8-bit unsigned integer.
func NativeUint8() ID {
	return ID(C.chdf5_t_native_uint8())
}

// NativeUint16 returns the type identifier for a native 16-bit unsigned integer.
func NativeUint16() ID {
	return ID(C.chdf5_t_native_uint16())
}

// NativeUint32 returns the type identifier for a native 32-bit unsigned integer.
func NativeUint32() ID {
	return ID(C.chdf5_t_native_uint32())
}

// NativeUint64 returns the type identifier for a native 64-bit unsigned integer.
func NativeUint64() ID {
	return ID(C.chdf5_t_native_uint64())
}

// NativeFloat returns the type identifier for a native single-precision
// floating-point value.
func NativeFloat() ID {
	return ID(C.chdf5_t_native_float())
}

// NativeDouble returns the type identifier for a native double-precision
// floating-point value.
func NativeDouble() ID {
	return ID(C.chdf5_t_native_double())
}

// NativeChar returns the type identifier for a native character. Whether
// the type is signed is up to the platform's C compiler.
func NativeChar() ID {
	return ID(C.chdf5_t_native_char())
}

// CStringType returns the type identifier for a C-style fixed-length
// string of one byte, the base type callers copy and resize to build
// fixed-length string types.
func CStringType() ID {
	return ID(C.chdf5_t_c_s1())
}
