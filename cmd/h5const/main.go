// Package main provides a command-line utility that prints every HDF5
// constant the chdf5 package relays, together with the version of the
// library linked into the binary. It is handy for checking which library
// installation a build actually picked up.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/scigolib/chdf5"
)

func main() {
	decimal := flag.Bool("decimal", false, "Print flag and handle values in decimal instead of hex")
	flag.Parse()

	format := func(v int64) string {
		if *decimal {
			return fmt.Sprintf("%d", v)
		}
		return fmt.Sprintf("0x%x", v)
	}

	major, minor, release, err := chdf5.LibraryVersion()
	if err != nil {
		log.Fatalf("Failed to query library version: %v", err)
	}
	fmt.Printf("HDF5 library version: %d.%d.%d\n", major, minor, release)

	fmt.Println("\nFile access flags:")
	flags := []struct {
		name  string
		value chdf5.Flags
	}{
		{"read-only", chdf5.FileAccessReadOnly()},
		{"read-write", chdf5.FileAccessReadWrite()},
		{"truncate", chdf5.FileAccessTruncate()},
		{"exclusive", chdf5.FileAccessExclusive()},
	}
	for _, f := range flags {
		fmt.Printf("  %-12s %s\n", f.name, format(int64(f.value)))
	}

	fmt.Println("\nDataspace classes:")
	classes := []chdf5.SpaceClass{
		chdf5.SpaceScalar(),
		chdf5.SpaceSimple(),
		chdf5.SpaceNull(),
	}
	for _, c := range classes {
		fmt.Printf("  %-12s %d\n", c.String(), int(c))
	}

	fmt.Println("\nIdentifier handles:")
	handles := []struct {
		name  string
		value chdf5.ID
	}{
		{"default property list", chdf5.DefaultProperties()},
		{"select all", chdf5.SelectAll()},
	}
	for _, h := range handles {
		fmt.Printf("  %-22s %s\n", h.name, format(int64(h.value)))
	}

	fmt.Println("\nNative type identifiers:")
	types := []struct {
		name  string
		value chdf5.ID
	}{
		{"int8", chdf5.NativeInt8()},
		{"int16", chdf5.NativeInt16()},
		{"int32", chdf5.NativeInt32()},
		{"int64", chdf5.NativeInt64()},
		{"uint8", chdf5.NativeUint8()},
		{"uint16", chdf5.NativeUint16()},
		{"uint32", chdf5.NativeUint32()},
		{"uint64", chdf5.NativeUint64()},
		{"float", chdf5.NativeFloat()},
		{"double", chdf5.NativeDouble()},
		{"char", chdf5.NativeChar()},
		{"C string", chdf5.CStringType()},
	}
	for _, tt := range types {
		fmt.Printf("  %-12s %s\n", tt.name, format(int64(tt.value)))
	}
}
