package optim

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Serialized optimizer state is a length-prefixed type tag followed by a
// fixed-order dump of float64 scalar fields, little-endian. Field order is
// part of each concrete optimizer's contract and must stay stable across
// versions for backward-compatible reads.

// maxTypeTagLen bounds the tag read so a corrupted length prefix cannot
// trigger a huge allocation.
const maxTypeTagLen = 64

// writeTypeTag writes the optimizer type name.
func writeTypeTag(w io.Writer, typ string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(typ))); err != nil {
		return fmt.Errorf("failed to write type tag length: %w", err)
	}
	if _, err := io.WriteString(w, typ); err != nil {
		return fmt.Errorf("failed to write type tag: %w", err)
	}
	return nil
}

// readTypeTag reads the type name and verifies it matches the receiver's
// type. A truncated or oversized tag is state corruption; a well-formed tag
// for a different type is a mismatch.
func readTypeTag(r io.Reader, want string) error {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return fmt.Errorf("%w: reading type tag length: %v", ErrStateCorrupted, err)
	}
	if n == 0 || n > maxTypeTagLen {
		return fmt.Errorf("%w: implausible type tag length %d", ErrStateCorrupted, n)
	}
	tag := make([]byte, n)
	if _, err := io.ReadFull(r, tag); err != nil {
		return fmt.Errorf("%w: reading type tag: %v", ErrStateCorrupted, err)
	}
	if string(tag) != want {
		return fmt.Errorf("%w: stream holds %q, optimizer is %q", ErrStateMismatch, tag, want)
	}
	return nil
}

// writeScalars writes scalar fields in the given fixed order.
func writeScalars(w io.Writer, vals ...float64) error {
	for i, v := range vals {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("failed to write scalar field %d: %w", i, err)
		}
	}
	return nil
}

// readScalars reads scalar fields in the same fixed order writeScalars
// produced them.
func readScalars(r io.Reader, dst ...*float64) error {
	for i, d := range dst {
		if err := binary.Read(r, binary.LittleEndian, d); err != nil {
			return fmt.Errorf("%w: reading scalar field %d: %v", ErrStateCorrupted, i, err)
		}
	}
	return nil
}
