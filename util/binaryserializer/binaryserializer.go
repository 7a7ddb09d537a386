package binaryserializer

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// MaxVarBytesLength is the largest byte string VarBytes agrees to read. It
// guards against allocating huge buffers from a corrupted length prefix.
const MaxVarBytesLength = 1 << 20

// ErrVarBytesTooLong is returned by VarBytes when the length prefix exceeds
// MaxVarBytesLength.
var ErrVarBytesTooLong = errors.New("variable length byte string is too long")

// Uint8 reads a single byte from the provided reader and returns it as a uint8.
func Uint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.WithStack(err)
	}
	return buf[0], nil
}

// Uint16 reads two little endian bytes from the provided reader and returns
// the resulting uint16.
func Uint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.WithStack(err)
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// Uint32 reads four little endian bytes from the provided reader and returns
// the resulting uint32.
func Uint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.WithStack(err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// Uint64 reads eight little endian bytes from the provided reader and returns
// the resulting uint64.
func Uint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.WithStack(err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Int64 reads eight little endian bytes holding a two's complement int64.
func Int64(r io.Reader) (int64, error) {
	value, err := Uint64(r)
	return int64(value), err
}

// VarBytes reads a uint64 length prefix followed by that many bytes.
func VarBytes(r io.Reader) ([]byte, error) {
	length, err := Uint64(r)
	if err != nil {
		return nil, err
	}
	if length > MaxVarBytesLength {
		return nil, errors.Wrapf(ErrVarBytesTooLong, "length prefix %d exceeds %d",
			length, MaxVarBytesLength)
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}

// PutUint8 writes the provided uint8 to the given writer.
func PutUint8(w io.Writer, val uint8) error {
	_, err := w.Write([]byte{val})
	return errors.WithStack(err)
}

// PutUint16 writes the little endian encoding of val to the given writer.
func PutUint16(w io.Writer, val uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], val)
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}

// PutUint32 writes the little endian encoding of val to the given writer.
func PutUint32(w io.Writer, val uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], val)
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}

// PutUint64 writes the little endian encoding of val to the given writer.
func PutUint64(w io.Writer, val uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], val)
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}

// PutInt64 writes the two's complement little endian encoding of val.
func PutInt64(w io.Writer, val int64) error {
	return PutUint64(w, uint64(val))
}

// PutVarBytes writes a uint64 length prefix followed by data.
func PutVarBytes(w io.Writer, data []byte) error {
	err := PutUint64(w, uint64(len(data)))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return errors.WithStack(err)
}
