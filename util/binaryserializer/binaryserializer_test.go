package binaryserializer

import (
	"bytes"
	"io"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func TestRoundTripElements(t *testing.T) {
	var buf bytes.Buffer
	if err := PutUint8(&buf, 0xab); err != nil {
		t.Fatalf("PutUint8: %+v", err)
	}
	if err := PutUint16(&buf, 0x0102); err != nil {
		t.Fatalf("PutUint16: %+v", err)
	}
	if err := PutUint32(&buf, 0x01020304); err != nil {
		t.Fatalf("PutUint32: %+v", err)
	}
	if err := PutInt64(&buf, -5); err != nil {
		t.Fatalf("PutInt64: %+v", err)
	}
	if err := PutVarBytes(&buf, []byte("kaspa")); err != nil {
		t.Fatalf("PutVarBytes: %+v", err)
	}

	expected := []byte{
		0xab,
		0x02, 0x01,
		0x04, 0x03, 0x02, 0x01,
		0xfb, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0x05, 0, 0, 0, 0, 0, 0, 0, 'k', 'a', 's', 'p', 'a',
	}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Fatalf("unexpected encoding:\n got: %s\nwant: %s", spew.Sdump(buf.Bytes()), spew.Sdump(expected))
	}

	r := bytes.NewReader(buf.Bytes())
	u8, err := Uint8(r)
	if err != nil || u8 != 0xab {
		t.Fatalf("Uint8: got %x, %+v", u8, err)
	}
	u16, err := Uint16(r)
	if err != nil || u16 != 0x0102 {
		t.Fatalf("Uint16: got %x, %+v", u16, err)
	}
	u32, err := Uint32(r)
	if err != nil || u32 != 0x01020304 {
		t.Fatalf("Uint32: got %x, %+v", u32, err)
	}
	i64, err := Int64(r)
	if err != nil || i64 != -5 {
		t.Fatalf("Int64: got %d, %+v", i64, err)
	}
	data, err := VarBytes(r)
	if err != nil || string(data) != "kaspa" {
		t.Fatalf("VarBytes: got %q, %+v", data, err)
	}
	if _, err := Uint8(r); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF after the last element, got %v", err)
	}
}

func TestVarBytesTooLong(t *testing.T) {
	var buf bytes.Buffer
	if err := PutUint64(&buf, MaxVarBytesLength+1); err != nil {
		t.Fatalf("PutUint64: %+v", err)
	}
	_, err := VarBytes(&buf)
	if !errors.Is(err, ErrVarBytesTooLong) {
		t.Fatalf("expected ErrVarBytesTooLong, got %v", err)
	}
}
