package rwa

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"

	"verse_contracts/sdk"
)

// BinWriter accumulates a deterministic binary record; numbers go big endian,
// strings are uvarint length prefixed.
type BinWriter struct {
	buf bytes.Buffer
}

// NewWriter spins up a fresh writer so we dont leak old bytes between encodes.
func NewWriter() *BinWriter { return &BinWriter{} }

// String returns the accumulated buffer as the storage string.
func (w *BinWriter) String() string { return w.buf.String() }

// WriteRawByte forwards a single raw byte (enum tags and flags).
func (w *BinWriter) WriteRawByte(b byte) {
	w.buf.WriteByte(b)
}

// WriteBool squashes bools into a single byte flag for deterministic payloads.
func (w *BinWriter) WriteBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// WriteUint64 writes big endian numbers so tooling can read them without guessing.
func (w *BinWriter) WriteUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *BinWriter) WriteInt64(v int64) {
	w.WriteUint64(uint64(v))
}

// WriteFloat64 converts doubles to IEEE bits so we dont lose precision on wasm.
func (w *BinWriter) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}

// WriteVarUint uses varints to keep counts and lens compact.
func (w *BinWriter) WriteVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// WriteAmount keeps amount scaling consistent via a single call site.
func (w *BinWriter) WriteAmount(v Amount) {
	w.WriteInt64(int64(v))
}

// WriteString prefixes its length then dumps UTF-8 directly.
func (w *BinWriter) WriteString(s string) {
	w.WriteVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// WriteAddress canonicalizes the address before writing, so later parsing is easy.
func (w *BinWriter) WriteAddress(a sdk.Address) {
	w.WriteString(a.String())
}

// WriteAsset just dumps the ticker string, nothing fancy but consistent.
func (w *BinWriter) WriteAsset(a sdk.Asset) {
	w.WriteString(a.String())
}

// BinReader walks a stored record sequentially without copying.
type BinReader struct {
	data []byte
	pos  int
}

// NewReader wraps raw bytes so we can peek sequentially.
func NewReader(data string) *BinReader {
	return &BinReader{data: []byte(data)}
}

// ReadByte grabs the next byte and bumps the cursor, errors on EOF.
func (r *BinReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadBool restores bools stored via WriteBool above.
func (r *BinReader) ReadBool() (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// ReadUint64 reads the 8 big endian bytes back into a number.
func (r *BinReader) ReadUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	v := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return v, nil
}

// ReadInt64 casts the uint read back while keeping the sign bits.
func (r *BinReader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadFloat64 restores IEEE bits written by WriteFloat64.
func (r *BinReader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadVarUint decodes the compact counts and lengths.
func (r *BinReader) ReadVarUint() (uint64, error) {
	v, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("bad varint")
	}
	r.pos += n
	return v, nil
}

// ReadAmount mirrors WriteAmount.
func (r *BinReader) ReadAmount() (Amount, error) {
	v, err := r.ReadInt64()
	return Amount(v), err
}

// ReadString restores a length-prefixed string.
func (r *BinReader) ReadString() (string, error) {
	n, err := r.ReadVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(n) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}

// ReadAddress restores an address written via WriteAddress.
func (r *BinReader) ReadAddress() (sdk.Address, error) {
	s, err := r.ReadString()
	return sdk.Address(s), err
}

// ReadAsset restores an asset ticker.
func (r *BinReader) ReadAsset() (sdk.Asset, error) {
	s, err := r.ReadString()
	return sdk.Asset(s), err
}
