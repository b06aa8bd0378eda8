package integer

import (
	"encoding/binary"
	"math/bits"

	"github.com/zeebo/errs"

	"github.com/calebcase/atoi"
	"github.com/calebcase/atoi/clz"
	"github.com/calebcase/atoi/pow10"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

// Block is an unsigned integer of a fixed width.
type Block struct {
	Value uint64
	Bits  uint64
}

// BitLen returns the number of significant bits in the value.
func (b Block) BitLen() uint64 {
	return clz.Len64(b.Value)
}

// MarshalBinary implements encoding.BinaryMarshaler. The value is written
// big-endian using as few bytes as possible.
func (b Block) MarshalBinary() (data []byte, err error) {
	n := (b.BitLen() + 7) / 8

	// Note: zero is encoded as a single zero byte rather than an empty
	// array.
	if n == 0 {
		n = 1
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], b.Value)

	return append([]byte(nil), buf[8-n:]...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. If b.Bits is already
// set the decoded value must fit in it, otherwise b.Bits is set to 64.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	switch {
	case len(data) == 0:
		return Error.New("invalid: size=0")
	case len(data) > 8:
		return Error.New("too large: size=%d", len(data))
	}

	var buf [8]byte
	copy(buf[8-len(data):], data)

	v := binary.BigEndian.Uint64(buf[:])

	if b.Bits == 0 {
		b.Bits = 64
	}

	s := Schema{Bits: b.Bits}

	err = s.Validate()
	if err != nil {
		return err
	}

	if v > s.Max() {
		return Error.New("too large: bits=%d value=%d", b.Bits, v)
	}

	b.Value = v

	return nil
}

// Schema for an unsigned integer.
type Schema struct {
	// Bits is the width: 8, 16, 32 or 64. Zero selects the platform's
	// uint width.
	Bits uint64
}

// Width returns the width in bits with the platform default applied.
func (s Schema) Width() uint64 {
	if s.Bits == 0 {
		return bits.UintSize
	}

	return s.Bits
}

// Validate returns an error if the width is not supported.
func (s Schema) Validate() (err error) {
	switch s.Bits {
	case 0, 8, 16, 32, 64:
		return nil
	}

	return Error.New("unsupported width: bits=%d", s.Bits)
}

// Max returns the largest value the schema can hold.
func (s Schema) Max() uint64 {
	return ^uint64(0) >> (64 - s.Width())
}

// MaxDigits returns the number of decimal digits in Max.
func (s Schema) MaxDigits() int {
	switch s.Width() {
	case 8:
		return pow10.Digits[uint8]()
	case 16:
		return pow10.Digits[uint16]()
	case 32:
		return pow10.Digits[uint32]()
	}

	return pow10.Digits[uint64]()
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema) *Decoder {
	return &Decoder{
		schema: schema,
	}
}

// Decode parses decimal text into a block of the schema's width. The parse
// errors from package atoi are preserved.
func (d *Decoder) Decode(text []byte, b *Block) (err error) {
	defer Error.WrapP(&err)

	err = d.schema.Validate()
	if err != nil {
		return err
	}

	var v uint64

	switch d.schema.Bits {
	case 0:
		var u uint
		u, err = atoi.ParseUint(text)
		v = uint64(u)
	case 8:
		var u uint8
		u, err = atoi.ParseUint8(text)
		v = uint64(u)
	case 16:
		var u uint16
		u, err = atoi.ParseUint16(text)
		v = uint64(u)
	case 32:
		var u uint32
		u, err = atoi.ParseUint32(text)
		v = uint64(u)
	case 64:
		v, err = atoi.ParseUint64(text)
	}

	if err != nil {
		return err
	}

	b.Value = v
	b.Bits = d.schema.Width()

	return nil
}
