// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// These constants define the lengths of serialized points.
const (
	// PointCoordinateLen is the length of a single serialized coordinate.
	PointCoordinateLen = 32

	// PubKeyBytesLenCompressed is the number of bytes of a serialized
	// compressed point.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the number of bytes of a serialized
	// uncompressed point.
	PubKeyBytesLenUncompressed = 65
)

// These constants are the format bytes of a serialized point.
const (
	PubKeyFormatCompressedEven byte = 0x02
	PubKeyFormatCompressedOdd  byte = 0x03
	PubKeyFormatUncompressed   byte = 0x04
)

// Point is an affine point on the secp256k1 curve.  A Point is never the
// point at infinity and its coordinates are always normalized.  Points are
// values: no method modifies its receiver.
type Point struct {
	x, y secp.FieldVal
}

var generator = func() Point {
	var one secp.ModNScalar
	one.SetInt(1)
	var g secp.JacobianPoint
	secp.ScalarBaseMultNonConst(&one, &g)
	g.ToAffine()
	return Point{x: g.X, y: g.Y}
}()

// Generator returns the secp256k1 base point G.
func Generator() *Point {
	g := generator
	return &g
}

// NewPoint returns the point with the given big-endian affine coordinates.
// The coordinates must be less than the field prime and satisfy the curve
// equation.
func NewPoint(x, y *[32]byte) (*Point, error) {
	var p Point
	if overflow := p.x.SetBytes(x); overflow != 0 {
		return nil, makeError(ErrPubKeyXTooBig, "x coordinate is not less than the field prime")
	}
	if overflow := p.y.SetBytes(y); overflow != 0 {
		return nil, makeError(ErrPubKeyYTooBig, "y coordinate is not less than the field prime")
	}
	if !isOnCurve(&p.x, &p.y) {
		return nil, makeError(ErrPubKeyNotOnCurve, "point is not on the secp256k1 curve")
	}
	return &p, nil
}

// ParsePoint decodes a compressed (33 bytes) or uncompressed (65 bytes)
// point.  Hybrid encodings are not accepted.
func ParsePoint(serialized []byte) (*Point, error) {
	var p Point
	switch len(serialized) {
	case PubKeyBytesLenCompressed:
		format := serialized[0]
		if format != PubKeyFormatCompressedEven && format != PubKeyFormatCompressedOdd {
			str := fmt.Sprintf("invalid compressed point format byte 0x%02x", format)
			return nil, makeError(ErrPubKeyInvalidFormat, str)
		}
		if overflow := p.x.SetByteSlice(serialized[1:33]); overflow {
			return nil, makeError(ErrPubKeyXTooBig, "x coordinate is not less than the field prime")
		}
		wantOdd := format == PubKeyFormatCompressedOdd
		if !secp.DecompressY(&p.x, wantOdd, &p.y) {
			return nil, makeError(ErrPubKeyNotOnCurve, "x coordinate has no square root on the curve")
		}
		p.y.Normalize()

	case PubKeyBytesLenUncompressed:
		if serialized[0] != PubKeyFormatUncompressed {
			str := fmt.Sprintf("invalid uncompressed point format byte 0x%02x", serialized[0])
			return nil, makeError(ErrPubKeyInvalidFormat, str)
		}
		var x, y [32]byte
		copy(x[:], serialized[1:33])
		copy(y[:], serialized[33:65])
		return NewPoint(&x, &y)

	default:
		str := fmt.Sprintf("malformed point: invalid length %d, expected %d or %d",
			len(serialized), PubKeyBytesLenCompressed, PubKeyBytesLenUncompressed)
		return nil, makeError(ErrPubKeyInvalidLen, str)
	}
	return &p, nil
}

// isOnCurve reports whether y^2 = x^3 + 7 holds for normalized x and y.
func isOnCurve(x, y *secp.FieldVal) bool {
	var lhs, rhs secp.FieldVal
	lhs.SquareVal(y).Normalize()
	rhs.SquareVal(x).Mul(x).AddInt(7).Normalize()
	return lhs.Equals(&rhs)
}

// X returns the big-endian x coordinate.
func (p *Point) X() [32]byte {
	return *p.x.Bytes()
}

// Y returns the big-endian y coordinate.
func (p *Point) Y() [32]byte {
	return *p.y.Bytes()
}

// IsEqual reports whether both points have the same coordinates.
func (p *Point) IsEqual(other *Point) bool {
	return p.x.Equals(&other.x) && p.y.Equals(&other.y)
}

// SerializeCompressed returns the point as a parity byte followed by x.
func (p *Point) SerializeCompressed() []byte {
	b := make([]byte, PubKeyBytesLenCompressed)
	b[0] = PubKeyFormatCompressedEven
	if p.y.IsOdd() {
		b[0] = PubKeyFormatCompressedOdd
	}
	p.x.PutBytesUnchecked(b[1:33])
	return b
}

// SerializeUncompressed returns the point as 0x04 followed by x and y.
func (p *Point) SerializeUncompressed() []byte {
	b := make([]byte, PubKeyBytesLenUncompressed)
	b[0] = PubKeyFormatUncompressed
	p.x.PutBytesUnchecked(b[1:33])
	p.y.PutBytesUnchecked(b[33:65])
	return b
}

func (p *Point) asJacobian(j *secp.JacobianPoint) {
	j.X.Set(&p.x)
	j.Y.Set(&p.y)
	j.Z.SetInt(1)
}

func fromJacobian(j *secp.JacobianPoint) (*Point, error) {
	if (j.X.IsZero() && j.Y.IsZero()) || j.Z.IsZero() {
		return nil, makeError(ErrPointAtInfinity, "result is the point at infinity")
	}
	j.ToAffine()
	return &Point{x: j.X, y: j.Y}, nil
}

// Add returns p + q.
func (p *Point) Add(q *Point) (*Point, error) {
	var a, b, result secp.JacobianPoint
	p.asJacobian(&a)
	q.asJacobian(&b)
	secp.AddNonConst(&a, &b, &result)
	return fromJacobian(&result)
}

// Double returns 2p.
func (p *Point) Double() (*Point, error) {
	var a, result secp.JacobianPoint
	p.asJacobian(&a)
	secp.DoubleNonConst(&a, &result)
	return fromJacobian(&result)
}

// Multiply returns k*p for the big-endian scalar k.  The scalar must satisfy
// 0 < k < N.
func (p *Point) Multiply(k []byte) (*Point, error) {
	var s secp.ModNScalar
	if err := setScalar(&s, k); err != nil {
		return nil, err
	}
	defer s.Zero()

	result := p.mul(&s)
	return fromJacobian(&result)
}

// mul performs most-significant-bit-first double-and-add.  The
// caller guarantees s is a valid nonzero scalar.
func (p *Point) mul(s *secp.ModNScalar) secp.JacobianPoint {
	var base, acc, tmp secp.JacobianPoint
	p.asJacobian(&base)

	k := s.Bytes()
	defer clear(k[:])
	for _, b := range k {
		for bit := 7; bit >= 0; bit-- {
			secp.DoubleNonConst(&acc, &tmp)
			acc.Set(&tmp)
			if (b>>uint(bit))&1 == 1 {
				secp.AddNonConst(&acc, &base, &tmp)
				acc.Set(&tmp)
			}
		}
	}
	return acc
}

// setScalar loads k into s, rejecting zero, values >= N and inputs longer
// than 32 bytes.
func setScalar(s *secp.ModNScalar, k []byte) error {
	if len(k) > PointCoordinateLen {
		str := fmt.Sprintf("scalar is %d bytes, expected at most %d", len(k),
			PointCoordinateLen)
		return makeError(ErrInvalidScalar, str)
	}
	if overflow := s.SetByteSlice(k); overflow {
		s.Zero()
		return makeError(ErrInvalidScalar, "scalar is not less than the group order")
	}
	if s.IsZero() {
		return makeError(ErrInvalidScalar, "scalar is zero")
	}
	return nil
}
