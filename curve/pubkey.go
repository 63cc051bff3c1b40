// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

// PublicKey is a curve point tagged with the encoding it is serialized in.
// The tag matters: the compressed and uncompressed encodings hash to
// different addresses.
type PublicKey struct {
	point      Point
	compressed bool
}

// NewPublicKey returns a public key for p using the given encoding.
func NewPublicKey(p *Point, compressed bool) *PublicKey {
	return &PublicKey{point: *p, compressed: compressed}
}

// ParsePubKey parses a 33-byte compressed or 65-byte uncompressed public key
// and remembers which of the two encodings it was given in.
func ParsePubKey(serialized []byte) (*PublicKey, error) {
	p, err := ParsePoint(serialized)
	if err != nil {
		return nil, err
	}
	return &PublicKey{
		point:      *p,
		compressed: len(serialized) == PubKeyBytesLenCompressed,
	}, nil
}

// Point returns the underlying curve point.
func (k *PublicKey) Point() *Point {
	p := k.point
	return &p
}

// IsCompressed reports whether the key serializes in compressed form.
func (k *PublicKey) IsCompressed() bool {
	return k.compressed
}

// Compress returns a copy of the key tagged for compressed serialization.
func (k *PublicKey) Compress() *PublicKey {
	return &PublicKey{point: k.point, compressed: true}
}

// Decompress returns a copy of the key tagged for uncompressed serialization.
func (k *PublicKey) Decompress() *PublicKey {
	return &PublicKey{point: k.point, compressed: false}
}

// Bytes serializes the key in its tagged encoding.
func (k *PublicKey) Bytes() []byte {
	if k.compressed {
		return k.point.SerializeCompressed()
	}
	return k.point.SerializeUncompressed()
}

// SerializeCompressed serializes the key in compressed form.
func (k *PublicKey) SerializeCompressed() []byte {
	return k.point.SerializeCompressed()
}

// SerializeUncompressed serializes the key in uncompressed form.
func (k *PublicKey) SerializeUncompressed() []byte {
	return k.point.SerializeUncompressed()
}

// Multiply returns scalar*K keeping the encoding tag.
func (k *PublicKey) Multiply(scalar []byte) (*PublicKey, error) {
	p, err := k.point.Multiply(scalar)
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: *p, compressed: k.compressed}, nil
}

// IsEqual reports whether both keys are the same point.  The encoding tag is
// not compared.
func (k *PublicKey) IsEqual(other *PublicKey) bool {
	return k.point.IsEqual(&other.point)
}
