// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PrivKeyBytesLen is the length of a serialized private key.
const PrivKeyBytesLen = 32

// PrivateKey is a secp256k1 scalar in the range [1, N-1].
type PrivateKey struct {
	key secp.ModNScalar
}

// PrivKeyFromBytes returns the private key for the 32-byte big-endian scalar.
func PrivKeyFromBytes(pk []byte) (*PrivateKey, error) {
	if len(pk) != PrivKeyBytesLen {
		str := fmt.Sprintf("malformed private key: invalid length %d, expected %d",
			len(pk), PrivKeyBytesLen)
		return nil, makeError(ErrInvalidScalar, str)
	}
	var p PrivateKey
	if err := setScalar(&p.key, pk); err != nil {
		return nil, err
	}
	return &p, nil
}

// Bytes returns the 32-byte big-endian scalar.
func (p *PrivateKey) Bytes() []byte {
	b := p.key.Bytes()
	return b[:]
}

// PubKey derives the public key k*G, tagged with the requested encoding.
func (p *PrivateKey) PubKey(compressed bool) *PublicKey {
	var r secp.JacobianPoint
	secp.ScalarBaseMultNonConst(&p.key, &r)
	r.ToAffine()
	return &PublicKey{point: Point{x: r.X, y: r.Y}, compressed: compressed}
}

// Mul returns p*other mod N.  The group order is prime so the product of two
// valid keys is itself valid.
func (p *PrivateKey) Mul(other *PrivateKey) *PrivateKey {
	var r PrivateKey
	r.key.Mul2(&p.key, &other.key)
	return &r
}

// Zero clears the scalar.  The key must not be used afterwards.
func (p *PrivateKey) Zero() {
	p.key.Zero()
}
