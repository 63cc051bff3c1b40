// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip38

import (
	"bytes"
	"fmt"

	"github.com/ModChain/bip38/address"
	"github.com/ModChain/bip38/base58check"
	"github.com/ModChain/bip38/curve"
)

// NewEncryptedKey is a key generated from an intermediate code.  Nobody who
// saw only the intermediate code and the seed can recover its private key.
type NewEncryptedKey struct {
	EncryptedWIF     string
	ConfirmationCode string
	PublicKey        *curve.PublicKey
	Compressed       bool
	Address          string
	Seed             []byte
}

// CreateNewEncryptedWIF generates an encrypted key and its confirmation code
// from an intermediate code.  A nil seed draws 24 fresh random bytes.
func (e *Engine) CreateNewEncryptedWIF(intermediate string, compressed bool, seed []byte) (*NewEncryptedKey, error) {
	switch {
	case seed == nil:
		var err error
		if seed, err = e.randomBytes(seedLen); err != nil {
			return nil, err
		}
	case len(seed) != seedLen:
		str := fmt.Sprintf("seed is %d bytes, expected %d", len(seed), seedLen)
		return nil, makeError(ErrInvalidSeed, str)
	default:
		seed = bytes.Clone(seed)
	}

	code, err := parseIntermediateCode(intermediate)
	if err != nil {
		return nil, err
	}
	passPoint, err := curve.ParsePubKey(code.passPoint[:])
	if err != nil {
		return nil, wrapError(ErrInvalidPublicKey, "invalid pass point", err)
	}

	factorB := base58check.DoubleSHA256(seed)
	defer clear(factorB)
	fb, err := curve.PrivKeyFromBytes(factorB)
	if err != nil {
		return nil, wrapError(ErrInvalidScalar, "invalid factor b", err)
	}
	defer fb.Zero()

	pub, err := passPoint.Multiply(factorB)
	if err != nil {
		return nil, wrapError(ErrInvalidScalar, "invalid factor b", err)
	}
	pub = curve.NewPublicKey(pub.Point(), compressed)
	addr := e.address(pub)

	k := encryptedKey{
		kind:         ECMultiplied,
		flag:         ecFlag(compressed, code.withLotSequence),
		ownerEntropy: code.ownerEntropy,
	}
	copy(k.addressHash[:], address.Hash(addr))

	derived, err := scryptPassPoint(code.passPoint[:], k.addressHash[:], k.ownerEntropy[:])
	if err != nil {
		return nil, err
	}
	defer clear(derived)
	block, err := newBlockCipher(derived)
	if err != nil {
		return nil, err
	}

	var part1, half2 [16]byte
	encryptXOR(block, part1[:], seed[:16], derived[:16])
	copy(k.encryptedPart1[:], part1[:encryptedPart1Len])
	copy(half2[:8], part1[encryptedPart1Len:])
	copy(half2[8:], seed[16:])
	encryptXOR(block, k.encryptedHalf2[:], half2[:], derived[16:32])
	clear(half2[:])

	conf := confirmationCode{
		flag:         k.flag,
		addressHash:  k.addressHash,
		ownerEntropy: k.ownerEntropy,
	}
	pointB := fb.PubKey(true).SerializeCompressed()
	conf.encryptedPointB[0] = pointB[0] ^ (derived[63] & 1)
	encryptXOR(block, conf.encryptedPointB[1:17], pointB[1:17], derived[:16])
	encryptXOR(block, conf.encryptedPointB[17:33], pointB[17:33], derived[16:32])

	e.log.Debug("created encrypted key", "kind", k.kind, "flag", k.flag,
		"compressed", compressed)
	return &NewEncryptedKey{
		EncryptedWIF:     k.String(),
		ConfirmationCode: conf.String(),
		PublicKey:        pub,
		Compressed:       compressed,
		Address:          addr,
		Seed:             seed,
	}, nil
}
