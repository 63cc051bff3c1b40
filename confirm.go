// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip38

import (
	"bytes"

	"github.com/ModChain/bip38/address"
	"github.com/ModChain/bip38/curve"
)

// Confirmation is what a confirmation code proves about the key it was
// issued with.
type Confirmation struct {
	PublicKey      *curve.PublicKey
	Compressed     bool
	Address        string
	HasLotSequence bool
	Lot            int
	Sequence       int
}

// ConfirmCode checks that a confirmation code belongs to a key encrypted
// under passphrase and returns the key's address.  No private key is
// recovered.
func (e *Engine) ConfirmCode(passphrase, code string) (*Confirmation, error) {
	c, err := parseConfirmationCode(code)
	if err != nil {
		return nil, err
	}

	withLotSequence := c.flag.HasLotSequence()
	pf, err := passFactor(passphrase, c.ownerEntropy[:], withLotSequence)
	if err != nil {
		return nil, err
	}
	defer pf.Zero()

	passPoint := pf.PubKey(true).SerializeCompressed()
	derived, err := scryptPassPoint(passPoint, c.addressHash[:], c.ownerEntropy[:])
	if err != nil {
		return nil, err
	}
	defer clear(derived)
	block, err := newBlockCipher(derived)
	if err != nil {
		return nil, err
	}

	var pointB [curve.PubKeyBytesLenCompressed]byte
	pointB[0] = c.encryptedPointB[0] ^ (derived[63] & 1)
	decryptXOR(block, pointB[1:17], c.encryptedPointB[1:17], derived[:16])
	decryptXOR(block, pointB[17:33], c.encryptedPointB[17:33], derived[16:32])

	// Under a wrong passphrase pointb decrypts to noise, which is usually
	// not on the curve.
	pb, err := curve.ParsePubKey(pointB[:])
	if err != nil {
		e.log.Debug("confirmation point is not on the curve", "flag", c.flag)
		return nil, makeError(ErrIncorrectPassphrase, "incorrect passphrase")
	}

	pfBytes := pf.Bytes()
	defer clear(pfBytes)
	pub, err := pb.Multiply(pfBytes)
	if err != nil {
		return nil, wrapError(ErrInvalidScalar, "invalid pass factor", err)
	}
	compressed := c.flag.IsCompressed()
	pub = curve.NewPublicKey(pub.Point(), compressed)
	addr := e.address(pub)
	if !bytes.Equal(address.Hash(addr), c.addressHash[:]) {
		e.log.Debug("address hash mismatch", "flag", c.flag)
		return nil, makeError(ErrIncorrectPassphrase, "incorrect passphrase")
	}

	conf := &Confirmation{
		PublicKey:  pub,
		Compressed: compressed,
		Address:    addr,
	}
	if withLotSequence {
		conf.HasLotSequence = true
		conf.Lot, conf.Sequence = lotSequence(c.ownerEntropy[ownerSaltLenLotSequence:])
	}
	e.log.Debug("confirmed code", "flag", c.flag, "compressed", compressed)
	return conf, nil
}
