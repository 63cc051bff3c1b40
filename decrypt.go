// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip38

import (
	"bytes"

	"github.com/ModChain/bip38/address"
	"github.com/ModChain/bip38/base58check"
	"github.com/ModChain/bip38/curve"
	"github.com/ModChain/bip38/wif"
)

// DecryptedKey is the result of decrypting an encrypted key.  Seed and the
// lot and sequence are only set for EC-multiplied keys.
type DecryptedKey struct {
	Kind           KeyKind
	WIF            string
	PrivateKey     *curve.PrivateKey
	PublicKey      *curve.PublicKey
	Compressed     bool
	Address        string
	Seed           []byte
	HasLotSequence bool
	Lot            int
	Sequence       int
}

// Decrypt recovers the private key of an encrypted key of either kind.  A
// wrong passphrase yields ErrIncorrectPassphrase.
func (e *Engine) Decrypt(encrypted, passphrase string) (*DecryptedKey, error) {
	k, err := parseEncryptedKey(encrypted)
	if err != nil {
		return nil, err
	}
	if k.kind == ECMultiplied {
		return e.decryptEC(k, passphrase)
	}
	return e.decryptNonEC(k, passphrase)
}

func (e *Engine) decryptNonEC(k *encryptedKey, passphrase string) (*DecryptedKey, error) {
	derived, err := scryptPassphrase(passphrase, k.addressHash[:], derivedKeyLen)
	if err != nil {
		return nil, err
	}
	defer clear(derived)
	block, err := newBlockCipher(derived)
	if err != nil {
		return nil, err
	}

	var key [curve.PrivKeyBytesLen]byte
	defer clear(key[:])
	decryptXOR(block, key[:16], k.encryptedHalf1[:], derived[:16])
	decryptXOR(block, key[16:], k.encryptedHalf2[:], derived[16:32])

	priv, err := curve.PrivKeyFromBytes(key[:])
	if err != nil {
		return nil, wrapError(ErrInvalidScalar, "invalid decrypted private key", err)
	}
	return e.recoverKey(k, priv)
}

func (e *Engine) decryptEC(k *encryptedKey, passphrase string) (*DecryptedKey, error) {
	withLotSequence := k.flag.HasLotSequence()
	pf, err := passFactor(passphrase, k.ownerEntropy[:], withLotSequence)
	if err != nil {
		return nil, err
	}
	defer pf.Zero()

	passPoint := pf.PubKey(true).SerializeCompressed()
	derived, err := scryptPassPoint(passPoint, k.addressHash[:], k.ownerEntropy[:])
	if err != nil {
		return nil, err
	}
	defer clear(derived)
	block, err := newBlockCipher(derived)
	if err != nil {
		return nil, err
	}

	// half2 is encryptedpart1[8:16] followed by seedb[16:24].
	var half2, part1 [16]byte
	decryptXOR(block, half2[:], k.encryptedHalf2[:], derived[16:32])
	copy(part1[:encryptedPart1Len], k.encryptedPart1[:])
	copy(part1[encryptedPart1Len:], half2[:8])

	seed := make([]byte, seedLen)
	decryptXOR(block, seed[:16], part1[:], derived[:16])
	copy(seed[16:], half2[8:])
	clear(half2[:])

	factorB := base58check.DoubleSHA256(seed)
	defer clear(factorB)
	fb, err := curve.PrivKeyFromBytes(factorB)
	if err != nil {
		clear(seed)
		return nil, wrapError(ErrInvalidScalar, "invalid factor b", err)
	}
	defer fb.Zero()

	dk, err := e.recoverKey(k, pf.Mul(fb))
	if err != nil {
		clear(seed)
		return nil, err
	}
	dk.Seed = seed
	if withLotSequence {
		dk.HasLotSequence = true
		dk.Lot, dk.Sequence = lotSequence(k.ownerEntropy[ownerSaltLenLotSequence:])
	}
	return dk, nil
}

// recoverKey checks a candidate private key against the address hash.  It
// takes ownership of priv and zeroes it on failure.
func (e *Engine) recoverKey(k *encryptedKey, priv *curve.PrivateKey) (*DecryptedKey, error) {
	compressed := k.flag.IsCompressed()
	pub := priv.PubKey(compressed)
	addr := e.address(pub)
	if !bytes.Equal(address.Hash(addr), k.addressHash[:]) {
		priv.Zero()
		e.log.Debug("address hash mismatch", "kind", k.kind, "flag", k.flag)
		return nil, makeError(ErrIncorrectPassphrase, "incorrect passphrase")
	}

	e.log.Debug("decrypted private key", "kind", k.kind, "flag", k.flag,
		"compressed", compressed)
	return &DecryptedKey{
		Kind:       k.kind,
		WIF:        wif.Encode(priv, e.wifPrefix, compressed, e.params.Alphabet),
		PrivateKey: priv,
		PublicKey:  pub,
		Compressed: compressed,
		Address:    addr,
	}, nil
}
