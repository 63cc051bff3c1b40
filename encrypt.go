// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip38

import (
	"github.com/ModChain/bip38/address"
	"github.com/ModChain/bip38/curve"
	"github.com/ModChain/bip38/wif"
)

// Encrypt protects a WIF private key with a passphrase without EC
// multiplication.  The compression of the result follows the WIF.
func (e *Engine) Encrypt(wifKey, passphrase string) (string, error) {
	priv, compressed, err := wif.Decode(wifKey, e.wifPrefix, e.params.Alphabet)
	if err != nil {
		return "", wrapError(ErrInvalidWIF, "invalid WIF", err)
	}
	defer priv.Zero()

	return e.EncryptPrivateKey(priv, compressed, passphrase)
}

// EncryptPrivateKey is like Encrypt for a key that is already decoded.
func (e *Engine) EncryptPrivateKey(priv *curve.PrivateKey, compressed bool, passphrase string) (string, error) {
	k := encryptedKey{kind: NonECMultiplied, flag: nonECFlag(compressed)}
	addr := e.address(priv.PubKey(compressed))
	copy(k.addressHash[:], address.Hash(addr))

	derived, err := scryptPassphrase(passphrase, k.addressHash[:], derivedKeyLen)
	if err != nil {
		return "", err
	}
	defer clear(derived)

	block, err := newBlockCipher(derived)
	if err != nil {
		return "", err
	}
	key := priv.Bytes()
	defer clear(key)
	encryptXOR(block, k.encryptedHalf1[:], key[:16], derived[:16])
	encryptXOR(block, k.encryptedHalf2[:], key[16:], derived[16:32])

	e.log.Debug("encrypted private key", "kind", k.kind, "flag", k.flag,
		"compressed", compressed)
	return k.String(), nil
}
