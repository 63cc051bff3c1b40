// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip38

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"fmt"

	"github.com/ModChain/bip38/base58check"
	"github.com/ModChain/bip38/curve"
	"golang.org/x/crypto/scrypt"
	"golang.org/x/text/unicode/norm"
)

// scrypt parameters.  These are part of the wire format.
const (
	passphraseScryptN = 16384
	passphraseScryptR = 8
	passphraseScryptP = 8

	passPointScryptN = 1024
	passPointScryptR = 1
	passPointScryptP = 1

	derivedKeyLen = 64
	passFactorLen = 32
)

// scryptPassphrase stretches the NFC form of the passphrase.
func scryptPassphrase(passphrase string, salt []byte, keyLen int) ([]byte, error) {
	pw := []byte(norm.NFC.String(passphrase))
	defer clear(pw)

	key, err := scrypt.Key(pw, salt, passphraseScryptN, passphraseScryptR,
		passphraseScryptP, keyLen)
	if err != nil {
		return nil, fmt.Errorf("bip38: scrypt: %w", err)
	}
	return key, nil
}

// scryptPassPoint derives the 64 bytes shared by the key generator and the
// passphrase holder from the compressed pass point.
func scryptPassPoint(passPoint, addressHash, ownerEntropy []byte) ([]byte, error) {
	salt := make([]byte, 0, len(addressHash)+len(ownerEntropy))
	salt = append(salt, addressHash...)
	salt = append(salt, ownerEntropy...)

	key, err := scrypt.Key(passPoint, salt, passPointScryptN, passPointScryptR,
		passPointScryptP, derivedKeyLen)
	if err != nil {
		return nil, fmt.Errorf("bip38: scrypt: %w", err)
	}
	return key, nil
}

// passFactor derives the passphrase holder's secret scalar from the owner
// entropy.  With a lot and sequence only the first four bytes salt scrypt and
// the whole entropy is hashed in afterwards.
func passFactor(passphrase string, ownerEntropy []byte, withLotSequence bool) (*curve.PrivateKey, error) {
	var pf []byte
	if withLotSequence {
		prefactor, err := scryptPassphrase(passphrase, ownerEntropy[:ownerSaltLenLotSequence],
			passFactorLen)
		if err != nil {
			return nil, err
		}
		buf := make([]byte, 0, len(prefactor)+len(ownerEntropy))
		buf = append(buf, prefactor...)
		buf = append(buf, ownerEntropy...)
		pf = base58check.DoubleSHA256(buf)
		clear(prefactor)
		clear(buf)
	} else {
		var err error
		pf, err = scryptPassphrase(passphrase, ownerEntropy, passFactorLen)
		if err != nil {
			return nil, err
		}
	}
	defer clear(pf)

	key, err := curve.PrivKeyFromBytes(pf)
	if err != nil {
		return nil, wrapError(ErrInvalidScalar, "invalid pass factor", err)
	}
	return key, nil
}

// newBlockCipher returns AES-256 keyed with the last 32 bytes of derived.
// It is only ever applied to single 16-byte blocks.
func newBlockCipher(derived []byte) (cipher.Block, error) {
	block, err := aes.NewCipher(derived[32:64])
	if err != nil {
		return nil, fmt.Errorf("bip38: aes: %w", err)
	}
	return block, nil
}

// encryptXOR sets dst to AES(src XOR mask) for one block.
func encryptXOR(block cipher.Block, dst, src, mask []byte) {
	var buf [aes.BlockSize]byte
	subtle.XORBytes(buf[:], src[:aes.BlockSize], mask[:aes.BlockSize])
	block.Encrypt(dst, buf[:])
	clear(buf[:])
}

// decryptXOR sets dst to AES⁻¹(src) XOR mask for one block.
func decryptXOR(block cipher.Block, dst, src, mask []byte) {
	block.Decrypt(dst, src[:aes.BlockSize])
	subtle.XORBytes(dst[:aes.BlockSize], dst[:aes.BlockSize], mask[:aes.BlockSize])
}
