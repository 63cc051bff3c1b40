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

// Payload lengths, without the Base58Check checksum.
const (
	encryptedKeyLen     = 39
	intermediateCodeLen = 49
	confirmationCodeLen = 51

	ownerEntropyLen         = 8
	ownerSaltLenLotSequence = 4
	ownerSaltLen            = 8
	encryptedPart1Len       = 8
	seedLen                 = 24
)

// encryptedKey is the decoded form of a "6P" string.
//
// Non-EC layout: prefix(2) flag(1) addresshash(4) encryptedhalf1(16)
// encryptedhalf2(16).
//
// EC layout: prefix(2) flag(1) addresshash(4) ownerentropy(8)
// encryptedpart1[0:8](8) encryptedpart2(16).
type encryptedKey struct {
	kind        KeyKind
	flag        Flag
	addressHash [address.AddressHashLen]byte

	// Non-EC only.
	encryptedHalf1 [16]byte

	// EC only.
	ownerEntropy   [ownerEntropyLen]byte
	encryptedPart1 [encryptedPart1Len]byte

	// encryptedhalf2 for non-EC keys, encryptedpart2 for EC keys.
	encryptedHalf2 [16]byte
}

func (k *encryptedKey) bytes() []byte {
	b := make([]byte, 0, encryptedKeyLen)
	b = append(b, byte(k.kind>>8), byte(k.kind), byte(k.flag))
	b = append(b, k.addressHash[:]...)
	if k.kind == ECMultiplied {
		b = append(b, k.ownerEntropy[:]...)
		b = append(b, k.encryptedPart1[:]...)
	} else {
		b = append(b, k.encryptedHalf1[:]...)
	}
	return append(b, k.encryptedHalf2[:]...)
}

// String returns the Base58Check encoding.
func (k *encryptedKey) String() string {
	return base58check.Encode(k.bytes(), base58check.Bitcoin)
}

// parseEncryptedKey decodes and classifies an encrypted key.  Illegal flags
// are rejected before the prefix is looked at.
func parseEncryptedKey(s string) (*encryptedKey, error) {
	raw, err := base58check.Decode(s, base58check.Bitcoin)
	if err != nil {
		return nil, wrapError(ErrMalformedEncoding, "malformed encrypted key", err)
	}
	if len(raw) != encryptedKeyLen {
		str := fmt.Sprintf("malformed encrypted key: decoded length %d, "+
			"expected %d", len(raw), encryptedKeyLen)
		return nil, makeError(ErrMalformedEncoding, str)
	}

	flag := Flag(raw[2])
	if flag.IsIllegal() {
		return nil, makeError(ErrIllegalFlag, fmt.Sprintf("illegal flag %v", flag))
	}
	kind, err := keyKindFromPrefix(raw[0], raw[1])
	if err != nil {
		return nil, err
	}
	if err := checkFlag(kind, flag); err != nil {
		return nil, err
	}
	// Directly encrypted keys must leave the reserved bits zero.
	if kind == NonECMultiplied && flag != nonECFlag(flag.IsCompressed()) {
		str := fmt.Sprintf("flag %v sets reserved bits", flag)
		return nil, makeError(ErrUnknownFlag, str)
	}

	k := encryptedKey{kind: kind, flag: flag}
	copy(k.addressHash[:], raw[3:7])
	body := raw[7:]
	if kind == ECMultiplied {
		copy(k.ownerEntropy[:], body[:8])
		copy(k.encryptedPart1[:], body[8:16])
	} else {
		copy(k.encryptedHalf1[:], body[:16])
	}
	copy(k.encryptedHalf2[:], body[16:32])
	return &k, nil
}

// intermediateCode is the decoded form of a "passphrase" string: magic(8)
// ownerentropy(8) passpoint(33).
type intermediateCode struct {
	withLotSequence bool
	ownerEntropy    [ownerEntropyLen]byte
	passPoint       [curve.PubKeyBytesLenCompressed]byte
}

func (c *intermediateCode) bytes() []byte {
	magic := magicNoLotSequence
	if c.withLotSequence {
		magic = magicLotSequence
	}
	b := make([]byte, 0, intermediateCodeLen)
	b = append(b, magic[:]...)
	b = append(b, c.ownerEntropy[:]...)
	return append(b, c.passPoint[:]...)
}

// String returns the Base58Check encoding.
func (c *intermediateCode) String() string {
	return base58check.Encode(c.bytes(), base58check.Bitcoin)
}

func parseIntermediateCode(s string) (*intermediateCode, error) {
	raw, err := base58check.Decode(s, base58check.Bitcoin)
	if err != nil {
		return nil, wrapError(ErrMalformedEncoding, "malformed intermediate code", err)
	}
	if len(raw) != intermediateCodeLen {
		str := fmt.Sprintf("malformed intermediate code: decoded length %d, "+
			"expected %d", len(raw), intermediateCodeLen)
		return nil, makeError(ErrMalformedEncoding, str)
	}

	var c intermediateCode
	switch magic := raw[:8]; {
	case bytes.Equal(magic, magicLotSequence[:]):
		c.withLotSequence = true
	case bytes.Equal(magic, magicNoLotSequence[:]):
	default:
		str := fmt.Sprintf("unknown intermediate code magic %x", magic)
		return nil, makeError(ErrUnknownMagic, str)
	}
	copy(c.ownerEntropy[:], raw[8:16])
	copy(c.passPoint[:], raw[16:])
	return &c, nil
}

// confirmationCode is the decoded form of a "cfrm38" string: prefix(5)
// flag(1) addresshash(4) ownerentropy(8) encryptedpointb(33).
type confirmationCode struct {
	flag            Flag
	addressHash     [address.AddressHashLen]byte
	ownerEntropy    [ownerEntropyLen]byte
	encryptedPointB [curve.PubKeyBytesLenCompressed]byte
}

func (c *confirmationCode) bytes() []byte {
	b := make([]byte, 0, confirmationCodeLen)
	b = append(b, confirmationCodePrefix[:]...)
	b = append(b, byte(c.flag))
	b = append(b, c.addressHash[:]...)
	b = append(b, c.ownerEntropy[:]...)
	return append(b, c.encryptedPointB[:]...)
}

// String returns the Base58Check encoding.
func (c *confirmationCode) String() string {
	return base58check.Encode(c.bytes(), base58check.Bitcoin)
}

func parseConfirmationCode(s string) (*confirmationCode, error) {
	raw, err := base58check.Decode(s, base58check.Bitcoin)
	if err != nil {
		return nil, wrapError(ErrMalformedEncoding, "malformed confirmation code", err)
	}
	if len(raw) != confirmationCodeLen {
		str := fmt.Sprintf("malformed confirmation code: decoded length %d, "+
			"expected %d", len(raw), confirmationCodeLen)
		return nil, makeError(ErrMalformedEncoding, str)
	}

	c := confirmationCode{flag: Flag(raw[5])}
	if err := checkFlag(ECMultiplied, c.flag); err != nil {
		return nil, err
	}
	if !bytes.Equal(raw[:5], confirmationCodePrefix[:]) {
		str := fmt.Sprintf("unknown confirmation code prefix %x", raw[:5])
		return nil, makeError(ErrUnknownPrefix, str)
	}
	copy(c.addressHash[:], raw[6:10])
	copy(c.ownerEntropy[:], raw[10:18])
	copy(c.encryptedPointB[:], raw[18:])

	// The parity bit is masked but the prefix is still 0x02 or 0x03.
	switch c.encryptedPointB[0] {
	case curve.PubKeyFormatCompressedEven, curve.PubKeyFormatCompressedOdd:
	default:
		str := fmt.Sprintf("malformed confirmation code: point prefix 0x%02x",
			c.encryptedPointB[0])
		return nil, makeError(ErrMalformedEncoding, str)
	}
	return &c, nil
}
