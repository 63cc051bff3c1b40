// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base58check implements the Base58Check text framing shared by WIF
// keys, P2PKH addresses and every BIP38 artefact: the payload followed by the
// first four bytes of its double SHA-256, rendered in a Base58 alphabet.
package base58check

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"
)

// BitcoinAlphabet is the Base58 alphabet used by Bitcoin and most forks.
const BitcoinAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Alphabet is a Base58 alphabet.  The zero value is not usable, use
// NewAlphabet or Bitcoin.
type Alphabet struct {
	chars string
	enc   *base58.Alphabet
}

// Bitcoin is the default alphabet.
var Bitcoin = &Alphabet{chars: BitcoinAlphabet, enc: base58.BTCAlphabet}

// NewAlphabet returns an alphabet built from the 58 provided characters.  An
// empty string selects the Bitcoin alphabet.
func NewAlphabet(chars string) (*Alphabet, error) {
	if chars == "" || chars == BitcoinAlphabet {
		return Bitcoin, nil
	}
	if len(chars) != 58 {
		return nil, fmt.Errorf("base58 alphabet must have 58 characters, got %d", len(chars))
	}
	return &Alphabet{chars: chars, enc: base58.NewAlphabet(chars)}, nil
}

// String returns the characters of the alphabet.
func (a *Alphabet) String() string {
	return a.chars
}

func alphabetOrDefault(a *Alphabet) *base58.Alphabet {
	if a == nil || a.enc == nil {
		return base58.BTCAlphabet
	}
	return a.enc
}

// Encode appends the checksum of payload to it and returns the Base58 text.
// A nil alphabet selects Bitcoin.
func Encode(payload []byte, alphabet *Alphabet) string {
	buf := make([]byte, 0, len(payload)+ChecksumLen)
	buf = append(buf, payload...)
	buf = append(buf, Checksum(payload)...)
	return base58.EncodeAlphabet(buf, alphabetOrDefault(alphabet))
}

// Decode parses Base58Check text and returns the payload without its
// checksum.  A nil alphabet selects Bitcoin.
func Decode(s string, alphabet *Alphabet) ([]byte, error) {
	raw, err := DecodeRaw(s, alphabet)
	if err != nil {
		return nil, err
	}
	if len(raw) <= ChecksumLen {
		str := fmt.Sprintf("decoded length %d leaves no room for a payload "+
			"and checksum", len(raw))
		return nil, makeError(ErrTooShort, str)
	}

	payload := raw[:len(raw)-ChecksumLen]
	checkSum := raw[len(raw)-ChecksumLen:]
	if !bytes.Equal(checkSum, Checksum(payload)) {
		return nil, makeError(ErrChecksumMismatch, "base58check checksum mismatch")
	}
	return payload, nil
}

// DecodeRaw parses Base58 text without interpreting a checksum.
func DecodeRaw(s string, alphabet *Alphabet) ([]byte, error) {
	raw, err := base58.DecodeAlphabet(s, alphabetOrDefault(alphabet))
	if err != nil {
		str := fmt.Sprintf("invalid base58 text: %v", err)
		return nil, makeError(ErrInvalidCharacter, str)
	}
	return raw, nil
}
