// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address encodes and decodes Pay-to-Public-Key-Hash addresses for
// any network whose address version prefix is supplied by the caller.
package address

import (
	"bytes"
	"fmt"

	"github.com/ModChain/bip38/base58check"
	"github.com/ModChain/bip38/curve"
)

// HashLen is the length of a public key hash.
const HashLen = 20

// AddressHashLen is the length of the BIP38 address hash.
const AddressHashLen = 4

// Encode returns the P2PKH address of pub.  The key's encoding tag selects
// which serialization is hashed.
func Encode(pub *curve.PublicKey, prefix []byte, alphabet *base58check.Alphabet) string {
	hash := base58check.Hash160(pub.Bytes())
	payload := make([]byte, 0, len(prefix)+HashLen)
	payload = append(payload, prefix...)
	payload = append(payload, hash...)
	return base58check.Encode(payload, alphabet)
}

// Decode validates addr against prefix and returns its 20-byte public key
// hash.
func Decode(addr string, prefix []byte, alphabet *base58check.Alphabet) ([]byte, error) {
	payload, err := base58check.Decode(addr, alphabet)
	if err != nil {
		return nil, Error{Err: ErrInvalidEncoding, Description: err.Error(), cause: err}
	}
	if want := len(prefix) + HashLen; len(payload) != want {
		str := fmt.Sprintf("invalid address length %d, expected %d", len(payload), want)
		return nil, makeError(ErrInvalidLength, str)
	}
	if got := payload[:len(prefix)]; !bytes.Equal(got, prefix) {
		str := fmt.Sprintf("invalid address prefix %x, expected %x", got, prefix)
		return nil, makeError(ErrInvalidPrefix, str)
	}
	return payload[len(prefix):], nil
}

// Hash returns the BIP38 address hash: the first four bytes of the double
// SHA-256 of the address text.
func Hash(addr string) []byte {
	return base58check.DoubleSHA256([]byte(addr))[:AddressHashLen]
}
