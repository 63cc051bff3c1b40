// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58check

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required by the address format
)

// ChecksumLen is the number of double SHA-256 bytes appended to a payload.
const ChecksumLen = 4

// DoubleSHA256 returns SHA256(SHA256(b)).
func DoubleSHA256(b []byte) []byte {
	return chainhash.DoubleHashB(b)
}

// Hash160 returns RIPEMD160(SHA256(b)).
func Hash160(b []byte) []byte {
	a := sha256.Sum256(b)
	rmd := ripemd160.New()
	rmd.Write(a[:])
	return rmd.Sum(nil)
}

// Checksum returns the first four bytes of the double SHA-256 of b.
func Checksum(b []byte) []byte {
	return DoubleSHA256(b)[:ChecksumLen]
}
