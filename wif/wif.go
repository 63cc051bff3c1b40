// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wif implements the Wallet Import Format for secp256k1 private keys.
//
// The serialized format is:
//
//	prefix || key (32) || [0x01 if compressed] || checksum (4)
//
// rendered as Base58Check text.  The prefix is supplied by the caller so any
// network can be used.
package wif

import (
	"bytes"
	"fmt"

	"github.com/ModChain/bip38/base58check"
	"github.com/ModChain/bip38/curve"
)

// CompressedSuffix marks a key whose public key is serialized compressed.
const CompressedSuffix byte = 0x01

// Type names the two WIF variants.
type Type string

// These constants are the WIF variants.
const (
	TypeUncompressed = Type("wif")
	TypeCompressed   = Type("wif-compressed")
)

// TypeOf returns the variant for the given compression flag.
func TypeOf(compressed bool) Type {
	if compressed {
		return TypeCompressed
	}
	return TypeUncompressed
}

// Encode serializes priv using the network prefix.
func Encode(priv *curve.PrivateKey, prefix []byte, compressed bool, alphabet *base58check.Alphabet) string {
	payload := make([]byte, 0, len(prefix)+curve.PrivKeyBytesLen+1)
	payload = append(payload, prefix...)
	key := priv.Bytes()
	payload = append(payload, key...)
	clear(key)
	if compressed {
		payload = append(payload, CompressedSuffix)
	}
	s := base58check.Encode(payload, alphabet)
	clear(payload)
	return s
}

// Decode parses s and returns the private key and whether its public key is
// serialized compressed.
func Decode(s string, prefix []byte, alphabet *base58check.Alphabet) (*curve.PrivateKey, bool, error) {
	key, _, err := decode(s, prefix, alphabet)
	if err != nil {
		return nil, false, err
	}
	defer clear(key)

	compressed := len(key) == curve.PrivKeyBytesLen+1
	priv, err := curve.PrivKeyFromBytes(key[:curve.PrivKeyBytesLen])
	if err != nil {
		return nil, false, wrapError(ErrInvalidKey, err)
	}
	return priv, compressed, nil
}

// Checksum returns the 4-byte checksum carried by s.
func Checksum(s string, prefix []byte, alphabet *base58check.Alphabet) ([]byte, error) {
	key, checksum, err := decode(s, prefix, alphabet)
	clear(key)
	return checksum, err
}

// TypeOfWIF returns the variant of s.
func TypeOfWIF(s string, prefix []byte, alphabet *base58check.Alphabet) (Type, error) {
	key, _, err := decode(s, prefix, alphabet)
	if err != nil {
		return "", err
	}
	clear(key)
	return TypeOf(len(key) == curve.PrivKeyBytesLen+1), nil
}

// decode validates the framing of s and returns the key material (32 or 33
// bytes) and the checksum.
func decode(s string, prefix []byte, alphabet *base58check.Alphabet) ([]byte, []byte, error) {
	payload, err := base58check.Decode(s, alphabet)
	if err != nil {
		return nil, nil, wrapError(ErrInvalidEncoding, err)
	}
	if len(payload) < len(prefix) || !bytes.Equal(payload[:len(prefix)], prefix) {
		clear(payload)
		str := fmt.Sprintf("invalid WIF prefix, expected %x", prefix)
		return nil, nil, makeError(ErrInvalidPrefix, str)
	}

	key := payload[len(prefix):]
	switch len(key) {
	case curve.PrivKeyBytesLen:
	case curve.PrivKeyBytesLen + 1:
		if suffix := key[curve.PrivKeyBytesLen]; suffix != CompressedSuffix {
			clear(payload)
			str := fmt.Sprintf("invalid WIF compression suffix 0x%02x", suffix)
			return nil, nil, makeError(ErrInvalidSuffix, str)
		}
	default:
		clear(payload)
		str := fmt.Sprintf("invalid WIF key length %d, expected %d or %d",
			len(key), curve.PrivKeyBytesLen, curve.PrivKeyBytesLen+1)
		return nil, nil, makeError(ErrInvalidLength, str)
	}

	// base58check.Decode verified this checksum.
	checksum := base58check.Checksum(payload)
	return key, checksum, nil
}
