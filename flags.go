// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip38

import "fmt"

// KeyKind identifies which of the two encrypted key layouts a payload uses.
type KeyKind uint16

// These constants are the two-byte prefixes of the encrypted key layouts.
const (
	// NonECMultiplied keys are encrypted directly from a WIF key.
	NonECMultiplied KeyKind = 0x0142

	// ECMultiplied keys are generated from an intermediate code.
	ECMultiplied KeyKind = 0x0143
)

// String returns a human-readable name of the kind.
func (k KeyKind) String() string {
	switch k {
	case NonECMultiplied:
		return "non-ec-multiplied"
	case ECMultiplied:
		return "ec-multiplied"
	}
	return fmt.Sprintf("unknown(0x%04x)", uint16(k))
}

// keyKindFromPrefix classifies the first two payload bytes.
func keyKindFromPrefix(b0, b1 byte) (KeyKind, error) {
	kind := KeyKind(uint16(b0)<<8 | uint16(b1))
	switch kind {
	case NonECMultiplied, ECMultiplied:
		return kind, nil
	}
	str := fmt.Sprintf("unknown encrypted key prefix 0x%02x%02x, expected "+
		"0x%04x or 0x%04x", b0, b1, uint16(NonECMultiplied), uint16(ECMultiplied))
	return 0, makeError(ErrUnknownPrefix, str)
}

var (
	magicLotSequence   = [8]byte{0x2c, 0xe9, 0xb3, 0xe1, 0xff, 0x39, 0xe2, 0x51}
	magicNoLotSequence = [8]byte{0x2c, 0xe9, 0xb3, 0xe1, 0xff, 0x39, 0xe2, 0x53}

	confirmationCodePrefix = [5]byte{0x64, 0x3b, 0xf6, 0xa8, 0x9a}
)

// Flag is the flag byte of an encrypted key or confirmation code.
type Flag byte

// The flags produced by this package.
const (
	FlagNonECUncompressed         Flag = 0xc0
	FlagNonECCompressed           Flag = 0xe0
	FlagECUncompressed            Flag = 0x00
	FlagECCompressed              Flag = 0x20
	FlagECLotSequenceUncompressed Flag = 0x04
	FlagECLotSequenceCompressed   Flag = 0x24
)

type flagSet [256]bool

func newFlagSet(flags ...Flag) *flagSet {
	var s flagSet
	for _, f := range flags {
		s[f] = true
	}
	return &s
}

// Legality is set membership, not a bit test: 0xc4 carries the lot and
// sequence bit yet is illegal, and 0x08 is a legal EC flag.
var (
	compressedFlags = newFlagSet(
		FlagECCompressed, FlagECLotSequenceCompressed, 0x28, 0x2c, 0x30,
		0x34, 0x38, 0x3c, FlagNonECCompressed, 0xe8, 0xf0, 0xf8,
	)
	lotSequenceFlags = newFlagSet(
		FlagECLotSequenceUncompressed, FlagECLotSequenceCompressed, 0x0c,
		0x14, 0x1c, 0x2c, 0x34, 0x3c,
	)
	nonECFlags = newFlagSet(
		FlagNonECUncompressed, FlagNonECCompressed, 0xc8, 0xd0, 0xd8, 0xe8,
		0xf0, 0xf8,
	)
	ecFlags = newFlagSet(
		0x00, 0x04, 0x08, 0x0c, 0x10, 0x14, 0x18, 0x1c, 0x20, 0x24, 0x28,
		0x2c, 0x30, 0x34, 0x38, 0x3c,
	)
	illegalFlags = newFlagSet(0xc4, 0xcc, 0xd4, 0xdc, 0xe4, 0xec, 0xf4, 0xfc)
)

// IsIllegal reports whether the flag is in the illegal set.
func (f Flag) IsIllegal() bool { return illegalFlags[f] }

// IsCompressed reports whether the key serializes its public key compressed.
func (f Flag) IsCompressed() bool { return compressedFlags[f] }

// HasLotSequence reports whether the owner entropy carries a lot and
// sequence number.
func (f Flag) HasLotSequence() bool { return lotSequenceFlags[f] }

// IsNonEC reports whether the flag is legal for a non-EC-multiplied key.
func (f Flag) IsNonEC() bool { return nonECFlags[f] }

// IsEC reports whether the flag is legal for an EC-multiplied key or a
// confirmation code.
func (f Flag) IsEC() bool { return ecFlags[f] }

// String returns the flag in hex.
func (f Flag) String() string {
	return fmt.Sprintf("0x%02x", byte(f))
}

// checkFlag rejects illegal flags first, then flags that are not legal for
// the payload kind.
func checkFlag(kind KeyKind, f Flag) error {
	if f.IsIllegal() {
		str := fmt.Sprintf("illegal flag %v", f)
		return makeError(ErrIllegalFlag, str)
	}
	legal := f.IsEC()
	if kind == NonECMultiplied {
		legal = f.IsNonEC()
	}
	if !legal {
		str := fmt.Sprintf("flag %v is not valid for %v keys", f, kind)
		return makeError(ErrUnknownFlag, str)
	}
	return nil
}

// nonECFlag returns the flag of a directly encrypted key.
func nonECFlag(compressed bool) Flag {
	if compressed {
		return FlagNonECCompressed
	}
	return FlagNonECUncompressed
}

// ecFlag returns the flag of an EC-multiplied key.
func ecFlag(compressed, lotSequence bool) Flag {
	switch {
	case compressed && lotSequence:
		return FlagECLotSequenceCompressed
	case lotSequence:
		return FlagECLotSequenceUncompressed
	case compressed:
		return FlagECCompressed
	}
	return FlagECUncompressed
}
