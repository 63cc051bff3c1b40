// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip38

import "fmt"

// IntermediateOption configures IntermediateCode.
type IntermediateOption func(*intermediateOptions)

type intermediateOptions struct {
	withLotSequence bool
	lot, sequence   int
	ownerSalt       []byte
}

// WithLotSequence embeds a lot and sequence number in the owner entropy.
func WithLotSequence(lot, sequence int) IntermediateOption {
	return func(o *intermediateOptions) {
		o.withLotSequence = true
		o.lot = lot
		o.sequence = sequence
	}
}

// WithOwnerSalt fixes the owner salt instead of drawing a random one.  It
// must be 8 bytes, or 4 bytes together with WithLotSequence.  With a lot and
// sequence only the first 4 bytes of an 8-byte salt are used.
func WithOwnerSalt(salt []byte) IntermediateOption {
	return func(o *intermediateOptions) {
		o.ownerSalt = salt
	}
}

// IntermediateCode derives the passphrase code the owner hands to a key
// generator.  The code reveals the pass point but not the passphrase.
func (e *Engine) IntermediateCode(passphrase string, opts ...IntermediateOption) (string, error) {
	var o intermediateOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.withLotSequence {
		if err := validateLotSequence(o.lot, o.sequence); err != nil {
			return "", err
		}
	}

	salt := o.ownerSalt
	if salt == nil {
		n := ownerSaltLen
		if o.withLotSequence {
			n = ownerSaltLenLotSequence
		}
		var err error
		if salt, err = e.randomBytes(n); err != nil {
			return "", err
		}
	}
	switch len(salt) {
	case ownerSaltLen:
	case ownerSaltLenLotSequence:
		if !o.withLotSequence {
			str := fmt.Sprintf("owner salt of %d bytes requires a lot and "+
				"sequence", len(salt))
			return "", makeError(ErrInvalidOwnerSalt, str)
		}
	default:
		str := fmt.Sprintf("owner salt is %d bytes, expected %d or %d",
			len(salt), ownerSaltLenLotSequence, ownerSaltLen)
		return "", makeError(ErrInvalidOwnerSalt, str)
	}

	c := intermediateCode{withLotSequence: o.withLotSequence}
	if o.withLotSequence {
		copy(c.ownerEntropy[:], salt[:ownerSaltLenLotSequence])
		putLotSequence(c.ownerEntropy[ownerSaltLenLotSequence:], o.lot, o.sequence)
	} else {
		copy(c.ownerEntropy[:], salt)
	}

	pf, err := passFactor(passphrase, c.ownerEntropy[:], c.withLotSequence)
	if err != nil {
		return "", err
	}
	defer pf.Zero()
	copy(c.passPoint[:], pf.PubKey(true).SerializeCompressed())

	e.log.Debug("created intermediate code", "lot_sequence", c.withLotSequence)
	return c.String(), nil
}
