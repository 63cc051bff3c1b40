// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidScalar is returned when a scalar is zero, is not less than
	// the group order, or is longer than 32 bytes.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrPointAtInfinity is returned when an operation would produce the
	// point at infinity.
	ErrPointAtInfinity = ErrorKind("ErrPointAtInfinity")

	// ErrInvalidPublicKey is the parent kind of every public key parsing
	// failure below.  Use errors.Is against it to detect any of them.
	ErrInvalidPublicKey = ErrorKind("ErrInvalidPublicKey")

	// ErrPubKeyInvalidLen is returned when a serialized public key is not
	// one of the supported lengths.
	ErrPubKeyInvalidLen = ErrorKind("ErrPubKeyInvalidLen")

	// ErrPubKeyInvalidFormat is returned when a serialized public key has
	// an unsupported format byte.
	ErrPubKeyInvalidFormat = ErrorKind("ErrPubKeyInvalidFormat")

	// ErrPubKeyXTooBig is returned when the x coordinate is not less than
	// the field prime.
	ErrPubKeyXTooBig = ErrorKind("ErrPubKeyXTooBig")

	// ErrPubKeyYTooBig is returned when the y coordinate is not less than
	// the field prime.
	ErrPubKeyYTooBig = ErrorKind("ErrPubKeyYTooBig")

	// ErrPubKeyNotOnCurve is returned when a point does not satisfy
	// y^2 = x^3 + 7 or the x coordinate has no square root.
	ErrPubKeyNotOnCurve = ErrorKind("ErrPubKeyNotOnCurve")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 points and keys.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// Is reports the public key parsing kinds as ErrInvalidPublicKey.
func (e Error) Is(target error) bool {
	if target != ErrInvalidPublicKey {
		return false
	}
	switch e.Err {
	case ErrPubKeyInvalidLen, ErrPubKeyInvalidFormat, ErrPubKeyXTooBig,
		ErrPubKeyYTooBig, ErrPubKeyNotOnCurve:
		return true
	}
	return false
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
