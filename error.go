// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip38

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrMalformedEncoding is returned when Base58Check decoding fails or
	// the decoded payload does not have the length of its format.
	ErrMalformedEncoding = ErrorKind("ErrMalformedEncoding")

	// ErrUnknownPrefix is returned when an encrypted key or confirmation
	// code starts with an unknown prefix.
	ErrUnknownPrefix = ErrorKind("ErrUnknownPrefix")

	// ErrIllegalFlag is returned when the flag byte is in the illegal set.
	ErrIllegalFlag = ErrorKind("ErrIllegalFlag")

	// ErrUnknownFlag is returned when the flag byte is not legal for the
	// kind of payload it was found in.
	ErrUnknownFlag = ErrorKind("ErrUnknownFlag")

	// ErrUnknownMagic is returned when an intermediate code starts with an
	// unknown magic.
	ErrUnknownMagic = ErrorKind("ErrUnknownMagic")

	// ErrInvalidScalar is returned when a recovered private key, pass factor
	// or factor b is zero or not less than the group order.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrIncorrectPassphrase is returned when the address hash recomputed
	// from the passphrase does not match the embedded one.  It is the
	// expected outcome of a wrong passphrase, not a sign of corruption.
	ErrIncorrectPassphrase = ErrorKind("ErrIncorrectPassphrase")

	// ErrInvalidPublicKey is returned when a pass point is not a valid
	// compressed secp256k1 point.
	ErrInvalidPublicKey = ErrorKind("ErrInvalidPublicKey")

	// ErrInvalidWIF is returned when the key to encrypt is not a valid WIF
	// for the engine's network.
	ErrInvalidWIF = ErrorKind("ErrInvalidWIF")

	// ErrInvalidLot is returned when a lot number is outside
	// [MinLot, MaxLot].
	ErrInvalidLot = ErrorKind("ErrInvalidLot")

	// ErrInvalidSequence is returned when a sequence number is outside
	// [0, MaxSequence].
	ErrInvalidSequence = ErrorKind("ErrInvalidSequence")

	// ErrInvalidOwnerSalt is returned when an owner salt is neither 4 nor 8
	// bytes, or is 4 bytes without a lot and sequence.
	ErrInvalidOwnerSalt = ErrorKind("ErrInvalidOwnerSalt")

	// ErrInvalidSeed is returned when a seed b is not 24 bytes.
	ErrInvalidSeed = ErrorKind("ErrInvalidSeed")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a BIP38 error.  It has full support for errors.Is and
// errors.As, so the caller can ascertain the specific reason for the error by
// checking the underlying error.  When the error originates in a lower level
// package, Cause holds that error and is matched as well.
type Error struct {
	Err         error
	Description string
	Cause       error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the error kind and the cause, if any.
func (e Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// wrapError creates an Error of the given kind caused by err.
func wrapError(kind ErrorKind, desc string, err error) Error {
	return Error{Err: kind, Description: desc + ": " + err.Error(), Cause: err}
}
