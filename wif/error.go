// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wif

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrWIF is the parent kind of every error in this package.
	ErrWIF = ErrorKind("ErrWIF")

	// ErrInvalidEncoding is returned when the text is not valid
	// Base58Check.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrInvalidPrefix is returned when the version prefix does not match
	// the network.
	ErrInvalidPrefix = ErrorKind("ErrInvalidPrefix")

	// ErrInvalidLength is returned when the key material is neither 32
	// nor 33 bytes.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidSuffix is returned when a 33-byte key does not end with the
	// compression marker.
	ErrInvalidSuffix = ErrorKind("ErrInvalidSuffix")

	// ErrInvalidKey is returned when the key is zero or not less than the
	// group order.
	ErrInvalidKey = ErrorKind("ErrInvalidKey")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a WIF decoding error.
type Error struct {
	Err         error
	Description string

	cause error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the error kind and, when present, the lower level error
// that caused it.
func (e Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Err, e.cause}
	}
	return []error{e.Err}
}

// Is reports every error of this package as an ErrWIF.
func (e Error) Is(target error) bool {
	return target == ErrWIF
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

func wrapError(kind ErrorKind, cause error) Error {
	return Error{Err: kind, Description: cause.Error(), cause: cause}
}
