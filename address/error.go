// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrAddress is the parent kind of every error in this package.
	ErrAddress = ErrorKind("ErrAddress")

	// ErrInvalidEncoding is returned when the address is not valid
	// Base58Check text.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrInvalidLength is returned when the decoded payload is not the
	// prefix followed by a 20-byte hash.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidPrefix is returned when the address belongs to another
	// network.
	ErrInvalidPrefix = ErrorKind("ErrInvalidPrefix")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address decoding error.
type Error struct {
	Err         error
	Description string

	cause error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the error kind and, when present, the Base58Check error
// that caused it.
func (e Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Err, e.cause}
	}
	return []error{e.Err}
}

// Is reports every error of this package as an ErrAddress.
func (e Error) Is(target error) bool {
	return target == ErrAddress
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
