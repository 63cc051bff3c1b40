// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58check

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrMalformedEncoding is the parent kind of every decoding failure in
	// this package.  Use errors.Is against it to detect any of them.
	ErrMalformedEncoding = ErrorKind("ErrMalformedEncoding")

	// ErrInvalidCharacter is returned when the input contains a character
	// outside of the selected alphabet or is empty.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrTooShort is returned when the decoded data cannot hold a payload
	// and the 4-byte checksum.
	ErrTooShort = ErrorKind("ErrTooShort")

	// ErrChecksumMismatch is returned when the trailing checksum does not
	// match the double SHA-256 of the payload.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a Base58Check decoding error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason for
// the error by checking the underlying error.
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

// Is reports every kind in this package as an ErrMalformedEncoding.
func (e Error) Is(target error) bool {
	return target == ErrMalformedEncoding
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
