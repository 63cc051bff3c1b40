// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package network

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrUnknownCurrency is returned when a currency is not in the table.
	ErrUnknownCurrency = ErrorKind("ErrUnknownCurrency")

	// ErrUnknownNetwork is returned when a currency has no such network.
	ErrUnknownNetwork = ErrorKind("ErrUnknownNetwork")

	// ErrInvalidTable is returned when a parameter table cannot be loaded.
	ErrInvalidTable = ErrorKind("ErrInvalidTable")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a network table error.
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

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
