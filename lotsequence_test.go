// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip38

import (
	"encoding/hex"
	"errors"
	"testing"
)

func TestValidateLotSequence(t *testing.T) {
	tests := []struct {
		lot, sequence int
		err           error
	}{
		{100000, 0, nil},
		{999999, 4095, nil},
		{199999, 1, nil},
		{99999, 0, ErrInvalidLot},
		{1000000, 0, ErrInvalidLot},
		{100000, -1, ErrInvalidSequence},
		{100000, 4096, ErrInvalidSequence},
	}

	for i, test := range tests {
		err := validateLotSequence(test.lot, test.sequence)
		if test.err == nil {
			if err != nil {
				t.Errorf("#%d: unexpected error: %v", i, err)
			}
			continue
		}
		if !errors.Is(err, test.err) {
			t.Errorf("#%d: got: %v want: %v", i, err, test.err)
		}
	}
}

func TestLotSequenceCodec(t *testing.T) {
	tests := []struct {
		lot, sequence int
		want          string
	}{
		{199999, 1, "30d3f001"},
		{100000, 0, "186a0000"},
		{999999, 4095, "f423ffff"},
	}

	for i, test := range tests {
		var b [4]byte
		putLotSequence(b[:], test.lot, test.sequence)
		if got := hex.EncodeToString(b[:]); got != test.want {
			t.Errorf("#%d: got: %s want: %s", i, got, test.want)
			continue
		}
		lot, sequence := lotSequence(b[:])
		if lot != test.lot || sequence != test.sequence {
			t.Errorf("#%d: got: %d/%d want: %d/%d", i, lot, sequence,
				test.lot, test.sequence)
		}
	}
}
