// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip38

import (
	"encoding/binary"
	"fmt"
)

// Lot and sequence bounds of EC-multiplied keys.
const (
	MinLot      = 100000
	MaxLot      = 999999
	MaxSequence = 4095

	sequenceRange = MaxSequence + 1
)

// validateLotSequence checks the lot and sequence ranges.
func validateLotSequence(lot, sequence int) error {
	if lot < MinLot || lot > MaxLot {
		str := fmt.Sprintf("lot %d is outside [%d, %d]", lot, MinLot, MaxLot)
		return makeError(ErrInvalidLot, str)
	}
	if sequence < 0 || sequence > MaxSequence {
		str := fmt.Sprintf("sequence %d is outside [0, %d]", sequence,
			MaxSequence)
		return makeError(ErrInvalidSequence, str)
	}
	return nil
}

// putLotSequence writes lot*4096 + sequence big-endian into b.  The caller
// must have validated both values.
func putLotSequence(b []byte, lot, sequence int) {
	binary.BigEndian.PutUint32(b, uint32(lot*sequenceRange+sequence))
}

// lotSequence decodes the last four bytes of owner entropy.
func lotSequence(b []byte) (lot, sequence int) {
	v := binary.BigEndian.Uint32(b)
	return int(v / sequenceRange), int(v % sequenceRange)
}
