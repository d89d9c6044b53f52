package types

import (
	"encoding/binary"
	"fmt"
	"math"
)

func idWidth(useUint32 bool) int {
	if useUint32 {
		return TokenIdSize32
	}
	return TokenIdSize
}

// ToBin
// Serialises the ids little-endian, TokenIdSize32 bytes each when
// `useUint32` is set and TokenIdSize bytes otherwise. Ids that do not fit
// the narrow width are an error rather than being truncated.
func (ids TokenIds) ToBin(useUint32 bool) (*[]byte, error) {
	width := idWidth(useUint32)
	bin := make([]byte, len(ids)*width)
	for idx, id := range ids {
		offset := idx * width
		if useUint32 {
			binary.LittleEndian.PutUint32(bin[offset:], uint32(id))
			continue
		}
		if id > math.MaxUint16 {
			return nil, fmt.Errorf("token id %d at position %d does not "+
				"fit in 16 bits, use 32-bit output", id, idx)
		}
		binary.LittleEndian.PutUint16(bin[offset:], uint16(id))
	}
	return &bin, nil
}

// TokenIdsFromBin
// Reads back ids written by ToBin with the same `useUint32` setting.
func TokenIdsFromBin(bin []byte, useUint32 bool) (TokenIds, error) {
	width := idWidth(useUint32)
	if len(bin)%width != 0 {
		return nil, fmt.Errorf("%d bytes is not a whole number of "+
			"%d-byte token ids", len(bin), width)
	}
	ids := make(TokenIds, len(bin)/width)
	for idx := range ids {
		offset := idx * width
		if useUint32 {
			ids[idx] = TokenId(binary.LittleEndian.Uint32(bin[offset:]))
		} else {
			ids[idx] = TokenId(binary.LittleEndian.Uint16(bin[offset:]))
		}
	}
	return ids, nil
}

// Equal reports whether both sequences hold the same ids in the same
// order.
func (ids TokenIds) Equal(other TokenIds) bool {
	if len(ids) != len(other) {
		return false
	}
	for idx := range ids {
		if ids[idx] != other[idx] {
			return false
		}
	}
	return true
}
