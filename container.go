package huffman

import (
	"encoding"
	"encoding/binary"
	"fmt"
)

const (
	countSize   = 4
	entrySize   = 5
	trailerSize = 2
)

// Container is the parsed form of an encoded stream: the frequency header,
// the packed payload, and the trailer describing the final partial byte.
type Container struct {
	Frequencies  FrequencyTable
	Payload      []byte
	ResidualBits byte
	Final        byte
}

// Size returns the length in bytes of the Container's binary form.
func (c Container) Size() int {
	return countSize + entrySize*c.Frequencies.Len() + len(c.Payload) + trailerSize
}

// MarshalBinary returns the Container's binary form.
func (c Container) MarshalBinary() ([]byte, error) {
	if c.ResidualBits > 8 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidResidualLength, c.ResidualBits)
	}
	if c.Frequencies.Len() == 0 {
		return nil, fmt.Errorf("%w: no symbols", ErrMalformedHeader)
	}

	out := make([]byte, 0, c.Size())
	out = appendUint32(out, uint32(c.Frequencies.Len()))
	for _, entry := range c.Frequencies.entries {
		out = append(out, byte(entry.Symbol))
		out = appendUint32(out, entry.Count)
	}
	out = append(out, c.Payload...)
	out = append(out, c.ResidualBits, c.Final)
	return out, nil
}

// ParseContainer parses the binary form of a Container.  The returned
// Payload aliases data.
func ParseContainer(data []byte) (Container, error) {
	if len(data) < countSize {
		return Container{}, fmt.Errorf("%w: %d bytes, need at least %d for the symbol count", ErrMalformedHeader, len(data), countSize)
	}

	numEntries := uint64(binary.BigEndian.Uint32(data[0:countSize]))
	if numEntries == 0 {
		return Container{}, fmt.Errorf("%w: symbol count is 0", ErrMalformedHeader)
	}
	if numEntries > NumSymbols {
		return Container{}, fmt.Errorf("%w: symbol count %d exceeds %d", ErrMalformedHeader, numEntries, NumSymbols)
	}

	headerEnd := countSize + entrySize*numEntries
	if uint64(len(data)) < headerEnd+trailerSize {
		return Container{}, fmt.Errorf("%w: %d bytes, need at least %d for %d symbols", ErrMalformedHeader, len(data), headerEnd+trailerSize, numEntries)
	}

	entries := make([]FrequencyEntry, numEntries)
	for index := range entries {
		p := data[countSize+entrySize*index:]
		entries[index] = FrequencyEntry{
			Symbol: Symbol(p[0]),
			Count:  binary.BigEndian.Uint32(p[1:entrySize]),
		}
	}

	ft, err := NewFrequencyTable(entries)
	if err != nil {
		return Container{}, err
	}

	trailer := data[len(data)-trailerSize:]
	residualBits := trailer[0]
	if residualBits > 8 {
		return Container{}, fmt.Errorf("%w: %d", ErrInvalidResidualLength, residualBits)
	}

	return Container{
		Frequencies:  ft,
		Payload:      data[headerEnd : len(data)-trailerSize],
		ResidualBits: residualBits,
		Final:        trailer[1],
	}, nil
}

func appendUint32(out []byte, v uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return append(out, tmp[:]...)
}

var _ encoding.BinaryMarshaler = Container{}
